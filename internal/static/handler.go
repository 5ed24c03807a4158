package static

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/KignLeon/hpcf-website/internal/metrics"

	"github.com/go-chi/chi/v5"
)

const indexFile = "index.html"

// Handler serves files from a public asset tree. Directories resolve to their
// index.html and are never listed.
type Handler struct {
	fsys    fs.FS
	maxAge  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(fsys fs.FS, maxAge time.Duration, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		fsys:    fsys,
		maxAge:  maxAge,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/*", h.ServeAsset)
	router.Head("/*", h.ServeAsset)
}

func (h *Handler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "."
	}

	content, info, err := h.open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.WarnContext(r.Context(), "failed to open static asset", "path", r.URL.Path, "error", err)
		}
		h.metrics.RecordStaticNotFound(r.Context())
		http.NotFound(w, r)
		return
	}

	if h.maxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
		w.Header().Set("Expires", time.Now().Add(h.maxAge).UTC().Truncate(time.Second).Format(http.TimeFormat))
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
}

// open resolves name to a regular file, falling back to index.html for
// directories.
func (h *Handler) open(name string) (io.ReadSeeker, fs.FileInfo, error) {
	info, err := fs.Stat(h.fsys, name)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		name = path.Join(name, indexFile)
		if info, err = fs.Stat(h.fsys, name); err != nil {
			return nil, nil, err
		}
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}

	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(data), info, nil
}
