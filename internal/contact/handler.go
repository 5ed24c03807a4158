package contact

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/KignLeon/hpcf-website/internal/httputil"
	"github.com/KignLeon/hpcf-website/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const DefaultMaxBodyBytes = 1 << 20

type Handler struct {
	service      *Service
	validate     *validator.Validate
	logger       *slog.Logger
	metrics      *metrics.Metrics
	maxBodyBytes int64
}

func NewHandler(service *Service, logger *slog.Logger, metrics *metrics.Metrics, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		service:      service,
		validate:     validator.New(),
		logger:       logger,
		metrics:      metrics,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/contact", h.Submit)
}

// Submit handles a contact or prayer request form. Every outcome, including a
// panic further down, is answered with a JSON envelope.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.handleError(w, r, fmt.Errorf("panic: %v", rec))
		}
	}()

	req, err := h.parse(w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if _, err := h.service.Submit(r.Context(), req.Submission()); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.metrics.RecordContactSubmission(r.Context(), metrics.ResultAccepted)
	httputil.RespondWithSuccess(w, http.StatusOK, MsgReceived)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) (*SubmissionRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	req, err := DecodeSubmission(body)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrMissingFields
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	return req, nil
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	if errors.Is(err, ErrInvalidFormat) {
		h.logger.ErrorContext(ctx, "invalid JSON input", "error", err)
		h.metrics.RecordContactSubmission(ctx, metrics.ResultInvalidFormat)
		httputil.RespondWithError(w, http.StatusBadRequest, MsgInvalidFormat)
		return
	}
	if errors.Is(err, ErrMissingFields) {
		h.logger.WarnContext(ctx, "malformed contact request", "error", err)
		h.metrics.RecordContactSubmission(ctx, metrics.ResultMissingFields)
		httputil.RespondWithError(w, http.StatusBadRequest, MsgMissingFields)
		return
	}

	h.logger.ErrorContext(ctx, "server error while handling contact form", "error", err)
	h.metrics.RecordContactSubmission(ctx, metrics.ResultError)
	httputil.RespondWithError(w, http.StatusInternalServerError, MsgInternalError)
}
