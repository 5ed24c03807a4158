package static

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/KignLeon/hpcf-website/web"
)

// NewFS returns the asset tree to serve: dir on disk when set, otherwise the
// site embedded in the binary.
func NewFS(dir string) (fs.FS, error) {
	if dir == "" {
		return web.Public(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("no public web assets found at %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("is not a dir: %v", dir)
	}

	return os.DirFS(dir), nil
}
