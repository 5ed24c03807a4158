package static_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KignLeon/hpcf-website/internal/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFS(t *testing.T) {
	t.Run("Embedded", func(t *testing.T) {
		fsys, err := static.NewFS("")
		require.NoError(t, err)

		data, err := fs.ReadFile(fsys, "index.html")
		require.NoError(t, err)
		assert.Contains(t, string(data), "Higher Praise Christian Fellowship")
	})

	t.Run("Directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("local"), 0o644))

		fsys, err := static.NewFS(dir)
		require.NoError(t, err)

		data, err := fs.ReadFile(fsys, "index.html")
		require.NoError(t, err)
		assert.Equal(t, "local", string(data))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := static.NewFS(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := static.NewFS(file)
		assert.Error(t, err)
	})
}
