package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var publicFiles embed.FS

// Public returns the embedded site rooted at the public directory.
func Public() fs.FS {
	sub, err := fs.Sub(publicFiles, "public")
	if err != nil {
		panic("failed to initialize embedded public assets: " + err.Error())
	}
	return sub
}
