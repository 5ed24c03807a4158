package web

import (
	"io/fs"
	"testing"
)

func TestEmbeddedPublicFiles(t *testing.T) {
	for _, name := range []string{"index.html", "contact.html", "css/style.css", "js/contact.js"} {
		if _, err := fs.ReadFile(Public(), name); err != nil {
			t.Fatalf("expected embedded asset %s, got error: %v", name, err)
		}
	}
}
