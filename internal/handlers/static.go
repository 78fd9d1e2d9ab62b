package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// NewStaticHandler serves the bundled single-page frontend from dir.
// Unknown paths fall back to index.html so client-side routing works.
func NewStaticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")

		path := filepath.Join(dir, rel)
		if rel != "" {
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				http.ServeFile(w, r, path)
				return
			}
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
