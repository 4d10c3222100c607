// Package web serves the embedded single-page chart UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler returns the UI handler. index.html is served for the root
// path, everything else falls through to the embedded static tree.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed 內容在編譯期固定, 這裡不可能失敗
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
