package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed web
var webFS embed.FS

// index handles GET /: a minimal embedded landing page describing the API.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		h.writeError(w, r, err, "*Handler.index")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// staticHandler serves the embedded assets under /static/.
func staticHandler() http.Handler {
	assets, err := fs.Sub(webFS, "web/static")
	if err != nil {
		// embed guarantees the subtree exists
		panic(err)
	}

	return http.StripPrefix("/static/", http.FileServer(http.FS(assets)))
}
