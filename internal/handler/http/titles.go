package http

import (
	"net/http"
)

// listTitles handles GET /titles/: the distinct titles currently stored.
// An empty vault yields an empty JSON array.
func (h *Handler) listTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.services.VaultService.GetAllTitles(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listTitles")
		return
	}

	if titles == nil {
		titles = []string{}
	}

	writeJSON(w, http.StatusOK, titles)
}
