package http

import (
	"net/http"
)

// health handles GET /healthz: reports whether the backing storage is
// reachable. Used by cmd/healthcheck and container orchestrators.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		h.writeError(w, r, err, "*Handler.health")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
