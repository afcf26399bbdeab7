package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/keypass/internal/crypto"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/store"
	"github.com/MKhiriev/keypass/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrUnsupportedType:  http.StatusBadRequest,
	validators.ErrUnknownField:     http.StatusBadRequest,
	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrEmptyUsername:    http.StatusBadRequest,
	validators.ErrNoPassword:       http.StatusBadRequest,
	validators.ErrEmptyPassword:    http.StatusBadRequest,
	validators.ErrEmptyURL:         http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	store.ErrDuplicateEntry:     http.StatusBadRequest,
	store.ErrCredentialNotFound: http.StatusNotFound,

	crypto.ErrInvalidCredentials:  http.StatusUnauthorized,
	crypto.ErrCipherUninitialized: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorDetailMap overrides the client-visible detail text for errors whose
// wire message is part of the API contract.
var errorDetailMap = map[error]string{
	store.ErrDuplicateEntry:      "Username already exists for this title.",
	store.ErrCredentialNotFound:  "Password entry not found.",
	crypto.ErrInvalidCredentials: "Invalid credentials. Set main password correctly.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error, status int) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// writeError maps err to an HTTP status and writes the JSON error body
// {"detail": "..."} used by every failure response of the API.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	detail := detailFromError(err, status)

	log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
