// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/models"
)

// credentialResponse is the wire shape of a single decrypted vault record.
type credentialResponse struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Password string `json:"password"`
}

func toCredentialResponse(credential models.Credential) credentialResponse {
	return credentialResponse{
		Title:    credential.Title,
		Username: credential.Username,
		URL:      credential.URL,
		Password: credential.Password,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// createPassword handles POST /passwords/. The response echoes the entry
// with the plaintext password, so a generated value is shown exactly once.
func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.PasswordEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.createPassword").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultService.CreateEntry(r.Context(), entry)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createPassword")
		return
	}

	writeJSON(w, http.StatusOK, toCredentialResponse(created))
}

// listPasswords handles GET /passwords/{title}: every record under the title
// with passwords decrypted. A single failed decrypt aborts the whole read.
func (h *Handler) listPasswords(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	credentials, err := h.services.VaultService.GetEntriesByTitle(r.Context(), title)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listPasswords")
		return
	}

	out := make([]credentialResponse, 0, len(credentials))
	for _, credential := range credentials {
		out = append(out, toCredentialResponse(credential))
	}

	writeJSON(w, http.StatusOK, out)
}

// getPassword handles GET /passwords/{title}/{username}.
func (h *Handler) getPassword(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	username := chi.URLParam(r, "username")

	credential, err := h.services.VaultService.GetEntry(r.Context(), title, username)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getPassword")
		return
	}

	writeJSON(w, http.StatusOK, toCredentialResponse(credential))
}

// updatePassword handles PUT /passwords/. Fields absent from the body are
// left untouched; the generate flag replaces the password with a fresh one.
func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.UpdateEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.updatePassword").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.VaultService.UpdateEntry(r.Context(), entry)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updatePassword")
		return
	}

	writeJSON(w, http.StatusOK, toCredentialResponse(updated))
}

// deletePassword handles DELETE /passwords/{title}/{username}.
func (h *Handler) deletePassword(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	username := chi.URLParam(r, "username")

	if err := h.services.VaultService.DeleteEntry(r.Context(), title, username); err != nil {
		h.writeError(w, r, err, "*Handler.deletePassword")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password entry deleted."})
}
