// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keypass/models"
)

// newTestClient создаёт VaultClient, направленный на тестовый сервер
func newTestClient(serverURL string) VaultClient {
	return NewVaultClient(VaultClientConfig{BaseURL: serverURL})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// ── CreateEntry ──────────────────────────────────────────────────────────────

func TestCreateEntry_Success(t *testing.T) {
	want := models.Credential{Title: "github", Username: "john", URL: "N/A", Password: "s3cret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/passwords/", r.URL.Path)

		var entry models.PasswordEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
		assert.Equal(t, "github", entry.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.CreateEntry(context.Background(), models.PasswordEntry{Title: "github", Username: "john", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Password, got.Password)
}

func TestCreateEntry_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusBadRequest, "Username already exists for this title.")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.CreateEntry(context.Background(), models.PasswordEntry{Title: "github", Username: "john", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

// ── GetEntriesByTitle ────────────────────────────────────────────────────────

func TestGetEntriesByTitle_Success(t *testing.T) {
	want := []models.Credential{
		{Title: "github", Username: "john", URL: "https://github.com", Password: "one"},
		{Title: "github", Username: "jane", URL: "N/A", Password: "two"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/passwords/github", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.GetEntriesByTitle(context.Background(), "github")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[1].Username, got[1].Username)
}

func TestGetEntriesByTitle_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Password entry not found.")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GetEntriesByTitle(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetEntry ─────────────────────────────────────────────────────────────────

func TestGetEntry_Success(t *testing.T) {
	want := models.Credential{Title: "github", Username: "john", URL: "N/A", Password: "s3cret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/passwords/github/john", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.GetEntry(context.Background(), "github", "john")

	require.NoError(t, err)
	assert.Equal(t, want.Password, got.Password)
}

func TestGetEntry_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials. Set main password correctly.")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GetEntry(context.Background(), "github", "john")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── UpdateEntry ──────────────────────────────────────────────────────────────

func TestUpdateEntry_Success(t *testing.T) {
	newPassword := "updated"
	want := models.Credential{Title: "github", Username: "john", URL: "N/A", Password: newPassword}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/passwords/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.UpdateEntry(context.Background(), models.UpdateEntry{Title: "github", Username: "john", Password: &newPassword})

	require.NoError(t, err)
	assert.Equal(t, newPassword, got.Password)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Password entry not found.")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.UpdateEntry(context.Background(), models.UpdateEntry{Title: "github", Username: "ghost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── DeleteEntry ──────────────────────────────────────────────────────────────

func TestDeleteEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/passwords/github/john", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Password entry deleted."})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.NoError(t, c.DeleteEntry(context.Background(), "github", "john"))
}

func TestDeleteEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Password entry not found.")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.DeleteEntry(context.Background(), "github", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetAllTitles ─────────────────────────────────────────────────────────────

func TestGetAllTitles_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/titles/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]string{"github", "gmail"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.GetAllTitles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"github", "gmail"}, got)
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"healthy", http.StatusOK, false},
		{"unhealthy", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/healthz", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL)
			err := c.Health(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnhealthy)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream is down"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GetAllTitles(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
	assert.Contains(t, err.Error(), "upstream is down")
}
