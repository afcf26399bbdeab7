package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/service"
	"github.com/MKhiriev/keypass/models"
)

// ─────────────────────────────────────────────
// Mock: service.VaultService / service.HealthService
// ─────────────────────────────────────────────

type mockVaultService struct {
	createFn    func(ctx context.Context, entry models.PasswordEntry) (models.Credential, error)
	byTitleFn   func(ctx context.Context, title string) ([]models.Credential, error)
	getFn       func(ctx context.Context, title, username string) (models.Credential, error)
	allTitlesFn func(ctx context.Context) ([]string, error)
	updateFn    func(ctx context.Context, entry models.UpdateEntry) (models.Credential, error)
	deleteFn    func(ctx context.Context, title, username string) error
}

func (m *mockVaultService) CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return models.Credential{}, nil
}

func (m *mockVaultService) GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error) {
	if m.byTitleFn != nil {
		return m.byTitleFn(ctx, title)
	}
	return nil, nil
}

func (m *mockVaultService) GetEntry(ctx context.Context, title, username string) (models.Credential, error) {
	if m.getFn != nil {
		return m.getFn(ctx, title, username)
	}
	return models.Credential{}, nil
}

func (m *mockVaultService) GetAllTitles(ctx context.Context) ([]string, error) {
	if m.allTitlesFn != nil {
		return m.allTitlesFn(ctx)
	}
	return nil, nil
}

func (m *mockVaultService) UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, entry)
	}
	return models.Credential{}, nil
}

func (m *mockVaultService) DeleteEntry(ctx context.Context, title, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, title, username)
	}
	return nil
}

type mockHealthService struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthService) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func newTestHandler(vault *mockVaultService) *Handler {
	return NewHandler(&service.Services{
		VaultService:  vault,
		HealthService: &mockHealthService{},
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandler(&mockVaultService{}).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/passwords/"},
	{http.MethodPut, "/passwords/"},
	{http.MethodGet, "/passwords/github"},
	{http.MethodGet, "/passwords/github/john"},
	{http.MethodDelete, "/passwords/github/john"},
	{http.MethodGet, "/titles/"},
	{http.MethodGet, "/healthz"},
	{http.MethodGet, "/"},
	{http.MethodGet, "/static/style.css"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(&mockVaultService{}).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(&mockVaultService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestHandler(&mockVaultService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_TraceIDHeaderIsPropagated(t *testing.T) {
	router := newTestHandler(&mockVaultService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
