package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"croner/backend/internal/handlers"
	"croner/backend/internal/tokens"

	"github.com/go-chi/chi/v5"
)

func newRouter() *chi.Mux {
	r := chi.NewRouter()
	th := tokens.New("test-secret", time.Hour)
	WorkspaceRoutes(r, &handlers.WorkspacesHandler{}, th)
	TestRoutes(r, &handlers.TestsHandler{}, th)
	return r
}

func TestGatedRoutesRequireAToken(t *testing.T) {
	r := newRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/workspace/update"},
		{http.MethodDelete, "/workspace/delete"},
		{http.MethodPost, "/test/create"},
		{http.MethodPut, "/test/update"},
		{http.MethodDelete, "/test/delete"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without a token, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestReadRoutesAreOpen(t *testing.T) {
	r := newRouter()

	// No token header; the handler itself rejects the blank requester, which
	// proves the middleware let the request through.
	req := httptest.NewRequest(http.MethodGet, "/workspace/all", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from the handler, got %d", rec.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/workspace/nope", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
