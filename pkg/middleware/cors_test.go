package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsTestHandler(allowed []string) http.Handler {
	return CORS(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSAllowedOrigin(t *testing.T) {
	handler := corsTestHandler([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Expected credentials header")
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	handler := corsTestHandler([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS headers for disallowed origin, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected request to still be served, got %d", rec.Code)
	}
}

func TestCORSWildcard(t *testing.T) {
	handler := corsTestHandler([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "http://anywhere.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://anywhere.example.com" {
		t.Errorf("Expected wildcard to echo origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := corsTestHandler([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/unified-search", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", rec.Code)
	}
}
