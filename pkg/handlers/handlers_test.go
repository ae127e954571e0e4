package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/services"
)

// mockAuthService authenticates every bearer request as a fixed user, or
// fails with the configured errors.
type mockAuthService struct {
	user     *models.User
	loginErr error
	authErr  error
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return "test-token", nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, r *http.Request) (*models.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.user, nil
}

type mockSearchService struct {
	results []*models.Company
	err     error
}

func (m *mockSearchService) Search(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockHierarchyService struct {
	result *services.HierarchyResult
	err    error
}

func (m *mockHierarchyService) GetHierarchy(ctx context.Context, duns string) (*services.HierarchyResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockCacheRepo struct {
	companies []*models.Company
	err       error
}

func (m *mockCacheRepo) Upsert(ctx context.Context, company *models.Company) error { return nil }

func (m *mockCacheRepo) ListRecent(ctx context.Context, limit int) ([]*models.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.companies, nil
}

func testUser() *models.User {
	return &models.User{Username: "admin", Email: "admin@dnb.com"}
}

func authedMiddleware() *auth.Middleware {
	return auth.NewMiddleware(&mockAuthService{user: testUser()}, zap.NewNop())
}

func TestLoginEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	NewAuthHandler(&mockAuthService{user: testUser()}, zap.NewNop()).RegisterRoutes(mux, authedMiddleware())

	body := strings.NewReader(`{"username": "admin", "password": "secret123"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.AccessToken != "test-token" {
		t.Errorf("Expected test-token, got %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("Expected bearer token type, got %q", resp.TokenType)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	svc := &mockAuthService{loginErr: apperrors.ErrInvalidCredentials}
	NewAuthHandler(svc, zap.NewNop()).RegisterRoutes(mux, authedMiddleware())

	body := strings.NewReader(`{"username": "admin", "password": "wrong"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", body))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("Expected WWW-Authenticate header, got %q", rec.Header().Get("WWW-Authenticate"))
	}
}

func TestLoginEndpointInvalidBody(t *testing.T) {
	mux := http.NewServeMux()
	NewAuthHandler(&mockAuthService{user: testUser()}, zap.NewNop()).RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{broken")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestVerifyTokenEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	NewAuthHandler(&mockAuthService{user: testUser()}, zap.NewNop()).RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/verify-token", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp VerifyTokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Username != "admin" || resp.Email != "admin@dnb.com" {
		t.Errorf("Unexpected account payload: %+v", resp)
	}
}

func TestVerifyTokenEndpointUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mw := auth.NewMiddleware(&mockAuthService{authErr: apperrors.ErrUnauthorized}, zap.NewNop())
	NewAuthHandler(&mockAuthService{user: testUser()}, zap.NewNop()).RegisterRoutes(mux, mw)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/verify-token", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestUnifiedSearchEndpoint(t *testing.T) {
	company := &models.Company{
		DUNS:           "804735132",
		CompanyName:    "Apple Inc.",
		SearchCriteria: map[string]any{"company_name": "apple"},
	}
	mux := http.NewServeMux()
	NewSearchHandler(&mockSearchService{results: []*models.Company{company}}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	body := strings.NewReader(`{"company_name": "apple"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/unified-search", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got count=%d len=%d", resp.Count, len(resp.Results))
	}
	if resp.Results[0].SearchCriteria["company_name"] != "apple" {
		t.Errorf("Expected search_criteria annotation, got %v", resp.Results[0].SearchCriteria)
	}
}

func TestUnifiedSearchEndpointEmptyResults(t *testing.T) {
	mux := http.NewServeMux()
	NewSearchHandler(&mockSearchService{results: []*models.Company{}}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/unified-search", strings.NewReader(`{}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Errorf("Expected empty results array, got %s", rec.Body.String())
	}
}

func TestUnifiedSearchEndpointInvalidBody(t *testing.T) {
	mux := http.NewServeMux()
	NewSearchHandler(&mockSearchService{}, zap.NewNop()).RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/unified-search", strings.NewReader("{broken")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestUnifiedSearchEndpointServiceError(t *testing.T) {
	mux := http.NewServeMux()
	NewSearchHandler(&mockSearchService{err: errors.New("cache down")}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/unified-search", strings.NewReader(`{"duns": "804735132"}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestUnifiedSearchEndpointRequiresAuth(t *testing.T) {
	mux := http.NewServeMux()
	mw := auth.NewMiddleware(&mockAuthService{authErr: apperrors.ErrUnauthorized}, zap.NewNop())
	NewSearchHandler(&mockSearchService{}, zap.NewNop()).RegisterRoutes(mux, mw)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/unified-search", strings.NewReader(`{}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestHierarchyEndpoint(t *testing.T) {
	result := &services.HierarchyResult{
		DUNS:       "804735132",
		DataSource: "Mock Data",
		Hierarchy: &models.CorporateHierarchy{
			GlobalUltimate: &models.HierarchyMember{DUNS: "804735132", PrimaryName: "Apple Inc."},
		},
	}
	mux := http.NewServeMux()
	NewHierarchyHandler(&mockHierarchyService{result: result}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/company-hierarchy/804735132", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp services.HierarchyResult
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.DUNS != "804735132" || resp.Hierarchy == nil {
		t.Errorf("Unexpected hierarchy payload: %+v", resp)
	}
}

func TestHierarchyEndpointNotFound(t *testing.T) {
	mux := http.NewServeMux()
	NewHierarchyHandler(&mockHierarchyService{err: apperrors.ErrNotFound}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/company-hierarchy/999999999", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hierarchy not found") {
		t.Errorf("Expected not-found message, got %s", rec.Body.String())
	}
}

func TestHierarchyEndpointServiceError(t *testing.T) {
	mux := http.NewServeMux()
	NewHierarchyHandler(&mockHierarchyService{err: errors.New("registry unavailable")}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/company-hierarchy/804735132", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestCachedCompaniesEndpoint(t *testing.T) {
	companies := []*models.Company{
		{DUNS: "804735132", CompanyName: "Apple Inc."},
		{DUNS: "001234567", CompanyName: "Microsoft Corporation"},
	}
	mux := http.NewServeMux()
	NewCacheHandler(&mockCacheRepo{companies: companies}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cached-companies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp []*models.Company
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("Expected 2 companies, got %d", len(resp))
	}
}

// Cache listing is advisory; a failing store answers with an empty array.
func TestCachedCompaniesEndpointStoreError(t *testing.T) {
	mux := http.NewServeMux()
	NewCacheHandler(&mockCacheRepo{err: errors.New("redis down")}, zap.NewNop()).
		RegisterRoutes(mux, authedMiddleware())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cached-companies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", rec.Body.String())
	}
}
