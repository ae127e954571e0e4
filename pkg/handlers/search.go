package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/services"
)

// SearchResponse is the unified search result envelope.
type SearchResponse struct {
	Results []*models.Company `json:"results"`
	Count   int               `json:"count"`
}

// SearchHandler handles unified company search requests.
type SearchHandler struct {
	searchService services.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService services.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// RegisterRoutes registers the search handler's routes on the given mux.
func (h *SearchHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("POST /api/unified-search", authMiddleware.RequireAuth(h.UnifiedSearch))
}

// UnifiedSearch handles POST /api/unified-search.
// Resolves the posted criteria against the catalog; either the full
// candidate set is evaluated or the whole call fails.
func (h *SearchHandler) UnifiedSearch(w http.ResponseWriter, r *http.Request) {
	var criteria models.SearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	results, err := h.searchService.Search(r.Context(), &criteria)
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "search_failed", "Search failed"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, SearchResponse{
		Results: results,
		Count:   len(results),
	}); err != nil {
		h.logger.Error("Failed to encode search response", zap.Error(err))
	}
}
