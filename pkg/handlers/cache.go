package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/repositories"
)

// recentLimit bounds the cached-companies listing.
const recentLimit = 50

// CacheHandler serves the recently-searched companies view.
type CacheHandler struct {
	cache  repositories.CompanyCacheRepository
	logger *zap.Logger
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(cache repositories.CompanyCacheRepository, logger *zap.Logger) *CacheHandler {
	return &CacheHandler{
		cache:  cache,
		logger: logger,
	}
}

// RegisterRoutes registers the cache handler's routes on the given mux.
func (h *CacheHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/cached-companies", authMiddleware.RequireAuth(h.ListCached))
}

// ListCached handles GET /api/cached-companies.
// The listing is advisory: when the cache store is unavailable it degrades
// to an empty sequence instead of failing the request.
func (h *CacheHandler) ListCached(w http.ResponseWriter, r *http.Request) {
	companies, err := h.cache.ListRecent(r.Context(), recentLimit)
	if err != nil {
		h.logger.Error("Failed to list cached companies", zap.Error(err))
		companies = nil
	}
	if companies == nil {
		companies = []*models.Company{}
	}

	if err := WriteJSON(w, http.StatusOK, companies); err != nil {
		h.logger.Error("Failed to encode cached companies", zap.Error(err))
	}
}
