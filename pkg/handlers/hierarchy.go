package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
	"github.com/Patoch87/DunsHierarchyV2/pkg/services"
)

// HierarchyHandler serves corporate hierarchy views.
type HierarchyHandler struct {
	hierarchyService services.HierarchyService
	logger           *zap.Logger
}

// NewHierarchyHandler creates a new hierarchy handler.
func NewHierarchyHandler(hierarchyService services.HierarchyService, logger *zap.Logger) *HierarchyHandler {
	return &HierarchyHandler{
		hierarchyService: hierarchyService,
		logger:           logger,
	}
}

// RegisterRoutes registers the hierarchy handler's routes on the given mux.
func (h *HierarchyHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/company-hierarchy/{duns}", authMiddleware.RequireAuth(h.GetHierarchy))
}

// GetHierarchy handles GET /api/company-hierarchy/{duns}.
// An absent company and a company without hierarchy data both answer 404.
func (h *HierarchyHandler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	duns := r.PathValue("duns")

	result, err := h.hierarchyService.GetHierarchy(r.Context(), duns)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "not_found", "Hierarchy not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Hierarchy lookup failed", zap.String("duns", duns), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "hierarchy_failed", "Hierarchy lookup failed"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to encode hierarchy response", zap.Error(err))
	}
}
