package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/config"
)

// InfoResponse describes the API on the unauthenticated root endpoint.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthHandler handles the liveness and API info endpoints.
type HealthHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /api/{$}", h.Info)
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Info handles GET /api/ requests. Unauthenticated liveness/info endpoint.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	if err := WriteJSON(w, http.StatusOK, InfoResponse{
		Message: "Business Partner Search API",
		Version: h.cfg.Version,
	}); err != nil {
		h.logger.Error("Failed to encode info response", zap.Error(err))
	}
}
