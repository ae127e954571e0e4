package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
)

// LoginRequest is the request body for password login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyTokenResponse echoes the authenticated account.
type VerifyTokenResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthHandler handles login and token verification.
type AuthHandler struct {
	authService auth.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("GET /api/verify-token", authMiddleware.RequireAuth(h.VerifyToken))
}

// Login handles POST /api/login.
// Exchanges a username/password pair for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			if err := ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Incorrect username or password"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "login_failed", "Login failed"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}); err != nil {
		h.logger.Error("Failed to encode login response", zap.Error(err))
	}
}

// VerifyToken handles GET /api/verify-token.
// Confirms the bearer token and returns the account it belongs to.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUser(r.Context())
	if !ok {
		if err := ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Could not validate credentials"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, VerifyTokenResponse{
		Username: user.Username,
		Email:    user.Email,
	}); err != nil {
		h.logger.Error("Failed to encode verify response", zap.Error(err))
	}
}
