package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/repositories"
)

// AuthService defines the interface for authentication operations.
// This abstraction separates HTTP handling from credential logic and makes
// both sides testable against mocks.
type AuthService interface {
	// Login verifies a username/password pair against the credential store
	// and returns a signed access token.
	// Returns apperrors.ErrInvalidCredentials for unknown users and wrong
	// passwords alike.
	Login(ctx context.Context, username, password string) (string, error)

	// Authenticate extracts the bearer token from the request, validates it
	// and resolves the account behind it.
	// Returns apperrors.ErrUnauthorized for missing/invalid/expired tokens
	// and apperrors.ErrAccountDisabled for valid tokens on disabled accounts.
	Authenticate(ctx context.Context, r *http.Request) (*models.User, error)
}

// authService implements AuthService.
type authService struct {
	users  repositories.UserRepository
	tokens *TokenService
	logger *zap.Logger
}

// NewAuthService creates an AuthService backed by the given credential store
// and token service.
func NewAuthService(users repositories.UserRepository, tokens *TokenService, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info("Issued access token", zap.String("username", user.Username))
	return token, nil
}

// Authenticate validates the request's bearer token and loads its account.
func (s *authService) Authenticate(ctx context.Context, r *http.Request) (*models.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		s.logger.Debug("Invalid Authorization header format",
			zap.String("path", r.URL.Path))
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := s.tokens.ValidateToken(parts[1])
	if err != nil {
		s.logger.Debug("Token validation failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if user.Disabled {
		return nil, apperrors.ErrAccountDisabled
	}

	return user, nil
}

// Ensure authService implements AuthService at compile time.
var _ AuthService = (*authService)(nil)
