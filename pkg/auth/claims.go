// Package auth implements the bearer-token gateway in front of the search
// API: password login against the credential store, HS256 token issuance,
// and per-request validation.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UserKey is the context key holding the authenticated user.
const UserKey contextKey = "user"

// Claims are the JWT claims carried by issued access tokens. The subject
// claim is the username; everything else is standard.
type Claims struct {
	jwt.RegisteredClaims
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil and false if the request was not authenticated.
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
