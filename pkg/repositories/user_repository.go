package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/database"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// UserRepository is the credential store behind the auth gateway.
type UserRepository interface {
	// FindByUsername returns the user with the given username.
	// Returns apperrors.ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Upsert creates or updates a user keyed by username. Used to provision
	// the seeded admin account at startup.
	Upsert(ctx context.Context, user *models.User) error
}

// userRepository implements UserRepository using PostgreSQL.
type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUsername returns the user with the given username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, email, full_name, hashed_password, disabled, created_at, updated_at
		FROM users
		WHERE username = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.Disabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Upsert creates or updates a user keyed by username.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, username, email, full_name, hashed_password, disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email,
		    full_name = EXCLUDED.full_name,
		    hashed_password = EXCLUDED.hashed_password,
		    disabled = EXCLUDED.disabled,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.HashedPassword,
		user.Disabled,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// Ensure userRepository implements UserRepository at compile time.
var _ UserRepository = (*userRepository)(nil)
