package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account in the credential store. HashedPassword is a bcrypt
// hash and never leaves the service.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"full_name,omitempty"`
	HashedPassword string    `json:"-"`
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
