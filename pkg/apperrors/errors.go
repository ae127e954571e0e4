package apperrors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrAccountDisabled    = errors.New("inactive user")
)
