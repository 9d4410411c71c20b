package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionNotFound    = errors.New("session not found")
)

// ErrInvalidInput is returned when signup or login input fails validation.
type ErrInvalidInput string

func (e ErrInvalidInput) Error() string { return string(e) }

// UserRepository abstracts persistence concerns from the domain layer.
// Create must return ErrUserAlreadyExists on a duplicate email and
// GetByEmail must return ErrNotFound when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// SessionStore maps opaque bearer tokens to the email of the user they
// authenticate. Implementations must be safe for concurrent use.
type SessionStore interface {
	// Issue records a fresh token for email. Tokens for the same email coexist.
	Issue(ctx context.Context, email string) (string, error)
	// Resolve returns ErrSessionNotFound for unknown or revoked tokens.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke is a no-op for unknown tokens.
	Revoke(ctx context.Context, token string) error
	Count(ctx context.Context) (int, error)
}
