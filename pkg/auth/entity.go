package auth

import (
	"time"
)

// User is a domain entity representing a system user.
// Password holds whatever the configured PasswordHasher produced and never
// leaves the service layer.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
