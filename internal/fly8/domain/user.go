package domain

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // lower-cased, unique
	PasswordHash string // argon2id PHC, or bcrypt for imported accounts
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	Phone        *string
	Country      *string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Validate rejects records missing required fields.
func (u User) Validate() error {
	switch {
	case u.ID == "":
		return fmt.Errorf("%w: user id is required", ErrInvalid)
	case u.Email == "" || !strings.Contains(u.Email, "@"):
		return fmt.Errorf("%w: user email is required", ErrInvalid)
	case u.Email != NormalizeEmail(u.Email):
		return fmt.Errorf("%w: user email must be normalized", ErrInvalid)
	case u.PasswordHash == "":
		return fmt.Errorf("%w: user password hash is required", ErrInvalid)
	case !u.Role.Valid():
		return fmt.Errorf("%w: user role %q", ErrInvalid, u.Role)
	case u.CreatedAt.IsZero():
		return fmt.Errorf("%w: user created_at is required", ErrInvalid)
	}
	return nil
}

// WithoutCredential returns a copy safe to hand to callers outside the
// auth flows.
func (u User) WithoutCredential() User {
	u.PasswordHash = ""
	return u
}
