package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
)

// Identity is what a validated token vouches for.
type Identity struct {
	UserID string
	Role   domain.Role
}

// TokenService issues and validates bearer tokens. The secret behind Signer
// and Verifier is loaded once at startup; rotating it invalidates every
// outstanding token.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue mints a token for userID and role valid for TTL.
func (s *TokenService) Issue(userID string, role domain.Role) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTTL
	}
	return s.Signer.Sign(jwtx.NewClaims(userID, role.String(), s.Issuer, ttl, s.now()))
}

// Validate returns the identity inside token. Failures wrap either
// jwtx.ErrExpired or jwtx.ErrInvalidToken, never both.
func (s *TokenService) Validate(token string) (Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return Identity{}, err
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", jwtx.ErrInvalidToken, err)
	}
	return Identity{UserID: claims.UserID(), Role: role}, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwtx.ErrExpired)
}
