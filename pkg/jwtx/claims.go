package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a bearer token stays valid. There is no refresh
// flow and no revocation, so clients log in again once a week.
const DefaultTTL = 7 * 24 * time.Hour

// Claims carried by every bearer token. Only sub, role and exp are trusted
// by the verifier; iss and iat are informational.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the user at the time the token was minted.
	Role string `json:"role"`
}

// UserID is the subject the token was minted for.
func (c Claims) UserID() string { return c.Subject }

// NewClaims builds claims for userID and role expiring ttl after now.
func NewClaims(userID, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}
