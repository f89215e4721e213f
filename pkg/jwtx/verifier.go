package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrInvalidToken covers every reason a token cannot be trusted: bad
	// signature, wrong algorithm, garbage input or missing claims.
	ErrInvalidToken = errors.New("jwtx: invalid token")
	// ErrExpired is only returned for tokens whose signature checked out.
	ErrExpired = errors.New("jwtx: token expired")
)

// HS256Verifier checks tokens produced by an HS256Signer holding the same
// secret.
type HS256Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewHS256Verifier creates a verifier for secret. A nil clock means time.Now.
func NewHS256Verifier(secret []byte, now func() time.Time) *HS256Verifier {
	if now == nil {
		now = time.Now
	}
	return &HS256Verifier{secret: secret, now: now}
}

// Verify validates the JWT string and returns its parsed Claims. The
// signature is checked before exp, so a tampered token that also expired
// reports ErrInvalidToken.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return Claims{}, fmt.Errorf("%w: missing sub or role", ErrInvalidToken)
	}

	return claims, nil
}
