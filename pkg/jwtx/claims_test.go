package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewHS256Signer_RejectsWeakSecret(t *testing.T) {
	_, err := jwtx.NewHS256Signer([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	tests := []struct {
		userID string
		role   string
	}{
		{"01JB4Z0000000000000000000A", "student"},
		{"4b1f6f3e-6f0e-4a57-9d0e-5c4f0c9b9a11", "super_admin"},
		{"u-1", "agent"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			tok, err := signer.Sign(jwtx.NewClaims(tt.userID, tt.role, "fly8-api", jwtx.DefaultTTL, now))
			require.NoError(t, err)

			claims, err := jwtx.NewHS256Verifier(testSecret, fixedClock(now.Add(time.Hour))).Verify(tok)
			require.NoError(t, err)
			require.Equal(t, tt.userID, claims.UserID())
			require.Equal(t, tt.role, claims.Role)
			require.Equal(t, now.Add(7*24*time.Hour), claims.ExpiresAt.Time.UTC())
		})
	}
}

func TestVerify_Expired(t *testing.T) {
	now := time.Now().UTC()
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	tok, err := signer.Sign(jwtx.NewClaims("u-1", "student", "", jwtx.DefaultTTL, now))
	require.NoError(t, err)

	_, err = jwtx.NewHS256Verifier(testSecret, fixedClock(now.Add(jwtx.DefaultTTL+time.Minute))).Verify(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)
	require.NotErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	now := time.Now().UTC()
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	tok, err := signer.Sign(jwtx.NewClaims("u-1", "student", "", jwtx.DefaultTTL, now))
	require.NoError(t, err)

	v := jwtx.NewHS256Verifier(testSecret, fixedClock(now))

	t.Run("corrupted signature", func(t *testing.T) {
		b := []byte(tok)
		i := len(b) - 10
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := v.Verify(string(b))
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := jwtx.NewHS256Verifier([]byte(strings.Repeat("z", 32)), fixedClock(now))
		_, err := other.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("tampered and expired reports invalid", func(t *testing.T) {
		late := jwtx.NewHS256Verifier([]byte(strings.Repeat("z", 32)), fixedClock(now.Add(30*24*time.Hour)))
		_, err := late.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("role escalation in payload", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
			jwtx.NewClaims("u-1", "super_admin", "", jwtx.DefaultTTL, now)).
			SignedString([]byte(strings.Repeat("x", 32)))
		require.NoError(t, err)

		parts := strings.Split(tok, ".")
		forgedParts := strings.Split(forged, ".")
		_, err = v.Verify(parts[0] + "." + forgedParts[1] + "." + parts[2])
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, s := range []string{"", "abc", "a.b.c"} {
			_, err := v.Verify(s)
			require.ErrorIs(t, err, jwtx.ErrInvalidToken, s)
		}
	})
}

func TestVerify_RejectsNoneAndMissingClaims(t *testing.T) {
	now := time.Now().UTC()
	v := jwtx.NewHS256Verifier(testSecret, fixedClock(now))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone,
		jwtx.NewClaims("u-1", "student", "", jwtx.DefaultTTL, now)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Verify(none)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
		Role:             "student",
	}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = v.Verify(noExp)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = v.Verify(noRole)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}
