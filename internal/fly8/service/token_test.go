package service

import (
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	t.Run("round trip", func(t *testing.T) {
		for _, role := range domain.Roles {
			tok, err := e.tokens.Issue("user-1", role)
			require.NoError(t, err)

			id, err := e.tokens.Validate(tok)
			require.NoError(t, err)
			require.Equal(t, Identity{UserID: "user-1", Role: role}, id)
		}
	})

	t.Run("expired is distinct from invalid", func(t *testing.T) {
		old := *e.tokens
		old.Now = fixedClock(time.Now().Add(-jwtx.DefaultTTL - time.Minute))
		tok, err := old.Issue("user-1", domain.RoleStudent)
		require.NoError(t, err)

		_, err = e.tokens.Validate(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
		require.NotErrorIs(t, err, jwtx.ErrInvalidToken)
		require.True(t, IsExpired(err))
	})

	t.Run("tampered", func(t *testing.T) {
		tok, err := e.tokens.Issue("user-1", domain.RoleStudent)
		require.NoError(t, err)

		_, err = e.tokens.Validate(tok + "x")
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
		require.False(t, IsExpired(err))
	})

	t.Run("unknown role claim", func(t *testing.T) {
		tok, err := e.tokens.Signer.Sign(jwtx.NewClaims("user-1", "wizard", "fly8-test", time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = e.tokens.Validate(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("default ttl", func(t *testing.T) {
		noTTL := *e.tokens
		noTTL.TTL = 0
		noTTL.Now = fixedClock(time.Now().Add(-jwtx.DefaultTTL + time.Hour))
		tok, err := noTTL.Issue("user-1", domain.RoleAgent)
		require.NoError(t, err)

		_, err = e.tokens.Validate(tok)
		require.NoError(t, err)
	})
}
