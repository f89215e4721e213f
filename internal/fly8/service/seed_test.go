package service

import (
	"context"
	"testing"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeedDefaults(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	n, err := e.catalog.SeedDefaults(ctx)
	require.NoError(t, err)
	require.Equal(t, len(DefaultServices), n)

	n, err = e.catalog.SeedDefaults(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "non-empty catalog is left alone")

	list, err := e.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(DefaultServices))
	for i, svc := range list {
		require.Equal(t, DefaultServices[i].Name, svc.Name)
	}
}

func TestSeedService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("catalog only by default", func(t *testing.T) {
		e := newEnv(t)
		seed := &SeedService{Store: e.store, Hasher: e.hasher, Catalog: e.catalog}
		require.NoError(t, seed.Run(ctx))

		empty, err := e.store.Services().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)

		_, err = e.store.Users().GetUserByEmail(ctx, "superadmin@fly8.com")
		require.Error(t, err)
	})

	t.Run("demo users are idempotent", func(t *testing.T) {
		e := newEnv(t)
		seed := &SeedService{
			Store: e.store, Hasher: e.hasher, Catalog: e.catalog,
			DemoUsers: true, DemoPassword: "password123",
		}
		require.NoError(t, seed.Run(ctx))
		require.NoError(t, seed.Run(ctx))

		for _, role := range domain.Roles {
			n, err := e.store.Users().CountUsersByRole(ctx, role)
			require.NoError(t, err)
			require.EqualValues(t, 1, n, role)
		}

		sess, err := e.auth.Login(ctx, "john@student.com", "password123")
		require.NoError(t, err)
		me, err := e.auth.Me(ctx, sess.User)
		require.NoError(t, err)
		require.True(t, me.OnboardingCompleted)
		require.Equal(t, []string{"USA", "UK"}, e.profile(t, sess.User.ID).InterestedCountries)

		_, err = e.auth.Login(ctx, "superadmin@fly8.com", "password123")
		require.NoError(t, err)
	})

	t.Run("demo users need a password", func(t *testing.T) {
		e := newEnv(t)
		seed := &SeedService{Store: e.store, Hasher: e.hasher, Catalog: e.catalog, DemoUsers: true}
		require.ErrorIs(t, seed.Run(ctx), ErrInvalidInput)
	})
}
