package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/cache"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/sqlite"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func openStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))
	return st
}

func newService(name string) domain.Service {
	return domain.Service{
		ID:          idx.New().String(),
		Name:        name,
		Description: name + " support",
		Category:    "test",
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestWrapWithoutRedisIsPassThrough(t *testing.T) {
	st := openStore(t)
	require.Same(t, st, cache.Wrap(st, nil, time.Minute))
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "failed to start redis container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestCatalogCache(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	st := openStore(t)
	cached := cache.Wrap(st, rdb, time.Minute)

	require.NoError(t, cached.Services().CreateService(ctx, newService("Student Visa")))

	list, err := cached.Services().ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := rdb.Exists(ctx, "fly8:catalog").Result()
	require.NoError(t, err)
	require.EqualValues(t, 1, n, "list populates the cache")

	t.Run("served from cache", func(t *testing.T) {
		// written behind the cache's back
		require.NoError(t, st.Services().CreateService(ctx, newService("Insurance")))

		list, err := cached.Services().ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("create invalidates", func(t *testing.T) {
		require.NoError(t, cached.Services().CreateService(ctx, newService("Travel Booking")))

		list, err := cached.Services().ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
	})

	t.Run("corrupt entry falls back to store", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "fly8:catalog", "not json", time.Minute).Err())

		list, err := cached.Services().ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
	})

	t.Run("other repositories untouched", func(t *testing.T) {
		require.NoError(t, cached.Ping(ctx))
		empty, err := cached.Services().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})
}
