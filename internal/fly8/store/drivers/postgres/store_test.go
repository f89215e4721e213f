package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/postgres"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/storetest"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "fly8"
	pgPassword = "fly8"
)

// setupPostgres starts a throwaway postgres and returns a DSN template with
// a %s placeholder for the database name.
func setupPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "failed to start postgres container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%%s?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// opener hands every caller its own freshly migrated database.
func opener(dsnTemplate string) storetest.Opener {
	var seq atomic.Int64

	return func(t *testing.T) store.Store {
		t.Helper()
		ctx := context.Background()

		name := fmt.Sprintf("fly8_%d", seq.Add(1))
		admin, err := pgx.Connect(ctx, fmt.Sprintf(dsnTemplate, "postgres"))
		require.NoError(t, err)
		_, err = admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize())
		require.NoError(t, err)
		require.NoError(t, admin.Close(ctx))

		st, err := postgres.NewStore(ctx, fmt.Sprintf(dsnTemplate, name))
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		require.NoError(t, st.ApplyMigrations(ctx))
		return st
	}
}

func TestConformance(t *testing.T) {
	open := opener(setupPostgres(t))

	storetest.Run(t, open)

	t.Run("ApplyMigrationsTwice", func(t *testing.T) {
		st := open(t)
		require.NoError(t, st.ApplyMigrations(context.Background()))
	})
}

func TestNewStoreRejectsBadDSN(t *testing.T) {
	_, err := postgres.NewStore(context.Background(), "::not a dsn::")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "postgres:"))
}
