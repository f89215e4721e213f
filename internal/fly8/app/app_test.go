package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, vars map[string]string) *Application {
	t.Helper()

	dir := t.TempDir()
	base := map[string]string{
		"LOG_LEVEL":          "error",
		"FLY8_DATABASE_FILE": filepath.Join(dir, "fly8.db"),
		"FLY8_PEPPER_FILE":   filepath.Join(dir, "pepper"),
	}
	for k, v := range vars {
		base[k] = v
	}

	cfg, err := loadFrom(t, base)
	require.NoError(t, err)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.close() })
	return app
}

func TestNewSeedsCatalog(t *testing.T) {
	app := newTestApp(t, nil)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()
	client := fly8sdk.NewClient(srv.URL)

	svcs, err := client.Services(context.Background())
	require.NoError(t, err)
	require.Len(t, svcs, len(service.DefaultServices))

	_, err = client.Login(context.Background(), "superadmin@fly8.com", "password123")
	require.ErrorIs(t, err, fly8sdk.ErrInvalidCredentials)
}

func TestNewSeedsDemoUsers(t *testing.T) {
	app := newTestApp(t, map[string]string{
		"FLY8_SEED_DEMO_USERS": "true",
		"FLY8_DEMO_PASSWORD":   "demo-password",
	})

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()
	client := fly8sdk.NewClient(srv.URL)
	ctx := context.Background()

	admin, err := client.Login(ctx, "superadmin@fly8.com", "demo-password")
	require.NoError(t, err)
	require.Equal(t, "super_admin", admin.User.Role)

	m, err := client.WithToken(admin.Token).AdminMetrics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), m.TotalStudents)
	require.Equal(t, int64(1), m.TotalCounselors)
	require.Equal(t, int64(1), m.TotalAgents)

	john, err := client.Login(ctx, "john@student.com", "demo-password")
	require.NoError(t, err)
	profile, err := client.WithToken(john.Token).Profile(ctx)
	require.NoError(t, err)
	require.True(t, profile.Student.OnboardingCompleted)
	require.Equal(t, []string{"USA", "UK"}, profile.Student.InterestedCountries)
}

func TestTokensLastSevenDays(t *testing.T) {
	a := newTestApp(t, nil)
	tokens := *a.tokenService

	tokens.Now = func() time.Time { return time.Now().Add(-7*24*time.Hour + time.Minute) }
	fresh, err := tokens.Issue("01HZZZZZZZZZZZZZZZZZZZZZZZ", "student")
	require.NoError(t, err)
	_, err = a.tokenService.Validate(fresh)
	require.NoError(t, err)

	tokens.Now = func() time.Time { return time.Now().Add(-7*24*time.Hour - time.Minute) }
	stale, err := tokens.Issue("01HZZZZZZZZZZZZZZZZZZZZZZZ", "student")
	require.NoError(t, err)
	_, err = a.tokenService.Validate(stale)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestDevSecretIsEphemeral(t *testing.T) {
	a := newTestApp(t, nil)
	b := newTestApp(t, nil)

	tok, err := a.tokenService.Issue("01HZZZZZZZZZZZZZZZZZZZZZZZ", "student")
	require.NoError(t, err)

	_, err = a.tokenService.Validate(tok)
	require.NoError(t, err)
	_, err = b.tokenService.Validate(tok)
	require.Error(t, err)
}
