package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/sqlite"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/cryptox"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretLength))

// env wires every service over one in-memory store.
type env struct {
	store      store.Store
	hasher     *cryptox.Hasher
	tokens     *TokenService
	guard      *AccessGuard
	auth       *AuthService
	onboarding *OnboardingService
	apply      *ApplicationService
	catalog    *CatalogService
	admin      *AdminService
	staff      *StaffService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	tokens := &TokenService{
		Signer:   signer,
		Verifier: jwtx.NewHS256Verifier(testSecret, nil),
		Issuer:   "fly8-test",
		TTL:      jwtx.DefaultTTL,
	}
	hasher := cryptox.NewHasher("test-pepper")
	metrics := telemetry.New()

	return &env{
		store:      st,
		hasher:     hasher,
		tokens:     tokens,
		guard:      &AccessGuard{Tokens: tokens, Store: st},
		auth:       &AuthService{Store: st, Hasher: hasher, Tokens: tokens, Metrics: metrics},
		onboarding: &OnboardingService{Store: st, Metrics: metrics},
		apply:      &ApplicationService{Store: st, Metrics: metrics},
		catalog:    &CatalogService{Store: st},
		admin:      &AdminService{Store: st},
		staff:      &StaffService{Store: st, Metrics: metrics},
	}
}

func (e *env) signup(t *testing.T, email string, role domain.Role) Session {
	t.Helper()

	sess, err := e.auth.Signup(context.Background(), NewUser{
		Email:     email,
		Password:  "pw123456",
		FirstName: "Test",
		LastName:  "User",
		Role:      role.String(),
	})
	require.NoError(t, err)
	return sess
}

func (e *env) seedCatalog(t *testing.T) []domain.Service {
	t.Helper()

	_, err := e.catalog.SeedDefaults(context.Background())
	require.NoError(t, err)
	list, err := e.catalog.List(context.Background())
	require.NoError(t, err)
	return list
}

func (e *env) profile(t *testing.T, userID string) domain.StudentProfile {
	t.Helper()

	p, err := e.store.Students().GetStudentByUserID(context.Background(), userID)
	require.NoError(t, err)
	return p
}

func (e *env) serviceIDs(t *testing.T, studentID string) []string {
	t.Helper()

	apps, err := e.store.Applications().ListByStudent(context.Background(), studentID)
	require.NoError(t, err)

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ServiceID)
	}
	return ids
}

func bearer(token string) string { return "Bearer " + token }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
