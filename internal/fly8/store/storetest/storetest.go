// Package storetest is a conformance suite run by every store driver.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Opener returns a migrated, empty store. It should register its own cleanup.
type Opener func(t *testing.T) store.Store

// Run executes the whole suite against stores produced by open.
func Run(t *testing.T, open Opener) {
	t.Run("Users", func(t *testing.T) { testUsers(t, open(t)) })
	t.Run("Students", func(t *testing.T) { testStudents(t, open(t)) })
	t.Run("Services", func(t *testing.T) { testServices(t, open(t)) })
	t.Run("Applications", func(t *testing.T) { testApplications(t, open(t)) })
	t.Run("ConcurrentApplicationInsert", func(t *testing.T) { testConcurrentApplicationInsert(t, open(t)) })
	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, open(t).Ping(context.Background()))
	})
}

// now is truncated so every backend round-trips it exactly.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func ptr[T any](v T) *T { return &v }

// NewUser builds a valid user record.
func NewUser(email string, role domain.Role) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Email:        domain.NormalizeEmail(email),
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now(),
	}
}

// NewStudent builds an empty profile for userID.
func NewStudent(userID string) domain.StudentProfile {
	return domain.StudentProfile{
		ID:                  idx.New().String(),
		UserID:              userID,
		InterestedCountries: []string{},
		SelectedServices:    []string{},
		CreatedAt:           now(),
	}
}

func testUsers(t *testing.T, st store.Store) {
	ctx := context.Background()
	users := st.Users()

	u := NewUser("a@b.com", domain.RoleStudent)
	u.Phone = ptr("+61 400 000 000")
	require.NoError(t, users.CreateUser(ctx, u))

	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, domain.RoleStudent, got.Role)
	require.True(t, got.IsActive)
	require.Equal(t, u.Phone, got.Phone)
	require.Nil(t, got.Country)
	require.Nil(t, got.LastLogin)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Millisecond)

	byEmail, err := users.GetUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	t.Run("duplicate email", func(t *testing.T) {
		dup := NewUser("a@b.com", domain.RoleAgent)
		require.ErrorIs(t, users.CreateUser(ctx, dup), store.ErrAlreadyExists)

		n, err := users.CountUsersByRole(ctx, domain.RoleAgent)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("invalid record", func(t *testing.T) {
		bad := NewUser("c@d.com", domain.RoleStudent)
		bad.PasswordHash = ""
		require.ErrorIs(t, users.CreateUser(ctx, bad), store.ErrInvalidRecord)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = users.GetUserByEmail(ctx, "missing@b.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, users.UpdateLastLogin(ctx, "missing", now()), store.ErrNotFound)
	})

	t.Run("last login", func(t *testing.T) {
		at := now()
		require.NoError(t, users.UpdateLastLogin(ctx, u.ID, at))
		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLogin)
		require.WithinDuration(t, at, *got.LastLogin, time.Millisecond)
	})

	t.Run("password hash", func(t *testing.T) {
		require.ErrorIs(t, users.UpdatePasswordHash(ctx, "missing", "x"), store.ErrNotFound)
		require.ErrorIs(t, users.UpdatePasswordHash(ctx, u.ID, ""), store.ErrInvalidRecord)

		require.NoError(t, users.UpdatePasswordHash(ctx, u.ID, "$argon2id$rehashed"))
		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$rehashed", got.PasswordHash)
	})

	t.Run("list and count by role", func(t *testing.T) {
		c1 := NewUser("c1@fly8.com", domain.RoleCounselor)
		c2 := NewUser("c2@fly8.com", domain.RoleCounselor)
		c2.CreatedAt = c1.CreatedAt.Add(time.Second)
		require.NoError(t, users.CreateUser(ctx, c1))
		require.NoError(t, users.CreateUser(ctx, c2))

		list, err := users.ListUsersByRole(ctx, domain.RoleCounselor)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, c1.ID, list[0].ID)
		require.Equal(t, c2.ID, list[1].ID)

		n, err := users.CountUsersByRole(ctx, domain.RoleCounselor)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		empty, err := users.ListUsersByRole(ctx, domain.RoleSuperAdmin)
		require.NoError(t, err)
		require.NotNil(t, empty)
		require.Empty(t, empty)
	})
}

func testStudents(t *testing.T, st store.Store) {
	ctx := context.Background()

	u := NewUser("s@fly8.com", domain.RoleStudent)
	require.NoError(t, st.Users().CreateUser(ctx, u))

	students := st.Students()
	_, err := students.GetStudentByUserID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	p := NewStudent(u.ID)
	p.AssignedCounselor = ptr("counselor-1")
	require.NoError(t, students.CreateStudent(ctx, p))

	got, err := students.GetStudentByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.False(t, got.OnboardingCompleted)
	require.Equal(t, []string{}, got.InterestedCountries)
	require.Equal(t, []string{}, got.SelectedServices)
	require.Nil(t, got.Intake)

	t.Run("one profile per user", func(t *testing.T) {
		require.ErrorIs(t, students.CreateStudent(ctx, NewStudent(u.ID)), store.ErrAlreadyExists)
	})

	t.Run("onboarding overwrites", func(t *testing.T) {
		require.NoError(t, students.UpdateOnboarding(ctx, u.ID, domain.Onboarding{
			InterestedCountries: []string{"USA", "UK"},
			SelectedServices:    []string{"a", "b"},
			Intake:              ptr("Fall 2026"),
		}))
		require.NoError(t, students.UpdateOnboarding(ctx, u.ID, domain.Onboarding{
			InterestedCountries:  []string{"Canada"},
			SelectedServices:     []string{"c"},
			PreferredDestination: ptr("Toronto"),
		}))

		got, err := students.GetStudentByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.OnboardingCompleted)
		require.Equal(t, []string{"Canada"}, got.InterestedCountries)
		require.Equal(t, []string{"c"}, got.SelectedServices)
		require.Nil(t, got.Intake)
		require.Equal(t, "Toronto", *got.PreferredDestination)
		require.Equal(t, "counselor-1", *got.AssignedCounselor, "assignment untouched by onboarding")
	})

	t.Run("update missing profile", func(t *testing.T) {
		err := students.UpdateOnboarding(ctx, "missing", domain.Onboarding{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("counts", func(t *testing.T) {
		n, err := students.CountStudents(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = students.CountByCounselor(ctx, "counselor-1")
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = students.CountByAgent(ctx, "agent-1")
		require.NoError(t, err)
		require.Zero(t, n)

		list, err := students.ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("assignment", func(t *testing.T) {
		other := NewUser("s2@fly8.com", domain.RoleStudent)
		require.NoError(t, st.Users().CreateUser(ctx, other))
		q := NewStudent(other.ID)
		q.CreatedAt = p.CreatedAt.Add(time.Second)
		require.NoError(t, students.CreateStudent(ctx, q))

		require.NoError(t, students.AssignCounselor(ctx, q.ID, "counselor-1"))
		require.NoError(t, students.AssignAgent(ctx, q.ID, "agent-1"))
		require.NoError(t, students.AssignCounselor(ctx, p.ID, "counselor-2"))

		got, err := students.GetStudentByID(ctx, q.ID)
		require.NoError(t, err)
		require.Equal(t, other.ID, got.UserID)
		require.Equal(t, "counselor-1", *got.AssignedCounselor)
		require.Equal(t, "agent-1", *got.AssignedAgent)

		mine, err := students.ListByCounselor(ctx, "counselor-1")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, q.ID, mine[0].ID)

		mine, err = students.ListByCounselor(ctx, "counselor-2")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, p.ID, mine[0].ID)

		referred, err := students.ListByAgent(ctx, "agent-1")
		require.NoError(t, err)
		require.Len(t, referred, 1)

		none, err := students.ListByAgent(ctx, "agent-2")
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)

		n, err := students.CountByAgent(ctx, "agent-1")
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		require.ErrorIs(t, students.AssignCounselor(ctx, "missing", "counselor-1"), store.ErrNotFound)
		require.ErrorIs(t, students.AssignAgent(ctx, "missing", "agent-1"), store.ErrNotFound)
		_, err = students.GetStudentByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testServices(t *testing.T, st store.Store) {
	ctx := context.Background()
	services := st.Services()

	empty, err := services.IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	list, err := services.ListServices(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	svc := domain.Service{
		ID:                idx.New().String(),
		Name:              "Student Visa",
		Description:       "Visa application support and guidance",
		Category:          "visa",
		EstimatedDuration: ptr("4-8 weeks"),
		Price:             ptr(199.5),
		Icon:              ptr("FileText"),
		CreatedAt:         now(),
	}
	require.NoError(t, services.CreateService(ctx, svc))
	require.ErrorIs(t, services.CreateService(ctx, svc), store.ErrAlreadyExists)

	got, err := services.GetServiceByID(ctx, svc.ID)
	require.NoError(t, err)
	require.Equal(t, svc.Name, got.Name)
	require.Equal(t, 199.5, *got.Price)
	require.Equal(t, "FileText", *got.Icon)

	_, err = services.GetServiceByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	empty, err = services.IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	bad := svc
	bad.ID = idx.New().String()
	bad.Name = ""
	require.ErrorIs(t, services.CreateService(ctx, bad), store.ErrInvalidRecord)
}

func testApplications(t *testing.T, st store.Store) {
	ctx := context.Background()

	u := NewUser("apps@fly8.com", domain.RoleStudent)
	require.NoError(t, st.Users().CreateUser(ctx, u))
	p := NewStudent(u.ID)
	require.NoError(t, st.Students().CreateStudent(ctx, p))

	apps := st.Applications()
	_, err := apps.GetApplication(ctx, p.ID, "svc-a")
	require.ErrorIs(t, err, store.ErrNotFound)

	a := domain.NewApplication(idx.New().String(), p.ID, "svc-a", now())
	require.NoError(t, apps.CreateApplication(ctx, a))

	t.Run("duplicate pair is rejected, not overwritten", func(t *testing.T) {
		dup := domain.NewApplication(idx.New().String(), p.ID, "svc-a", now())
		dup.Status = domain.StatusCompleted
		dup.Progress = 100
		require.ErrorIs(t, apps.CreateApplication(ctx, dup), store.ErrAlreadyExists)

		got, err := apps.GetApplication(ctx, p.ID, "svc-a")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, domain.StatusNotStarted, got.Status)
		require.Zero(t, got.Progress)
	})

	t.Run("list and count", func(t *testing.T) {
		b := domain.NewApplication(idx.New().String(), p.ID, "svc-b", now().Add(time.Second))
		b.Status = domain.StatusCompleted
		b.Progress = 100
		require.NoError(t, apps.CreateApplication(ctx, b))

		list, err := apps.ListByStudent(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "svc-a", list[0].ServiceID)
		require.Equal(t, "svc-b", list[1].ServiceID)

		n, err := apps.CountByStatus(ctx, domain.ActiveStatuses...)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = apps.CountByStatus(ctx, domain.StatusCompleted)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = apps.CountByStatus(ctx)
		require.NoError(t, err)
		require.Zero(t, n)

		none, err := apps.ListByStudent(ctx, "nobody")
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)
	})

	t.Run("invalid record", func(t *testing.T) {
		bad := domain.NewApplication(idx.New().String(), p.ID, "svc-c", now())
		bad.Progress = -1
		require.ErrorIs(t, apps.CreateApplication(ctx, bad), store.ErrInvalidRecord)
	})

	t.Run("status update", func(t *testing.T) {
		got, err := apps.GetApplicationByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "svc-a", got.ServiceID)

		require.NoError(t, apps.UpdateApplicationStatus(ctx, a.ID, domain.StatusInProgress))
		got, err = apps.GetApplicationByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusInProgress, got.Status)
		require.Zero(t, got.Progress, "progress untouched")

		require.NoError(t, apps.UpdateApplicationStatus(ctx, a.ID, domain.StatusCompleted))
		n, err := apps.CountByStatus(ctx, domain.StatusCompleted)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		err = apps.UpdateApplicationStatus(ctx, a.ID, "archived")
		require.ErrorIs(t, err, store.ErrInvalidRecord)
		require.ErrorIs(t, apps.UpdateApplicationStatus(ctx, "missing", domain.StatusCompleted), store.ErrNotFound)
		_, err = apps.GetApplicationByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

// testConcurrentApplicationInsert races many inserts of the same pair; the
// backend must let exactly one through.
func testConcurrentApplicationInsert(t *testing.T, st store.Store) {
	ctx := context.Background()

	u := NewUser("race@fly8.com", domain.RoleStudent)
	require.NoError(t, st.Users().CreateUser(ctx, u))
	p := NewStudent(u.ID)
	require.NoError(t, st.Students().CreateStudent(ctx, p))

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
		other   []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Applications().CreateApplication(ctx,
				domain.NewApplication(idx.New().String(), p.ID, "svc-race", now()))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, store.ErrAlreadyExists):
				dupes++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, other)
	require.Equal(t, 1, created)
	require.Equal(t, workers-1, dupes)
}
