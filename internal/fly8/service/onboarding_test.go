package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestOnboardingComplete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("resubmitting the same selection creates nothing new", func(t *testing.T) {
		e := newEnv(t)
		sess := e.signup(t, "same@fly8.com", domain.RoleStudent)
		o := domain.Onboarding{SelectedServices: []string{"A", "B"}, InterestedCountries: []string{"USA"}}

		done, err := e.onboarding.Complete(ctx, sess.User.ID, o)
		require.NoError(t, err)
		require.True(t, done)

		p := e.profile(t, sess.User.ID)
		first := e.serviceIDs(t, p.ID)
		require.ElementsMatch(t, []string{"A", "B"}, first)

		_, err = e.onboarding.Complete(ctx, sess.User.ID, o)
		require.NoError(t, err)
		require.Equal(t, first, e.serviceIDs(t, p.ID))
	})

	t.Run("derivation is additive", func(t *testing.T) {
		e := newEnv(t)
		sess := e.signup(t, "additive@fly8.com", domain.RoleStudent)

		_, err := e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{SelectedServices: []string{"A", "B"}})
		require.NoError(t, err)
		_, err = e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{SelectedServices: []string{"B", "C"}})
		require.NoError(t, err)

		p := e.profile(t, sess.User.ID)
		require.ElementsMatch(t, []string{"A", "B", "C"}, e.serviceIDs(t, p.ID))
		require.Equal(t, []string{"B", "C"}, p.SelectedServices, "profile selection is overwritten")
	})

	t.Run("profile fields are overwritten not merged", func(t *testing.T) {
		e := newEnv(t)
		sess := e.signup(t, "overwrite@fly8.com", domain.RoleStudent)

		_, err := e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{
			InterestedCountries: []string{"USA", "UK"},
			Intake:              ptr("Fall 2026"),
		})
		require.NoError(t, err)
		_, err = e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{
			InterestedCountries:  []string{"Canada"},
			PreferredDestination: ptr("Toronto"),
		})
		require.NoError(t, err)

		p := e.profile(t, sess.User.ID)
		require.True(t, p.OnboardingCompleted)
		require.Equal(t, []string{"Canada"}, p.InterestedCountries)
		require.Nil(t, p.Intake)
		require.Equal(t, "Toronto", *p.PreferredDestination)
	})

	t.Run("duplicate ids in one submission", func(t *testing.T) {
		e := newEnv(t)
		sess := e.signup(t, "dupes@fly8.com", domain.RoleStudent)

		_, err := e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{SelectedServices: []string{"A", "A", "", "B", "A"}})
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, e.serviceIDs(t, e.profile(t, sess.User.ID).ID))
	})

	t.Run("missing profile is created", func(t *testing.T) {
		e := newEnv(t)
		u, err := e.auth.CreateUser(ctx, NewUser{Email: "heal@fly8.com", Password: "pw123456", FirstName: "H", LastName: "L"})
		require.NoError(t, err)

		_, err = e.onboarding.Complete(ctx, u.ID, domain.Onboarding{SelectedServices: []string{"A"}})
		require.NoError(t, err)

		p := e.profile(t, u.ID)
		require.True(t, p.OnboardingCompleted)
		require.Equal(t, []string{"A"}, e.serviceIDs(t, p.ID))
	})

	t.Run("concurrent submissions for one student", func(t *testing.T) {
		e := newEnv(t)
		sess := e.signup(t, "race@fly8.com", domain.RoleStudent)
		o := domain.Onboarding{SelectedServices: []string{"A", "B", "C"}}

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := e.onboarding.Complete(ctx, sess.User.ID, o)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		require.ElementsMatch(t, []string{"A", "B", "C"}, e.serviceIDs(t, e.profile(t, sess.User.ID).ID))
	})
}

func TestStudentViews(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	catalog := e.seedCatalog(t)

	sess := e.signup(t, "views@fly8.com", domain.RoleStudent)
	_, err := e.onboarding.Complete(ctx, sess.User.ID, domain.Onboarding{
		SelectedServices: []string{catalog[0].ID, "retired-service"},
	})
	require.NoError(t, err)

	t.Run("profile joins catalog", func(t *testing.T) {
		view, err := e.onboarding.Profile(ctx, sess.User)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, view.Student.UserID)
		require.Len(t, view.Applications, 2)

		byService := map[string]ApplicationView{}
		for _, a := range view.Applications {
			byService[a.Application.ServiceID] = a
		}
		require.NotNil(t, byService[catalog[0].ID].Service)
		require.Equal(t, catalog[0].Name, byService[catalog[0].ID].Service.Name)
		require.Nil(t, byService["retired-service"].Service)
	})

	t.Run("no profile", func(t *testing.T) {
		u, err := e.auth.CreateUser(ctx, NewUser{Email: "bare@fly8.com", Password: "pw123456", FirstName: "B", LastName: "R"})
		require.NoError(t, err)

		_, err = e.onboarding.Profile(ctx, u)
		require.ErrorIs(t, err, ErrNotFound)

		apps, err := e.onboarding.Applications(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, apps)
		require.Empty(t, apps)
	})

	t.Run("applications list", func(t *testing.T) {
		apps, err := e.onboarding.Applications(ctx, sess.User.ID)
		require.NoError(t, err)
		require.Len(t, apps, 2)
		for _, a := range apps {
			require.Equal(t, domain.StatusNotStarted, a.Application.Status)
			require.Zero(t, a.Application.Progress)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		apps, err := e.onboarding.Applications(ctx, idx.New().String())
		require.NoError(t, err)
		require.Empty(t, apps)
	})
}
