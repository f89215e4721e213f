package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	t.Run("student gets token and empty profile", func(t *testing.T) {
		sess, err := e.auth.Signup(ctx, NewUser{
			Email: "a@b.com", Password: "pw123456", FirstName: "A", LastName: "B", Role: "student",
		})
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		require.Empty(t, sess.User.PasswordHash)
		require.True(t, sess.User.IsActive)

		id, err := e.tokens.Validate(sess.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, id.UserID)
		require.Equal(t, domain.RoleStudent, id.Role)

		p := e.profile(t, sess.User.ID)
		require.False(t, p.OnboardingCompleted)
		require.Empty(t, p.SelectedServices)

		u, err := e.guard.Authenticate(ctx, bearer(sess.Token))
		require.NoError(t, err)
		me, err := e.auth.Me(ctx, u)
		require.NoError(t, err)
		require.False(t, me.OnboardingCompleted)
	})

	t.Run("role defaults to student", func(t *testing.T) {
		sess, err := e.auth.Signup(ctx, NewUser{Email: "default@b.com", Password: "pw123456", FirstName: "D", LastName: "R"})
		require.NoError(t, err)
		require.Equal(t, domain.RoleStudent, sess.User.Role)
	})

	t.Run("duplicate email ignores case", func(t *testing.T) {
		before, err := e.store.Users().CountUsersByRole(ctx, domain.RoleStudent)
		require.NoError(t, err)

		_, err = e.auth.Signup(ctx, NewUser{Email: "  A@B.COM ", Password: "other-pass", FirstName: "X", LastName: "Y"})
		require.ErrorIs(t, err, ErrAlreadyExists)
		require.ErrorIs(t, err, ErrEmailTaken)

		after, err := e.store.Users().CountUsersByRole(ctx, domain.RoleStudent)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("roles", func(t *testing.T) {
		tests := []struct {
			role    string
			wantErr error
		}{
			{"counselor", nil},
			{"AGENT", nil},
			{"super_admin", ErrRoleNotAllowed},
			{"wizard", ErrInvalidInput},
		}
		for _, tt := range tests {
			t.Run(tt.role, func(t *testing.T) {
				sess, err := e.auth.Signup(ctx, NewUser{
					Email: tt.role + "@roles.com", Password: "pw123456", FirstName: "R", LastName: "R", Role: tt.role,
				})
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)

				_, err = e.store.Students().GetStudentByUserID(ctx, sess.User.ID)
				require.Error(t, err, "only students get a profile")

				me, err := e.auth.Me(ctx, sess.User)
				require.NoError(t, err)
				require.True(t, me.OnboardingCompleted)
			})
		}
	})

	t.Run("configured signup roles", func(t *testing.T) {
		restricted := &AuthService{
			Store: e.store, Hasher: e.hasher, Tokens: e.tokens,
			SignupRoles: []domain.Role{domain.RoleStudent},
		}
		_, err := restricted.Signup(ctx, NewUser{Email: "c@r.com", Password: "pw123456", Role: "counselor"})
		require.ErrorIs(t, err, ErrRoleNotAllowed)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	e.signup(t, "login@fly8.com", domain.RoleStudent)

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		_, errUnknown := e.auth.Login(ctx, "nobody@fly8.com", "pw123456")
		_, errWrong := e.auth.Login(ctx, "login@fly8.com", "wrong-password")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("success records last login", func(t *testing.T) {
		sess, err := e.auth.Login(ctx, "LOGIN@fly8.com", "pw123456")
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		require.Empty(t, sess.User.PasswordHash)
		require.NotNil(t, sess.User.LastLogin)

		stored, err := e.store.Users().GetUserByID(ctx, sess.User.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastLogin)
	})

	t.Run("last login write failure does not fail the login", func(t *testing.T) {
		auth := &AuthService{
			Store:  lastLoginFails{Store: e.store},
			Hasher: e.hasher,
			Tokens: e.tokens,
		}

		sess, err := auth.Login(ctx, "login@fly8.com", "pw123456")
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		require.Nil(t, sess.User.LastLogin)

		id, err := e.tokens.Validate(sess.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, id.UserID)
	})

	t.Run("legacy bcrypt digest is accepted and upgraded", func(t *testing.T) {
		legacy, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
		require.NoError(t, err)

		u := domain.User{
			ID:           idx.New().String(),
			Email:        "legacy@fly8.com",
			PasswordHash: string(legacy),
			FirstName:    "Legacy",
			LastName:     "User",
			Role:         domain.RoleCounselor,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, e.store.Users().CreateUser(ctx, u))

		_, err = e.auth.Login(ctx, "legacy@fly8.com", "old-secret")
		require.NoError(t, err)

		stored, err := e.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.False(t, e.hasher.NeedsRehash(stored.PasswordHash))

		_, err = e.auth.Login(ctx, "legacy@fly8.com", "old-secret")
		require.NoError(t, err, "still logs in after the upgrade")
	})

	t.Run("corrupt digest fails closed", func(t *testing.T) {
		u := domain.User{
			ID:           idx.New().String(),
			Email:        "corrupt@fly8.com",
			PasswordHash: "$argon2id$garbage",
			FirstName:    "C",
			LastName:     "D",
			Role:         domain.RoleAgent,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, e.store.Users().CreateUser(ctx, u))

		_, err := e.auth.Login(ctx, "corrupt@fly8.com", "anything")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	u, err := e.auth.CreateUser(ctx, NewUser{
		Email: "Admin2@Fly8.com", Password: "pw123456", FirstName: "A", LastName: "Two", Role: "super_admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin2@fly8.com", u.Email)
	require.Equal(t, domain.RoleSuperAdmin, u.Role)
	require.Empty(t, u.PasswordHash)

	_, err = e.auth.CreateUser(ctx, NewUser{Email: "admin2@fly8.com", Password: "pw123456", FirstName: "A", LastName: "B"})
	require.ErrorIs(t, err, ErrEmailTaken)

	s, err := e.auth.CreateUser(ctx, NewUser{Email: "kid@fly8.com", Password: "pw123456", FirstName: "K", LastName: "D"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleStudent, s.Role)

	_, err = e.store.Students().GetStudentByUserID(ctx, s.ID)
	require.Error(t, err, "admin creation writes no profile")

	_, err = e.auth.CreateUser(ctx, NewUser{Email: "x@fly8.com", Password: "pw123456", Role: "root"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// lastLoginFails is a store whose last-login writes always fail.
type lastLoginFails struct {
	store.Store
}

func (s lastLoginFails) Users() store.Users {
	return lastLoginFailsUsers{Users: s.Store.Users()}
}

type lastLoginFailsUsers struct {
	store.Users
}

func (lastLoginFailsUsers) UpdateLastLogin(context.Context, string, time.Time) error {
	return errors.New("disk I/O error")
}
