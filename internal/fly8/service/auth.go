package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/cryptox"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// DefaultSignupRoles are the roles a visitor may pick for themselves.
var DefaultSignupRoles = []domain.Role{domain.RoleStudent, domain.RoleCounselor, domain.RoleAgent}

// NewUser is the input to signup and admin user creation. Role is the raw
// value from the request; empty means student.
type NewUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Phone     *string
	Country   *string
}

// Session is the result of a successful signup or login.
type Session struct {
	Token string
	User  domain.User
}

// Me is the identity introspection view.
type Me struct {
	User                domain.User
	OnboardingCompleted bool
}

type AuthService struct {
	Store   store.Store
	Hasher  *cryptox.Hasher
	Tokens  *TokenService
	Metrics *telemetry.Metrics

	// SignupRoles limits public signup; nil means DefaultSignupRoles.
	SignupRoles []domain.Role

	dummyOnce sync.Once
	dummyHash string
}

// Signup registers a user and, for students, an empty Student Profile. The
// two writes are independent: if the profile cannot be written the user
// still gets a session and onboarding creates the profile later.
func (s *AuthService) Signup(ctx context.Context, in NewUser) (Session, error) {
	l := slogx.FromContext(ctx)

	role, err := s.signupRole(in.Role)
	if err != nil {
		s.Metrics.AuthAttempt(telemetry.OpSignup, telemetry.OutcomeFailure)
		return Session{}, err
	}

	user, err := s.createUser(ctx, in, role)
	if err != nil {
		s.Metrics.AuthAttempt(telemetry.OpSignup, telemetry.OutcomeFailure)
		return Session{}, err
	}

	if role == domain.RoleStudent {
		profile := domain.StudentProfile{
			ID:                  idx.New().String(),
			UserID:              user.ID,
			InterestedCountries: []string{},
			SelectedServices:    []string{},
			CreatedAt:           user.CreatedAt,
		}
		if err := s.Store.Students().CreateStudent(ctx, profile); err != nil {
			l.Warn("signup student profile not created",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}

	token, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return Session{}, err
	}

	s.Metrics.AuthAttempt(telemetry.OpSignup, telemetry.OutcomeSuccess)
	l.Info("user signed up", slog.String("user_id", user.ID), slog.String("role", role.String()))

	return Session{Token: token, User: user.WithoutCredential()}, nil
}

// CreateUser is the admin path: any valid role, no token and no profile.
func (s *AuthService) CreateUser(ctx context.Context, in NewUser) (domain.User, error) {
	role := domain.RoleStudent
	if in.Role != "" {
		var err error
		if role, err = domain.ParseRole(in.Role); err != nil {
			return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	user, err := s.createUser(ctx, in, role)
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created by admin",
		slog.String("user_id", user.ID),
		slog.String("role", role.String()),
	)
	return user.WithoutCredential(), nil
}

func (s *AuthService) signupRole(raw string) (domain.Role, error) {
	if raw == "" {
		return domain.RoleStudent, nil
	}

	role, err := domain.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	allowed := s.SignupRoles
	if allowed == nil {
		allowed = DefaultSignupRoles
	}
	if !slices.Contains(allowed, role) {
		return "", ErrRoleNotAllowed
	}
	return role, nil
}

func (s *AuthService) createUser(ctx context.Context, in NewUser, role domain.Role) (domain.User, error) {
	email := domain.NormalizeEmail(in.Email)

	// The unique index is authoritative; this only saves a password hash
	// for the common duplicate case.
	switch _, err := s.Store.Users().GetUserByEmail(ctx, email); {
	case err == nil:
		return domain.User{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
		Phone:        in.Phone,
		Country:      in.Country,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, ErrEmailTaken
		case errors.Is(err, store.ErrInvalidRecord):
			return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return domain.User{}, err
	}
	return user, nil
}

// Login checks credentials and returns a session. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials after the same amount of
// hashing work.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.Hasher.Verify(password, s.dummy())
			s.Metrics.AuthAttempt(telemetry.OpLogin, telemetry.OutcomeFailure)
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMalformedHash) {
			l.Error("stored password hash unreadable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		s.Metrics.AuthAttempt(telemetry.OpLogin, telemetry.OutcomeFailure)
		return Session{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, now); err != nil {
		l.Warn("last login not recorded", slog.String("user_id", user.ID), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	if s.Hasher.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user.ID, password)
	}

	token, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return Session{}, err
	}

	s.Metrics.AuthAttempt(telemetry.OpLogin, telemetry.OutcomeSuccess)
	l.Info("user logged in", slog.String("user_id", user.ID))

	return Session{Token: token, User: user.WithoutCredential()}, nil
}

// rehash moves a verified password onto the current digest scheme. Failure
// only costs another attempt on the next login.
func (s *AuthService) rehash(ctx context.Context, userID, password string) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		l.Warn("password rehash failed", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	l.Info("password rehashed", slog.String("user_id", userID))
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.Hasher.Hash("fly8-login-timing")
		if err != nil {
			// still parses fully and fails to match
			hash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// Me reports user with its onboarding state. Non-students, and students
// without a profile, count as onboarded.
func (s *AuthService) Me(ctx context.Context, user domain.User) (Me, error) {
	me := Me{User: user.WithoutCredential(), OnboardingCompleted: true}
	if user.Role != domain.RoleStudent {
		return me, nil
	}

	profile, err := s.Store.Students().GetStudentByUserID(ctx, user.ID)
	switch {
	case err == nil:
		me.OnboardingCompleted = profile.OnboardingCompleted
	case !errors.Is(err, store.ErrNotFound):
		return Me{}, err
	}
	return me, nil
}
