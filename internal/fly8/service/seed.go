package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/cryptox"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

type demoAccount struct {
	email, first, last string
	role               domain.Role
	countries          []string
}

var demoAccounts = []demoAccount{
	{"superadmin@fly8.com", "Super", "Admin", domain.RoleSuperAdmin, nil},
	{"counselor@fly8.com", "Sarah", "Johnson", domain.RoleCounselor, nil},
	{"agent@fly8.com", "Mike", "Wilson", domain.RoleAgent, nil},
	{"john@student.com", "John", "Smith", domain.RoleStudent, []string{"USA", "UK"}},
}

// SeedService prepares a fresh deployment: the default catalog always, the
// demo accounts only when DemoUsers is set.
type SeedService struct {
	Store        store.Store
	Hasher       *cryptox.Hasher
	Catalog      *CatalogService
	DemoUsers    bool
	DemoPassword string
}

func (s *SeedService) Run(ctx context.Context) error {
	if _, err := s.Catalog.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if !s.DemoUsers {
		return nil
	}
	if s.DemoPassword == "" {
		return fmt.Errorf("%w: demo password is empty", ErrInvalidInput)
	}

	for _, acct := range demoAccounts {
		if err := s.ensureDemo(ctx, acct); err != nil {
			return fmt.Errorf("seed %s: %w", acct.email, err)
		}
	}
	return nil
}

// ensureDemo creates acct unless a user with its email already exists.
func (s *SeedService) ensureDemo(ctx context.Context, acct demoAccount) error {
	users := s.Store.Users()

	switch _, err := users.GetUserByEmail(ctx, acct.email); {
	case err == nil:
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	hash, err := s.Hasher.Hash(s.DemoPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        acct.email,
		PasswordHash: hash,
		FirstName:    acct.first,
		LastName:     acct.last,
		Role:         acct.role,
		IsActive:     true,
		CreatedAt:    now,
	}
	if err := users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	if acct.role == domain.RoleStudent {
		p := domain.StudentProfile{
			ID:        idx.New().String(),
			UserID:    u.ID,
			CreatedAt: now,
		}
		domain.Onboarding{InterestedCountries: acct.countries}.Apply(&p)
		if err := s.Store.Students().CreateStudent(ctx, p); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
			return err
		}
	}

	slogx.FromContext(ctx).Info("created demo user",
		slog.String("email", acct.email),
		slog.String("role", acct.role.String()),
	)
	return nil
}
