package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// ApplicationView is an application joined with its catalog entry. Service
// is nil when the id is not in the catalog.
type ApplicationView struct {
	Application domain.ServiceApplication
	Service     *domain.Service
}

// ProfileView is everything a student sees about themselves.
type ProfileView struct {
	Student      domain.StudentProfile
	User         domain.User
	Applications []ApplicationView
}

// OnboardingService records a student's selections and derives one Service
// Application per selected service.
type OnboardingService struct {
	Store   store.Store
	Metrics *telemetry.Metrics
}

// Complete upserts the caller's profile with o (overwriting, not merging)
// and then makes sure an application exists for every selected service.
// Applications for services dropped from the selection are kept.
// Resubmitting the same selection changes nothing but the profile fields.
func (s *OnboardingService) Complete(ctx context.Context, userID string, o domain.Onboarding) (bool, error) {
	l := slogx.FromContext(ctx)

	profile, err := s.upsertProfile(ctx, userID, o)
	if err != nil {
		return false, err
	}

	created, err := s.deriveApplications(ctx, profile.ID, o.SelectedServices)
	if err != nil {
		return false, err
	}

	s.Metrics.OnboardingCompleted()
	s.Metrics.ApplicationsCreated(telemetry.SourceOnboarding, created)
	l.Info("onboarding completed",
		slog.String("student_id", profile.ID),
		slog.Int("services", len(o.SelectedServices)),
		slog.Int("applications_created", created),
	)
	return true, nil
}

func (s *OnboardingService) upsertProfile(
	ctx context.Context,
	userID string,
	o domain.Onboarding,
) (domain.StudentProfile, error) {
	students := s.Store.Students()

	profile, err := students.GetStudentByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := students.UpdateOnboarding(ctx, userID, o); err != nil {
			return domain.StudentProfile{}, err
		}
		o.Apply(&profile)
		return profile, nil

	case !errors.Is(err, store.ErrNotFound):
		return domain.StudentProfile{}, err
	}

	// No profile yet, e.g. signup stopped after writing the user.
	profile = domain.StudentProfile{
		ID:        idx.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	o.Apply(&profile)

	err = students.CreateStudent(ctx, profile)
	if err == nil {
		slogx.FromContext(ctx).Info("student profile created at onboarding", slog.String("user_id", userID))
		return profile, nil
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return domain.StudentProfile{}, err
	}

	// A concurrent submission created it first; overwrite that one.
	if err := students.UpdateOnboarding(ctx, userID, o); err != nil {
		return domain.StudentProfile{}, err
	}
	return students.GetStudentByUserID(ctx, userID)
}

// deriveApplications creates missing applications for serviceIDs and
// returns how many it created. Duplicates in serviceIDs are ignored.
func (s *OnboardingService) deriveApplications(ctx context.Context, studentID string, serviceIDs []string) (int, error) {
	apps := s.Store.Applications()
	seen := make(map[string]struct{}, len(serviceIDs))
	created := 0

	for _, serviceID := range serviceIDs {
		if _, dup := seen[serviceID]; dup || serviceID == "" {
			continue
		}
		seen[serviceID] = struct{}{}

		_, err := apps.GetApplication(ctx, studentID, serviceID)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, store.ErrNotFound):
			return created, err
		}

		app := domain.NewApplication(idx.New().String(), studentID, serviceID, time.Now().UTC())
		switch err := apps.CreateApplication(ctx, app); {
		case err == nil:
			created++
		case errors.Is(err, store.ErrAlreadyExists):
			// lost a race with a concurrent submission
		default:
			return created, fmt.Errorf("create application for %s: %w", serviceID, err)
		}
	}
	return created, nil
}

// Profile returns the caller's profile with joined applications.
func (s *OnboardingService) Profile(ctx context.Context, user domain.User) (ProfileView, error) {
	profile, err := s.Store.Students().GetStudentByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProfileView{}, ErrProfileNotFound
		}
		return ProfileView{}, err
	}

	apps, err := s.joined(ctx, profile.ID)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{Student: profile, User: user.WithoutCredential(), Applications: apps}, nil
}

// Applications lists the caller's applications; empty without a profile.
func (s *OnboardingService) Applications(ctx context.Context, userID string) ([]ApplicationView, error) {
	profile, err := s.Store.Students().GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []ApplicationView{}, nil
		}
		return nil, err
	}
	return s.joined(ctx, profile.ID)
}

func (s *OnboardingService) joined(ctx context.Context, studentID string) ([]ApplicationView, error) {
	apps, err := s.Store.Applications().ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return []ApplicationView{}, nil
	}

	catalog, err := s.Store.Services().ListServices(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	out := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		view := ApplicationView{Application: a}
		if svc, ok := byID[a.ServiceID]; ok {
			view.Service = &svc
		}
		out = append(out, view)
	}
	return out, nil
}
