package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// ApplicationService is the explicit single-service apply path.
type ApplicationService struct {
	Store   store.Store
	Metrics *telemetry.Metrics
}

// Apply creates a not_started application for the caller and serviceID.
// An existing application is never modified.
func (s *ApplicationService) Apply(ctx context.Context, userID, serviceID string) (domain.ServiceApplication, error) {
	profile, err := s.Store.Students().GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServiceApplication{}, ErrProfileNotFound
		}
		return domain.ServiceApplication{}, err
	}

	if _, err := s.Store.Services().GetServiceByID(ctx, serviceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServiceApplication{}, ErrServiceNotFound
		}
		return domain.ServiceApplication{}, err
	}

	apps := s.Store.Applications()
	switch _, err := apps.GetApplication(ctx, profile.ID, serviceID); {
	case err == nil:
		return domain.ServiceApplication{}, ErrAlreadyApplied
	case !errors.Is(err, store.ErrNotFound):
		return domain.ServiceApplication{}, err
	}

	app := domain.NewApplication(idx.New().String(), profile.ID, serviceID, time.Now().UTC())
	if err := apps.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ServiceApplication{}, ErrAlreadyApplied
		}
		return domain.ServiceApplication{}, err
	}

	s.Metrics.ApplicationsCreated(telemetry.SourceApply, 1)
	slogx.FromContext(ctx).Info("applied to service",
		slog.String("student_id", profile.ID),
		slog.String("service_id", serviceID),
	)
	return app, nil
}
