package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// StaffService backs the counselor and agent views.
type StaffService struct {
	Store   store.Store
	Metrics *telemetry.Metrics
}

// MyStudents lists the students in staff's care: assigned ones for a
// counselor, referred ones for an agent. Other roles have none.
func (s *StaffService) MyStudents(ctx context.Context, staff domain.User) ([]StudentDetails, error) {
	var (
		profiles []domain.StudentProfile
		err      error
	)
	switch staff.Role {
	case domain.RoleCounselor:
		profiles, err = s.Store.Students().ListByCounselor(ctx, staff.ID)
	case domain.RoleAgent:
		profiles, err = s.Store.Students().ListByAgent(ctx, staff.ID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return studentDetails(ctx, s.Store, profiles)
}

// UpdateApplicationStatus moves an application of one of counselor's
// assigned students to status.
func (s *StaffService) UpdateApplicationStatus(
	ctx context.Context,
	counselor domain.User,
	applicationID string,
	status domain.ApplicationStatus,
) (domain.ServiceApplication, error) {
	if !status.Valid() {
		return domain.ServiceApplication{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	apps := s.Store.Applications()
	app, err := apps.GetApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServiceApplication{}, ErrAppNotFound
		}
		return domain.ServiceApplication{}, err
	}

	profile, err := s.Store.Students().GetStudentByID(ctx, app.StudentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.ServiceApplication{}, err
	}
	if err != nil || profile.AssignedCounselor == nil || *profile.AssignedCounselor != counselor.ID {
		return domain.ServiceApplication{}, ErrNotAssigned
	}

	if app.Status == status {
		return app, nil
	}
	if err := apps.UpdateApplicationStatus(ctx, app.ID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServiceApplication{}, ErrAppNotFound
		}
		return domain.ServiceApplication{}, err
	}

	s.Metrics.ApplicationStatusChanged(string(status))
	slogx.FromContext(ctx).Info("application status changed",
		slog.String("application_id", app.ID),
		slog.String("from", string(app.Status)),
		slog.String("to", string(status)),
	)
	app.Status = status
	return app, nil
}
