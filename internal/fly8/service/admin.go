package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// Metrics are the dashboard counters.
type Metrics struct {
	TotalStudents         int64
	TotalCounselors       int64
	TotalAgents           int64
	ActiveApplications    int64
	CompletedApplications int64
}

// StudentDetails is one profile with its owner and applications. User is
// nil if the owning user record is missing.
type StudentDetails struct {
	Student      domain.StudentProfile
	User         *domain.User
	Applications []domain.ServiceApplication
}

// StaffMember is a counselor or agent with the number of students assigned
// to them.
type StaffMember struct {
	User     domain.User
	Students int64
}

// AdminService backs the super_admin views and student assignment.
type AdminService struct {
	Store store.Store
}

func (s *AdminService) Metrics(ctx context.Context) (Metrics, error) {
	var (
		m   Metrics
		err error
	)
	if m.TotalStudents, err = s.Store.Students().CountStudents(ctx); err != nil {
		return Metrics{}, err
	}
	if m.TotalCounselors, err = s.Store.Users().CountUsersByRole(ctx, domain.RoleCounselor); err != nil {
		return Metrics{}, err
	}
	if m.TotalAgents, err = s.Store.Users().CountUsersByRole(ctx, domain.RoleAgent); err != nil {
		return Metrics{}, err
	}
	apps := s.Store.Applications()
	if m.ActiveApplications, err = apps.CountByStatus(ctx, domain.ActiveStatuses...); err != nil {
		return Metrics{}, err
	}
	if m.CompletedApplications, err = apps.CountByStatus(ctx, domain.StatusCompleted); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

func (s *AdminService) Students(ctx context.Context) ([]StudentDetails, error) {
	profiles, err := s.Store.Students().ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	return studentDetails(ctx, s.Store, profiles)
}

// studentDetails joins each profile with its owner and applications.
func studentDetails(ctx context.Context, st store.Store, profiles []domain.StudentProfile) ([]StudentDetails, error) {
	out := make([]StudentDetails, 0, len(profiles))
	for _, p := range profiles {
		d := StudentDetails{Student: p}

		u, err := st.Users().GetUserByID(ctx, p.UserID)
		switch {
		case err == nil:
			u = u.WithoutCredential()
			d.User = &u
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}

		if d.Applications, err = st.Applications().ListByStudent(ctx, p.ID); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// AssignCounselor puts the student profile studentID in the care of
// counselorID, replacing any earlier counselor.
func (s *AdminService) AssignCounselor(ctx context.Context, studentID, counselorID string) (domain.StudentProfile, error) {
	return s.assign(ctx, studentID, counselorID, domain.RoleCounselor, s.Store.Students().AssignCounselor)
}

// AssignAgent records agentID as the agent who referred studentID.
func (s *AdminService) AssignAgent(ctx context.Context, studentID, agentID string) (domain.StudentProfile, error) {
	return s.assign(ctx, studentID, agentID, domain.RoleAgent, s.Store.Students().AssignAgent)
}

func (s *AdminService) assign(
	ctx context.Context,
	studentID, staffID string,
	role domain.Role,
	write func(context.Context, string, string) error,
) (domain.StudentProfile, error) {
	staff, err := s.Store.Users().GetUserByID(ctx, staffID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.StudentProfile{}, fmt.Errorf("%w: no %s with id %q", ErrInvalidAssignee, role, staffID)
	case err != nil:
		return domain.StudentProfile{}, err
	case staff.Role != role:
		return domain.StudentProfile{}, fmt.Errorf("%w: user %q is a %s, not a %s", ErrInvalidAssignee, staffID, staff.Role, role)
	}

	if err := write(ctx, studentID, staffID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.StudentProfile{}, ErrStudentNotFound
		}
		return domain.StudentProfile{}, err
	}

	profile, err := s.Store.Students().GetStudentByID(ctx, studentID)
	if err != nil {
		return domain.StudentProfile{}, err
	}

	slogx.FromContext(ctx).Info("student assigned",
		slog.String("student_id", studentID),
		slog.String("role", role.String()),
		slog.String("staff_id", staffID),
	)
	return profile, nil
}

// Counselors lists counselors with their assigned student counts.
func (s *AdminService) Counselors(ctx context.Context) ([]StaffMember, error) {
	return s.staff(ctx, domain.RoleCounselor, s.Store.Students().CountByCounselor)
}

// Agents lists agents with their referred student counts.
func (s *AdminService) Agents(ctx context.Context) ([]StaffMember, error) {
	return s.staff(ctx, domain.RoleAgent, s.Store.Students().CountByAgent)
}

func (s *AdminService) staff(
	ctx context.Context,
	role domain.Role,
	count func(context.Context, string) (int64, error),
) ([]StaffMember, error) {
	users, err := s.Store.Users().ListUsersByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	out := make([]StaffMember, 0, len(users))
	for _, u := range users {
		n, err := count(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, StaffMember{User: u.WithoutCredential(), Students: n})
	}
	return out, nil
}
