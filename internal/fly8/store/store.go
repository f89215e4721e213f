package store

import (
	"context"
	"errors"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidRecord is returned when a record fails domain validation on
	// its way in, or a stored row fails it on the way out.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, mongo) implement this. Every write is a single atomic operation;
// there are no multi-record transactions, so uniqueness has to be enforced by
// the backend itself and surface as ErrAlreadyExists.
type Store interface {
	Users() Users
	Students() Students
	Services() Services
	Applications() Applications

	// ApplyMigrations brings the schema (tables, indexes) up to date.
	ApplyMigrations(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists when the email
	// or id is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// UpdatePasswordHash replaces the stored digest, used to move legacy
	// digests onto the current scheme.
	UpdatePasswordHash(ctx context.Context, userID, hash string) error

	// ListUsersByRole returns users with role, oldest first.
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	CountUsersByRole(ctx context.Context, role domain.Role) (int64, error)
}

type Students interface {
	// GetStudentByUserID returns the profile owned by userID.
	GetStudentByUserID(ctx context.Context, userID string) (domain.StudentProfile, error)

	GetStudentByID(ctx context.Context, id string) (domain.StudentProfile, error)

	// CreateStudent inserts a profile. Returns ErrAlreadyExists if the user
	// already owns one.
	CreateStudent(ctx context.Context, s domain.StudentProfile) error

	// UpdateOnboarding overwrites the onboarding fields of the profile owned
	// by userID and marks onboarding completed.
	UpdateOnboarding(ctx context.Context, userID string, o domain.Onboarding) error

	// AssignCounselor sets the counselor of the profile with id studentID.
	// Returns ErrNotFound when there is no such profile.
	AssignCounselor(ctx context.Context, studentID, counselorID string) error

	// AssignAgent sets the referring agent of the profile with id studentID.
	AssignAgent(ctx context.Context, studentID, agentID string) error

	// ListStudents returns every profile, oldest first.
	ListStudents(ctx context.Context) ([]domain.StudentProfile, error)

	// ListByCounselor returns the profiles assigned to counselorID, oldest
	// first.
	ListByCounselor(ctx context.Context, counselorID string) ([]domain.StudentProfile, error)

	ListByAgent(ctx context.Context, agentID string) ([]domain.StudentProfile, error)

	CountStudents(ctx context.Context) (int64, error)
	CountByCounselor(ctx context.Context, counselorID string) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
}

type Services interface {
	// ListServices returns the catalog, oldest first.
	ListServices(ctx context.Context) ([]domain.Service, error)

	GetServiceByID(ctx context.Context, id string) (domain.Service, error)

	// CreateService inserts a catalog entry (id is provided by the caller).
	CreateService(ctx context.Context, s domain.Service) error

	// IsEmpty returns true if the catalog has no entries.
	IsEmpty(ctx context.Context) (bool, error)
}

type Applications interface {
	// GetApplication looks up the application for a (student, service) pair.
	GetApplication(ctx context.Context, studentID, serviceID string) (domain.ServiceApplication, error)

	GetApplicationByID(ctx context.Context, id string) (domain.ServiceApplication, error)

	// CreateApplication inserts an application. Returns ErrAlreadyExists when
	// the (student, service) pair is taken, never overwrites.
	CreateApplication(ctx context.Context, a domain.ServiceApplication) error

	// UpdateApplicationStatus moves the application with id to status.
	// Progress is left as it is.
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error

	// ListByStudent returns a student's applications, oldest first.
	ListByStudent(ctx context.Context, studentID string) ([]domain.ServiceApplication, error)

	// CountByStatus counts applications in any of statuses.
	CountByStatus(ctx context.Context, statuses ...domain.ApplicationStatus) (int64, error)
}
