package domain

import (
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	StatusNotStarted ApplicationStatus = "not_started"
	StatusInProgress ApplicationStatus = "in_progress"
	StatusCompleted  ApplicationStatus = "completed"
)

// ActiveStatuses are the statuses of applications still being worked on.
var ActiveStatuses = []ApplicationStatus{StatusNotStarted, StatusInProgress}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ServiceApplication tracks one student's progress on one service. The pair
// (StudentID, ServiceID) is unique.
type ServiceApplication struct {
	ID        string
	StudentID string
	ServiceID string
	Status    ApplicationStatus
	Progress  int
	CreatedAt time.Time
}

// NewApplication returns a fresh not_started application.
func NewApplication(id, studentID, serviceID string, now time.Time) ServiceApplication {
	return ServiceApplication{
		ID:        id,
		StudentID: studentID,
		ServiceID: serviceID,
		Status:    StatusNotStarted,
		Progress:  0,
		CreatedAt: now,
	}
}

func (a ServiceApplication) Validate() error {
	switch {
	case a.ID == "":
		return fmt.Errorf("%w: application id is required", ErrInvalid)
	case a.StudentID == "" || a.ServiceID == "":
		return fmt.Errorf("%w: application student and service ids are required", ErrInvalid)
	case !a.Status.Valid():
		return fmt.Errorf("%w: application status %q", ErrInvalid, a.Status)
	case a.Progress < 0 || a.Progress > 100:
		return fmt.Errorf("%w: application progress %d out of range", ErrInvalid, a.Progress)
	case a.CreatedAt.IsZero():
		return fmt.Errorf("%w: application created_at is required", ErrInvalid)
	}
	return nil
}
