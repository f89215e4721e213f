package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyExists      = errors.New("already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidInput       = errors.New("invalid_input")
)

// Specific outcomes callers may want to word differently. Each one still
// matches its general sentinel with errors.Is.
var (
	ErrEmailTaken      = fmt.Errorf("email %w", ErrAlreadyExists)
	ErrAlreadyApplied  = fmt.Errorf("application %w", ErrAlreadyExists)
	ErrProfileNotFound = fmt.Errorf("student profile %w", ErrNotFound)
	ErrServiceNotFound = fmt.Errorf("service %w", ErrNotFound)
	ErrStudentNotFound = fmt.Errorf("student %w", ErrNotFound)
	ErrAppNotFound     = fmt.Errorf("application %w", ErrNotFound)
	ErrInvalidAssignee = fmt.Errorf("assignee %w", ErrInvalidInput)
	ErrNotAssigned     = fmt.Errorf("%w: student is not assigned to you", ErrForbidden)
	ErrRoleNotAllowed  = fmt.Errorf("role %w", ErrInvalidInput)
	ErrUnknownUser     = fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
)
