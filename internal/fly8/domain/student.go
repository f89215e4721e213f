package domain

import (
	"fmt"
	"time"
)

// StudentProfile extends a student user. At most one exists per user.
type StudentProfile struct {
	ID                   string
	UserID               string
	InterestedCountries  []string
	SelectedServices     []string
	Intake               *string
	PreferredDestination *string
	OnboardingCompleted  bool
	AssignedCounselor    *string
	AssignedAgent        *string
	CreatedAt            time.Time
}

func (s StudentProfile) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: student id is required", ErrInvalid)
	case s.UserID == "":
		return fmt.Errorf("%w: student user id is required", ErrInvalid)
	case s.CreatedAt.IsZero():
		return fmt.Errorf("%w: student created_at is required", ErrInvalid)
	}
	return nil
}

// Onboarding is what a student submits. Applying it to a profile replaces
// every field; nothing is merged.
type Onboarding struct {
	InterestedCountries  []string
	SelectedServices     []string
	Intake               *string
	PreferredDestination *string
}

// Apply overwrites the onboarding fields of s and marks it completed.
func (o Onboarding) Apply(s *StudentProfile) {
	s.InterestedCountries = nonNil(o.InterestedCountries)
	s.SelectedServices = nonNil(o.SelectedServices)
	s.Intake = o.Intake
	s.PreferredDestination = o.PreferredDestination
	s.OnboardingCompleted = true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
