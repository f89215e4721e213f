package domain

import (
	"fmt"
	"time"
)

// Service is a catalog entry a student can apply to.
type Service struct {
	ID                string
	Name              string
	Description       string
	Category          string
	EstimatedDuration *string
	Price             *float64
	Icon              *string
	CreatedAt         time.Time
}

func (s Service) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: service id is required", ErrInvalid)
	case s.Name == "":
		return fmt.Errorf("%w: service name is required", ErrInvalid)
	case s.Category == "":
		return fmt.Errorf("%w: service category is required", ErrInvalid)
	case s.Price != nil && *s.Price < 0:
		return fmt.Errorf("%w: service price must not be negative", ErrInvalid)
	}
	return nil
}
