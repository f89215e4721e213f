package store

import "fmt"

type validator interface {
	Validate() error
}

// CheckRecord runs the record's domain validation and wraps a failure in
// ErrInvalidRecord. Drivers call it before every insert and on every decoded
// record, so partial records never cross the store boundary in either
// direction.
func CheckRecord(v validator) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return nil
}
