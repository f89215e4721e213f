package domain

import "errors"

// ErrInvalid is wrapped by every Validate method.
var ErrInvalid = errors.New("domain: invalid record")
