package fly8sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

// Stable, machine-checkable error kinds carried in the "error" field of every
// failed response.
const (
	KindUnauthenticated    = "unauthenticated"
	KindInvalidToken       = "invalid_token"
	KindTokenExpired       = "token_expired"
	KindForbidden          = "forbidden"
	KindAlreadyExists      = "already_exists"
	KindInvalidCredentials = "invalid_credentials"
	KindNotFound           = "not_found"
	KindInvalidRequest     = "invalid_request"
	KindValidation         = "validation_error"
	KindServerError        = "server_error"
)

// APIError is the error body returned by the API. The server writes it with
// WriteError and the client decodes failed responses back into it.
type APIError struct {
	StatusCode int `json:"-"`

	// Kind is one of the Kind* constants.
	Kind string `json:"error"`

	// Message is safe to show to end users.
	Message string `json:"detail"`

	// Fields holds per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches on StatusCode and Kind so callers can use errors.Is against the
// predefined values.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Kind == t.Kind
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// WithMessage returns a copy of e with a different message.
func (e *APIError) WithMessage(msg string) *APIError {
	c := *e
	c.Message = msg
	return &c
}

// NewValidationError builds a 400 carrying field messages.
func NewValidationError(fields map[string]string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		Message:    "request validation failed",
		Fields:     fields,
	}
}

var (
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       KindUnauthenticated,
		Message:    "authentication required",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       KindInvalidToken,
		Message:    "invalid token",
	}

	ErrTokenExpired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       KindTokenExpired,
		Message:    "token expired",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Kind:       KindForbidden,
		Message:    "insufficient permissions",
	}

	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       KindInvalidCredentials,
		Message:    "invalid credentials",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindAlreadyExists,
		Message:    "email already registered",
	}

	ErrAlreadyApplied = &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindAlreadyExists,
		Message:    "already applied for this service",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
		Message:    "not found",
	}

	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindServerError,
		Message:    "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not ours (a proxy error page, say) keep the status with a generic kind.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Kind != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	kind := KindServerError
	if resp.StatusCode < http.StatusInternalServerError {
		kind = KindInvalidRequest
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Kind:       kind,
		Message:    http.StatusText(resp.StatusCode),
	}
}
