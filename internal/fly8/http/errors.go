package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// writeServiceError maps a service-layer error onto the API error body.
// Anything it does not recognise is logged and reported as a 500 without
// detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(err)
	if apiErr == nil {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
		fly8sdk.ErrServerError.WriteError(w)
		return
	}

	switch apiErr.Kind {
	case fly8sdk.KindTokenExpired:
		httpx.SetBearerChallenge(w, "invalid_token", "token expired")
	case fly8sdk.KindInvalidToken:
		httpx.SetBearerChallenge(w, "invalid_token", "token is malformed or has a bad signature")
	case fly8sdk.KindUnauthenticated:
		httpx.SetBearerChallenge(w, "", "")
	}
	apiErr.WriteError(w)
}

func toAPIError(err error) *fly8sdk.APIError {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return fly8sdk.ErrTokenExpired
	case errors.Is(err, jwtx.ErrInvalidToken):
		return fly8sdk.ErrInvalidToken
	case errors.Is(err, service.ErrUnknownUser):
		return fly8sdk.ErrUnauthenticated.WithMessage("user not found")
	case errors.Is(err, service.ErrUnauthenticated):
		return fly8sdk.ErrUnauthenticated
	case errors.Is(err, service.ErrNotAssigned):
		return fly8sdk.ErrForbidden.WithMessage("student is not assigned to you")
	case errors.Is(err, service.ErrForbidden):
		return fly8sdk.ErrForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return fly8sdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrEmailTaken):
		return fly8sdk.ErrEmailTaken
	case errors.Is(err, service.ErrAlreadyApplied):
		return fly8sdk.ErrAlreadyApplied
	case errors.Is(err, service.ErrProfileNotFound):
		return fly8sdk.ErrNotFound.WithMessage("student profile not found")
	case errors.Is(err, service.ErrServiceNotFound):
		return fly8sdk.ErrNotFound.WithMessage("service not found")
	case errors.Is(err, service.ErrStudentNotFound):
		return fly8sdk.ErrNotFound.WithMessage("student not found")
	case errors.Is(err, service.ErrAppNotFound):
		return fly8sdk.ErrNotFound.WithMessage("application not found")
	case errors.Is(err, service.ErrInvalidAssignee):
		return fly8sdk.ErrInvalidRequest.WithMessage("assignee does not exist or has the wrong role")
	case errors.Is(err, service.ErrRoleNotAllowed):
		return fly8sdk.ErrInvalidRequest.WithMessage("role not allowed")
	case errors.Is(err, service.ErrInvalidInput):
		return fly8sdk.ErrInvalidRequest
	}
	return nil
}

// decodeRequest reads a JSON body into v and runs its field validation. It
// writes the error response itself and reports whether the handler may go on.
func decodeRequest[T interface{ Validate() map[string]string }](w http.ResponseWriter, r *http.Request, v *T) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		slogx.FromContext(r.Context()).Info("bad request body", slog.Any("err", err))
		fly8sdk.ErrInvalidRequest.WithMessage("malformed JSON body").WriteError(w)
		return false
	}
	if fields := (*v).Validate(); fields != nil {
		fly8sdk.NewValidationError(fields).WriteError(w)
		return false
	}
	return true
}
