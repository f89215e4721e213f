package fly8sdk

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrTokenExpired.WriteError(rec)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	err := parseErrorResponse(rec.Result(), rec.Body.Bytes())
	require.ErrorIs(t, err, ErrTokenExpired)
	require.NotErrorIs(t, err, ErrInvalidToken)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "token expired", apiErr.Message)
}

func TestParseErrorResponseForeignBody(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusBadGateway}
	err := parseErrorResponse(resp, []byte("<html>bad gateway</html>"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, KindServerError, apiErr.Kind)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestWithMessageKeepsIdentity(t *testing.T) {
	e := ErrNotFound.WithMessage("student profile not found")
	require.ErrorIs(t, e, ErrNotFound)
	require.Equal(t, "not found", ErrNotFound.Message)
}
