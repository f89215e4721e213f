package http

import (
	"net/http"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// RootHandler godoc
//
//	@Summary	API root
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	fly8sdk.MessageResponse	"Hello World"
//	@Router		/api/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fly8sdk.MessageResponse{Message: "Hello World"})
	}
}

// HealthHandler godoc
//
//	@Summary	API health
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	fly8sdk.HealthResponse	"healthy"
//	@Router		/api/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fly8sdk.HealthResponse{
			Status:  "healthy",
			Service: "Fly8 API",
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness check
//	@Description	Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	fly8sdk.StatusResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fly8sdk.StatusResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness check
//	@Description	503 while the store cannot be reached.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	fly8sdk.StatusResponse	"status, uptime, version"
//	@Failure		503	{object}	fly8sdk.StatusResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "err", err)
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, fly8sdk.StatusResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
