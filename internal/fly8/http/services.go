package http

import (
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

type ServicesHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP lists the service catalog.
//
//	@Summary		List services
//	@Tags			Services
//	@Produce		json
//	@Success		200	{object}	fly8sdk.ServicesResponse	"Catalog"
//	@Failure		500	{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/services [get].
func (h *ServicesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svcs, err := h.CatalogService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fly8sdk.ServicesResponse{Services: toServices(svcs)})
}

type ApplyHandler struct {
	ApplicationService *service.ApplicationService
}

// ServeHTTP applies the calling student to one service.
//
//	@Summary		Apply to a service
//	@Tags			Services
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fly8sdk.ApplyRequest	true	"Service to apply for"
//	@Success		201		{object}	fly8sdk.ApplyResponse	"Application submitted"
//	@Failure		400		{object}	fly8sdk.APIError		"Validation failed or already applied"
//	@Failure		401		{object}	fly8sdk.APIError		"Missing, invalid or expired token"
//	@Failure		403		{object}	fly8sdk.APIError		"Caller is not a student"
//	@Failure		404		{object}	fly8sdk.APIError		"Student profile or service not found"
//	@Failure		500		{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/services/apply [post].
func (h *ApplyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req fly8sdk.ApplyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	app, err := h.ApplicationService.Apply(r.Context(), user.ID, req.ServiceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, fly8sdk.ApplyResponse{
		Message:     "Application submitted",
		Application: toApplication(app, nil),
	})
}
