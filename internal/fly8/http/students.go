package http

import (
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

type OnboardingHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP records the student's selections and creates an application for
// every selected service that does not have one yet.
//
//	@Summary		Complete onboarding
//	@Description	Overwrites the profile's countries, services, intake and destination.
//	@Description	Resubmitting is safe: existing applications are kept and never duplicated.
//	@Tags			Students
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fly8sdk.OnboardingRequest	true	"Onboarding selections"
//	@Success		200		{object}	fly8sdk.OnboardingResponse	"Onboarding completed"
//	@Failure		400		{object}	fly8sdk.APIError			"Validation failed"
//	@Failure		401		{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403		{object}	fly8sdk.APIError			"Caller is not a student"
//	@Failure		500		{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/students/onboarding [post].
func (h *OnboardingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req fly8sdk.OnboardingRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	done, err := h.OnboardingService.Complete(r.Context(), user.ID, domain.Onboarding{
		InterestedCountries:  req.InterestedCountries,
		SelectedServices:     req.SelectedServices,
		Intake:               req.Intake,
		PreferredDestination: req.PreferredDestination,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.OnboardingResponse{
		Message:             "Onboarding completed",
		OnboardingCompleted: done,
	})
}

type ProfileHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP returns the caller's profile with its applications.
//
//	@Summary		Student profile
//	@Tags			Students
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.ProfileResponse	"Profile, user and applications"
//	@Failure		401	{object}	fly8sdk.APIError		"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError		"Caller is not a student"
//	@Failure		404	{object}	fly8sdk.APIError		"Student profile not found"
//	@Failure		500	{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/students/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	view, err := h.OnboardingService.Profile(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.ProfileResponse{
		Student:      toStudent(view.Student),
		User:         toUser(view.User),
		Applications: toApplicationViews(view.Applications),
	})
}

type ApplicationsHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP lists the caller's applications joined with the catalog.
//
//	@Summary		Student applications
//	@Description	Returns an empty list when the student has no profile yet.
//	@Tags			Students
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.ApplicationsResponse	"Applications"
//	@Failure		401	{object}	fly8sdk.APIError				"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError				"Caller is not a student"
//	@Failure		500	{object}	fly8sdk.APIError				"Internal server error"
//	@Router			/api/students/applications [get].
func (h *ApplicationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	views, err := h.OnboardingService.Applications(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.ApplicationsResponse{
		Applications: toApplicationViews(views),
	})
}
