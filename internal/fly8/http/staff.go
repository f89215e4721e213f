package http

import (
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

// StaffHandler serves the counselor and agent views.
type StaffHandler struct {
	StaffService *service.StaffService
}

// MyStudents godoc
//
//	@Summary		List my students
//	@Description	Students assigned to the calling counselor, or referred by the calling agent, with their applications.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.StudentsResponse	"Students"
//	@Failure		401	{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError			"Caller has the wrong role"
//	@Failure		500	{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/counselors/my-students [get]
//	@Router			/api/agents/my-students [get].
func (h *StaffHandler) MyStudents(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	details, err := h.StaffService.MyStudents(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fly8sdk.StudentsResponse{Students: toStudentDetails(details)})
}

// UpdateApplication godoc
//
//	@Summary		Update an application status
//	@Description	Moves an application of one of the caller's assigned students to a new status.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			applicationId	path		string								true	"Application id"
//	@Param			request			body		fly8sdk.UpdateApplicationRequest	true	"New status"
//	@Success		200				{object}	fly8sdk.UpdateApplicationResponse	"Application updated"
//	@Failure		400				{object}	fly8sdk.APIError					"Validation failed"
//	@Failure		401				{object}	fly8sdk.APIError					"Missing, invalid or expired token"
//	@Failure		403				{object}	fly8sdk.APIError					"Caller is not the student's counselor"
//	@Failure		404				{object}	fly8sdk.APIError					"Application not found"
//	@Failure		500				{object}	fly8sdk.APIError					"Internal server error"
//	@Router			/api/counselors/applications/{applicationId} [put].
func (h *StaffHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req fly8sdk.UpdateApplicationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	app, err := h.StaffService.UpdateApplicationStatus(r.Context(), user,
		r.PathValue("applicationId"), domain.ApplicationStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.UpdateApplicationResponse{
		Message:     "Application updated",
		Application: toApplication(app, nil),
	})
}
