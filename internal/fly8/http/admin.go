package http

import (
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

// AdminHandler serves the super_admin dashboard.
type AdminHandler struct {
	AdminService *service.AdminService
	AuthService  *service.AuthService
}

// Metrics godoc
//
//	@Summary		Dashboard counters
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.MetricsResponse	"Counters"
//	@Failure		401	{object}	fly8sdk.APIError		"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError		"Caller is not a super_admin"
//	@Failure		500	{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/admin/metrics [get].
func (h *AdminHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.AdminService.Metrics(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.MetricsResponse{Metrics: fly8sdk.Metrics{
		TotalStudents:         m.TotalStudents,
		TotalCounselors:       m.TotalCounselors,
		TotalAgents:           m.TotalAgents,
		ActiveApplications:    m.ActiveApplications,
		CompletedApplications: m.CompletedApplications,
	}})
}

// Students godoc
//
//	@Summary		List students
//	@Description	Every student profile with its user and applications.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.StudentsResponse	"Students"
//	@Failure		401	{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError			"Caller is not a super_admin"
//	@Failure		500	{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/admin/students [get].
func (h *AdminHandler) Students(w http.ResponseWriter, r *http.Request) {
	details, err := h.AdminService.Students(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.StudentsResponse{Students: toStudentDetails(details)})
}

// Counselors godoc
//
//	@Summary		List counselors
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.CounselorsResponse	"Counselors with assigned student counts"
//	@Failure		401	{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError			"Caller is not a super_admin"
//	@Failure		500	{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/admin/counselors [get].
func (h *AdminHandler) Counselors(w http.ResponseWriter, r *http.Request) {
	staff, err := h.AdminService.Counselors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]fly8sdk.Counselor, 0, len(staff))
	for _, s := range staff {
		out = append(out, fly8sdk.Counselor{User: toUser(s.User), AssignedStudents: s.Students})
	}
	httpx.WriteJSON(w, http.StatusOK, fly8sdk.CounselorsResponse{Counselors: out})
}

// Agents godoc
//
//	@Summary		List agents
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.AgentsResponse	"Agents with referred student counts"
//	@Failure		401	{object}	fly8sdk.APIError		"Missing, invalid or expired token"
//	@Failure		403	{object}	fly8sdk.APIError		"Caller is not a super_admin"
//	@Failure		500	{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/admin/agents [get].
func (h *AdminHandler) Agents(w http.ResponseWriter, r *http.Request) {
	staff, err := h.AdminService.Agents(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]fly8sdk.Agent, 0, len(staff))
	for _, s := range staff {
		out = append(out, fly8sdk.Agent{User: toUser(s.User), ReferredStudents: s.Students})
	}
	httpx.WriteJSON(w, http.StatusOK, fly8sdk.AgentsResponse{Agents: out})
}

// CreateUser godoc
//
//	@Summary		Create a user
//	@Description	Creates a user of any role. No token is issued and no student profile is created.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fly8sdk.SignupRequest		true	"Account details"
//	@Success		201		{object}	fly8sdk.CreateUserResponse	"User created"
//	@Failure		400		{object}	fly8sdk.APIError			"Validation failed, unknown role or email already registered"
//	@Failure		401		{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403		{object}	fly8sdk.APIError			"Caller is not a super_admin"
//	@Failure		500		{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/admin/users [post].
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req fly8sdk.SignupRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := h.AuthService.CreateUser(r.Context(), service.NewUser{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, fly8sdk.CreateUserResponse{
		Message: "User created",
		User:    toUser(user),
	})
}

// AssignCounselor godoc
//
//	@Summary		Assign a counselor
//	@Description	Puts a student in a counselor's care, replacing any earlier counselor.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			studentId	path		string							true	"Student profile id"
//	@Param			request		body		fly8sdk.AssignCounselorRequest	true	"Counselor"
//	@Success		200			{object}	fly8sdk.AssignResponse			"Counselor assigned"
//	@Failure		400			{object}	fly8sdk.APIError				"Validation failed or the id is not a counselor"
//	@Failure		401			{object}	fly8sdk.APIError				"Missing, invalid or expired token"
//	@Failure		403			{object}	fly8sdk.APIError				"Caller is not a super_admin"
//	@Failure		404			{object}	fly8sdk.APIError				"Student not found"
//	@Failure		500			{object}	fly8sdk.APIError				"Internal server error"
//	@Router			/api/admin/students/{studentId}/assign-counselor [put].
func (h *AdminHandler) AssignCounselor(w http.ResponseWriter, r *http.Request) {
	var req fly8sdk.AssignCounselorRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	student, err := h.AdminService.AssignCounselor(r.Context(), r.PathValue("studentId"), req.CounselorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.AssignResponse{
		Message: "Counselor assigned",
		Student: toStudent(student),
	})
}

// AssignAgent godoc
//
//	@Summary		Assign an agent
//	@Description	Records the agent who referred a student.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			studentId	path		string						true	"Student profile id"
//	@Param			request		body		fly8sdk.AssignAgentRequest	true	"Agent"
//	@Success		200			{object}	fly8sdk.AssignResponse		"Agent assigned"
//	@Failure		400			{object}	fly8sdk.APIError			"Validation failed or the id is not an agent"
//	@Failure		401			{object}	fly8sdk.APIError			"Missing, invalid or expired token"
//	@Failure		403			{object}	fly8sdk.APIError			"Caller is not a super_admin"
//	@Failure		404			{object}	fly8sdk.APIError			"Student not found"
//	@Failure		500			{object}	fly8sdk.APIError			"Internal server error"
//	@Router			/api/admin/students/{studentId}/assign-agent [put].
func (h *AdminHandler) AssignAgent(w http.ResponseWriter, r *http.Request) {
	var req fly8sdk.AssignAgentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	student, err := h.AdminService.AssignAgent(r.Context(), r.PathValue("studentId"), req.AgentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.AssignResponse{
		Message: "Agent assigned",
		Student: toStudent(student),
	})
}
