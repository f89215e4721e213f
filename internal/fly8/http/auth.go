package http

import (
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
)

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP registers a new account and returns its first token.
//
//	@Summary		Sign up
//	@Description	Creates an account. Students also get an empty profile that onboarding fills in.
//	@Description	The role defaults to "student"; super_admin cannot be chosen here.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fly8sdk.SignupRequest	true	"Account details"
//	@Success		201		{object}	fly8sdk.AuthResponse	"Token and user"
//	@Failure		400		{object}	fly8sdk.APIError		"Validation failed, role not allowed or email already registered"
//	@Failure		500		{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req fly8sdk.SignupRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Signup(r.Context(), service.NewUser{
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

	httpx.WriteJSON(w, http.StatusCreated, fly8sdk.AuthResponse{
		Message: "User created successfully",
		Token:   sess.Token,
		User:    toUser(sess.User),
	})
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges credentials for a token.
//
//	@Summary		Log in
//	@Description	Unknown emails and wrong passwords return the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fly8sdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	fly8sdk.AuthResponse	"Token and user"
//	@Failure		400		{object}	fly8sdk.APIError		"Validation failed"
//	@Failure		401		{object}	fly8sdk.APIError		"Invalid credentials"
//	@Failure		500		{object}	fly8sdk.APIError		"Internal server error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req fly8sdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fly8sdk.AuthResponse{
		Message: "Login successful",
		Token:   sess.Token,
		User:    toUser(sess.User),
	})
}

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the caller and, for students, whether onboarding is done.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	fly8sdk.MeResponse	"User with onboardingCompleted"
//	@Failure		401	{object}	fly8sdk.APIError	"Missing, invalid or expired token"
//	@Failure		500	{object}	fly8sdk.APIError	"Internal server error"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		fly8sdk.ErrUnauthenticated.WriteError(w)
		return
	}

	me, err := h.AuthService.Me(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := toUser(me.User)
	out.OnboardingCompleted = &me.OnboardingCompleted
	httpx.WriteJSON(w, http.StatusOK, fly8sdk.MeResponse{User: out})
}
