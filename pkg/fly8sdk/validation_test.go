package fly8sdk_test

import (
	"strings"
	"testing"

	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := fly8sdk.SignupRequest{
		Email:     "a@b.com",
		Password:  "pw123456",
		FirstName: "A",
		LastName:  "B",
		Role:      "student",
	}
	require.Nil(t, valid.Validate())

	tests := []struct {
		name  string
		mut   func(r *fly8sdk.SignupRequest)
		field string
	}{
		{"missing email", func(r *fly8sdk.SignupRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *fly8sdk.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"display name email", func(r *fly8sdk.SignupRequest) { r.Email = "A <a@b.com>" }, "email"},
		{"missing password", func(r *fly8sdk.SignupRequest) { r.Password = "" }, "password"},
		{"short password", func(r *fly8sdk.SignupRequest) { r.Password = "short" }, "password"},
		{"long password", func(r *fly8sdk.SignupRequest) { r.Password = strings.Repeat("p", 129) }, "password"},
		{"blank first name", func(r *fly8sdk.SignupRequest) { r.FirstName = "  " }, "firstName"},
		{"long last name", func(r *fly8sdk.SignupRequest) { r.LastName = strings.Repeat("b", 65) }, "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mut(&r)
			errs := r.Validate()
			require.Contains(t, errs, tt.field)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	require.Nil(t, fly8sdk.LoginRequest{Email: "A@B.com", Password: "x"}.Validate())

	errs := fly8sdk.LoginRequest{}.Validate()
	require.Equal(t, "required", errs["email"])
	require.Equal(t, "required", errs["password"])
}

func TestOnboardingRequestValidate(t *testing.T) {
	require.Nil(t, fly8sdk.OnboardingRequest{}.Validate())
	require.Nil(t, fly8sdk.OnboardingRequest{
		InterestedCountries: []string{"USA", "UK"},
		SelectedServices:    []string{"svc-a"},
	}.Validate())

	errs := fly8sdk.OnboardingRequest{
		InterestedCountries: []string{"USA", " "},
		SelectedServices:    make([]string, 51),
	}.Validate()
	require.Contains(t, errs, "interestedCountries[1]")
	require.Contains(t, errs, "selectedServices")
}

func TestApplyRequestValidate(t *testing.T) {
	require.Nil(t, fly8sdk.ApplyRequest{ServiceID: "svc"}.Validate())
	require.Contains(t, fly8sdk.ApplyRequest{}.Validate(), "serviceId")
}

func TestUpdateApplicationRequestValidate(t *testing.T) {
	tests := []struct {
		status string
		want   map[string]string
	}{
		{"not_started", nil},
		{"in_progress", nil},
		{"completed", nil},
		{"", map[string]string{"status": "required"}},
		{"Completed", map[string]string{"status": "must be one of not_started, in_progress, completed"}},
		{"archived", map[string]string{"status": "must be one of not_started, in_progress, completed"}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			require.Equal(t, tt.want, fly8sdk.UpdateApplicationRequest{Status: tt.status}.Validate())
		})
	}
}

func TestAssignRequestsValidate(t *testing.T) {
	require.Nil(t, fly8sdk.AssignCounselorRequest{CounselorID: "c-1"}.Validate())
	require.Equal(t, map[string]string{"counselorId": "required"}, fly8sdk.AssignCounselorRequest{CounselorID: " "}.Validate())
	require.Nil(t, fly8sdk.AssignAgentRequest{AgentID: "a-1"}.Validate())
	require.Equal(t, map[string]string{"agentId": "required"}, fly8sdk.AssignAgentRequest{}.Validate())
}
