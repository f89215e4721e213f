package fly8sdk

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	requiredReason = "required"

	maxNameLength     = 64
	maxPasswordLength = 128
	minPasswordLength = 8
	maxListItems      = 50
	maxItemLength     = 100
)

// Validate checks the signup fields. It returns a map of field names to
// messages, or nil when the request is acceptable. Role values are checked by
// the server.
func (r SignupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)

	switch pw := r.Password; {
	case pw == "":
		errs["password"] = requiredReason
	case len(pw) < minPasswordLength:
		errs["password"] = fmt.Sprintf("too short (min %d)", minPasswordLength)
	case len(pw) > maxPasswordLength:
		errs["password"] = fmt.Sprintf("too long (max %d)", maxPasswordLength)
	}

	validateName(errs, "firstName", r.FirstName)
	validateName(errs, "lastName", r.LastName)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the login fields. Password length is not enforced here so
// accounts created under older rules can still sign in.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	if r.Password == "" {
		errs["password"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the onboarding lists. Empty lists are fine; blank entries
// are not.
func (r OnboardingRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateList(errs, "interestedCountries", r.InterestedCountries)
	validateList(errs, "selectedServices", r.SelectedServices)

	if r.Intake != nil && len(*r.Intake) > maxNameLength {
		errs["intake"] = fmt.Sprintf("too long (max %d)", maxNameLength)
	}
	if r.PreferredDestination != nil && len(*r.PreferredDestination) > maxItemLength {
		errs["preferredDestination"] = fmt.Sprintf("too long (max %d)", maxItemLength)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the apply request.
func (r ApplyRequest) Validate() map[string]string {
	if strings.TrimSpace(r.ServiceID) == "" {
		return map[string]string{"serviceId": requiredReason}
	}
	return nil
}

// Validate checks the counselor assignment request.
func (r AssignCounselorRequest) Validate() map[string]string {
	if strings.TrimSpace(r.CounselorID) == "" {
		return map[string]string{"counselorId": requiredReason}
	}
	return nil
}

// Validate checks the agent assignment request.
func (r AssignAgentRequest) Validate() map[string]string {
	if strings.TrimSpace(r.AgentID) == "" {
		return map[string]string{"agentId": requiredReason}
	}
	return nil
}

// Validate checks the status is one of the application statuses.
func (r UpdateApplicationRequest) Validate() map[string]string {
	switch r.Status {
	case "":
		return map[string]string{"status": requiredReason}
	case "not_started", "in_progress", "completed":
		return nil
	}
	return map[string]string{"status": "must be one of not_started, in_progress, completed"}
}

func validateEmail(errs map[string]string, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = requiredReason
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		errs["email"] = "must be a valid email address"
	}
}

func validateName(errs map[string]string, field, v string) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs[field] = requiredReason
	case len(v) > maxNameLength:
		errs[field] = fmt.Sprintf("too long (max %d)", maxNameLength)
	}
}

func validateList(errs map[string]string, field string, items []string) {
	if len(items) > maxListItems {
		errs[field] = fmt.Sprintf("too many entries (max %d)", maxListItems)
		return
	}
	for i, it := range items {
		it = strings.TrimSpace(it)
		switch {
		case it == "":
			errs[fmt.Sprintf("%s[%d]", field, i)] = requiredReason
		case len(it) > maxItemLength:
			errs[fmt.Sprintf("%s[%d]", field, i)] = fmt.Sprintf("too long (max %d)", maxItemLength)
		}
	}
}
