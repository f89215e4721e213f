package fly8sdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// SignupRequest is the body of POST /api/auth/signup and POST /api/admin/users.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Role defaults to "student" when empty.
	Role string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the sanitized projection of a user. It never carries the
// password digest.
type User struct {
	UserID    string     `json:"userId"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Phone     *string    `json:"phone,omitempty"`
	Country   *string    `json:"country,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// OnboardingCompleted is only set by GET /api/auth/me.
	OnboardingCompleted *bool `json:"onboardingCompleted,omitempty"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// CreateUserResponse is returned by POST /api/admin/users. No token is
// issued for users created by an administrator.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ============================================================================
// Students
// ============================================================================

// OnboardingRequest is the body of POST /api/students/onboarding.
type OnboardingRequest struct {
	InterestedCountries  []string `json:"interestedCountries"`
	SelectedServices     []string `json:"selectedServices"`
	Intake               *string  `json:"intake,omitempty"`
	PreferredDestination *string  `json:"preferredDestination,omitempty"`
}

// OnboardingResponse is returned by POST /api/students/onboarding.
type OnboardingResponse struct {
	Message             string `json:"message"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// Student is a student profile.
type Student struct {
	StudentID            string    `json:"studentId"`
	UserID               string    `json:"userId"`
	InterestedCountries  []string  `json:"interestedCountries"`
	SelectedServices     []string  `json:"selectedServices"`
	Intake               *string   `json:"intake,omitempty"`
	PreferredDestination *string   `json:"preferredDestination,omitempty"`
	OnboardingCompleted  bool      `json:"onboardingCompleted"`
	AssignedCounselor    *string   `json:"assignedCounselor,omitempty"`
	AssignedAgent        *string   `json:"assignedAgent,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Application is a service application, optionally joined with the
// catalog entry it refers to.
type Application struct {
	ApplicationID string    `json:"applicationId"`
	StudentID     string    `json:"studentId"`
	ServiceID     string    `json:"serviceId"`
	Status        string    `json:"status"`
	Progress      int       `json:"progress"`
	CreatedAt     time.Time `json:"createdAt"`

	// Service is null when the referenced service is not in the catalog, and
	// in the apply response, which does not join it.
	Service *Service `json:"service"`
}

// ProfileResponse is returned by GET /api/students/profile.
type ProfileResponse struct {
	Student      Student       `json:"student"`
	User         User          `json:"user"`
	Applications []Application `json:"applications"`
}

// ApplicationsResponse is returned by GET /api/students/applications.
type ApplicationsResponse struct {
	Applications []Application `json:"applications"`
}

// ============================================================================
// Services
// ============================================================================

// Service is a catalog entry.
type Service struct {
	ServiceID         string   `json:"serviceId"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	EstimatedDuration *string  `json:"estimatedDuration,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	Icon              *string  `json:"icon,omitempty"`
}

// ServicesResponse is returned by GET /api/services.
type ServicesResponse struct {
	Services []Service `json:"services"`
}

// ApplyRequest is the body of POST /api/services/apply.
type ApplyRequest struct {
	ServiceID string `json:"serviceId"`
}

// ApplyResponse is returned by POST /api/services/apply.
type ApplyResponse struct {
	Message     string      `json:"message"`
	Application Application `json:"application"`
}

// ============================================================================
// Admin
// ============================================================================

// Metrics are the dashboard counters.
type Metrics struct {
	TotalStudents         int64 `json:"totalStudents"`
	TotalCounselors       int64 `json:"totalCounselors"`
	TotalAgents           int64 `json:"totalAgents"`
	ActiveApplications    int64 `json:"activeApplications"`
	CompletedApplications int64 `json:"completedApplications"`
}

// MetricsResponse is returned by GET /api/admin/metrics.
type MetricsResponse struct {
	Metrics Metrics `json:"metrics"`
}

// StudentDetails is a profile with its owner and applications.
type StudentDetails struct {
	Student

	// User is null when the owning user row is gone.
	User         *User         `json:"user"`
	Applications []Application `json:"applications"`
}

// StudentsResponse is returned by GET /api/admin/students.
type StudentsResponse struct {
	Students []StudentDetails `json:"students"`
}

// Counselor is a counselor user with the number of students assigned.
type Counselor struct {
	User

	AssignedStudents int64 `json:"assignedStudents"`
}

// CounselorsResponse is returned by GET /api/admin/counselors.
type CounselorsResponse struct {
	Counselors []Counselor `json:"counselors"`
}

// Agent is an agent user with the number of students referred.
type Agent struct {
	User

	ReferredStudents int64 `json:"referredStudents"`
}

// AgentsResponse is returned by GET /api/admin/agents.
type AgentsResponse struct {
	Agents []Agent `json:"agents"`
}

// AssignCounselorRequest is the body of
// PUT /api/admin/students/{studentId}/assign-counselor.
type AssignCounselorRequest struct {
	CounselorID string `json:"counselorId"`
}

// AssignAgentRequest is the body of
// PUT /api/admin/students/{studentId}/assign-agent.
type AssignAgentRequest struct {
	AgentID string `json:"agentId"`
}

// AssignResponse is returned by both assignment endpoints.
type AssignResponse struct {
	Message string  `json:"message"`
	Student Student `json:"student"`
}

// ============================================================================
// Counselors and agents
// ============================================================================

// UpdateApplicationRequest is the body of
// PUT /api/counselors/applications/{applicationId}.
type UpdateApplicationRequest struct {
	Status string `json:"status" enums:"not_started,in_progress,completed"`
}

// UpdateApplicationResponse is returned by
// PUT /api/counselors/applications/{applicationId}. Service is not joined.
type UpdateApplicationResponse struct {
	Message     string      `json:"message"`
	Application Application `json:"application"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusResponse is returned by /livez and /readyz.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

// MessageResponse is a bare {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message"`
}
