package fly8sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Fly8 API. The zero Token makes unauthenticated calls;
// use WithToken to get a client acting on behalf of a user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is sent as a bearer credential when non-empty.
	Token string
}

// NewClient creates a client for baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

// ============================================================================
// Auth
// ============================================================================

// Signup registers a new user and returns its first token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the caller with its onboarding state.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ============================================================================
// Students
// ============================================================================

// CompleteOnboarding submits the student's selections.
func (c *Client) CompleteOnboarding(ctx context.Context, req OnboardingRequest) (*OnboardingResponse, error) {
	var out OnboardingResponse
	if err := c.do(ctx, http.MethodPost, "/api/students/onboarding", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the caller's student profile and applications.
func (c *Client) Profile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/students/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Applications lists the caller's applications.
func (c *Client) Applications(ctx context.Context) ([]Application, error) {
	var out ApplicationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/students/applications", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// ============================================================================
// Services
// ============================================================================

// Services lists the catalog.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var out ServicesResponse
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Services, nil
}

// Apply applies the caller to a single service.
func (c *Client) Apply(ctx context.Context, serviceID string) (*Application, error) {
	var out ApplyResponse
	req := ApplyRequest{ServiceID: serviceID}
	if err := c.do(ctx, http.MethodPost, "/api/services/apply", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// ============================================================================
// Admin
// ============================================================================

// AdminMetrics returns the dashboard counters.
func (c *Client) AdminMetrics(ctx context.Context) (*Metrics, error) {
	var out MetricsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/metrics", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Metrics, nil
}

// AdminStudents lists every student profile.
func (c *Client) AdminStudents(ctx context.Context) ([]StudentDetails, error) {
	var out StudentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/students", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// AdminCounselors lists counselors.
func (c *Client) AdminCounselors(ctx context.Context) ([]Counselor, error) {
	var out CounselorsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/counselors", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Counselors, nil
}

// AdminAgents lists agents.
func (c *Client) AdminAgents(ctx context.Context) ([]Agent, error) {
	var out AgentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/agents", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Agents, nil
}

// AdminCreateUser creates a user of any role.
func (c *Client) AdminCreateUser(ctx context.Context, req SignupRequest) (*User, error) {
	var out CreateUserResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// AdminAssignCounselor puts a student profile in a counselor's care.
func (c *Client) AdminAssignCounselor(ctx context.Context, studentID, counselorID string) (*Student, error) {
	var out AssignResponse
	path := "/api/admin/students/" + url.PathEscape(studentID) + "/assign-counselor"
	req := AssignCounselorRequest{CounselorID: counselorID}
	if err := c.do(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Student, nil
}

// AdminAssignAgent records the agent who referred a student profile.
func (c *Client) AdminAssignAgent(ctx context.Context, studentID, agentID string) (*Student, error) {
	var out AssignResponse
	path := "/api/admin/students/" + url.PathEscape(studentID) + "/assign-agent"
	if err := c.do(ctx, http.MethodPut, path, AssignAgentRequest{AgentID: agentID}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Student, nil
}

// ============================================================================
// Counselors and agents
// ============================================================================

// CounselorStudents lists the students assigned to the calling counselor.
func (c *Client) CounselorStudents(ctx context.Context) ([]StudentDetails, error) {
	var out StudentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/counselors/my-students", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// UpdateApplicationStatus sets the status of an application belonging to
// one of the calling counselor's students.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*Application, error) {
	var out UpdateApplicationResponse
	path := "/api/counselors/applications/" + url.PathEscape(applicationID)
	req := UpdateApplicationRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// AgentStudents lists the students referred by the calling agent.
func (c *Client) AgentStudents(ctx context.Context) ([]StudentDetails, error) {
	var out StudentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/agents/my-students", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// ============================================================================
// System
// ============================================================================

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez calls the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz calls the readiness endpoint. A degraded service yields an *APIError
// with StatusCode 503.
func (c *Client) Readyz(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends body as JSON (when non-nil) and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any, expectedStatus int) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
