package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"

	_ "github.com/Amit01999/fly8-admin-all/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *telemetry.Metrics

	Guard              *service.AccessGuard
	AuthService        *service.AuthService
	OnboardingService  *service.OnboardingService
	ApplicationService *service.ApplicationService
	CatalogService     *service.CatalogService
	AdminService       *service.AdminService
	StaffService       *service.StaffService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	metrics *telemetry.Metrics,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		metrics:      metrics,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

// ApplyRoutes registers every endpoint. The service fields must be set
// before it is called.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerStudents()
	r.registerServices()
	r.registerAdmin()
	r.registerStaff()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// The route label is read from the request the mux matched, so the
	// metrics middleware has to sit directly on the mux.
	r.handler = httpx.Chain(r.metrics.Middleware(r.Mux), r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Fly8 API
//	@version		1.0.0
//	@description	Study-abroad platform backend: accounts, student onboarding, service applications and the admin dashboard.
//	@description
//	@description				Tokens are HS256 JWTs valid for seven days.
//
//	@contact.name				Fly8 Team
//	@contact.url				https://github.com/Amit01999/fly8-admin-all
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.handler == nil {
		http.Error(w, "routes not applied", http.StatusServiceUnavailable)
		return
	}
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/auth/signup", &SignupHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/login", &LoginHandler{AuthService: r.AuthService})

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(&MeHandler{AuthService: r.AuthService},
			r.requireAuth(),
		),
	)
}

func (r *Router) registerStudents() {
	onlyStudents := r.requireAuth(domain.RoleStudent)

	r.Mux.Handle("POST /api/students/onboarding",
		httpx.Chain(&OnboardingHandler{OnboardingService: r.OnboardingService}, onlyStudents),
	)
	r.Mux.Handle("GET /api/students/profile",
		httpx.Chain(&ProfileHandler{OnboardingService: r.OnboardingService}, onlyStudents),
	)
	r.Mux.Handle("GET /api/students/applications",
		httpx.Chain(&ApplicationsHandler{OnboardingService: r.OnboardingService}, onlyStudents),
	)
}

func (r *Router) registerServices() {
	r.Mux.Handle("GET /api/services", &ServicesHandler{CatalogService: r.CatalogService})

	r.Mux.Handle("POST /api/services/apply",
		httpx.Chain(&ApplyHandler{ApplicationService: r.ApplicationService},
			r.requireAuth(domain.RoleStudent),
		),
	)
}

func (r *Router) registerAdmin() {
	onlyAdmins := r.requireAuth(domain.RoleSuperAdmin)
	h := &AdminHandler{AdminService: r.AdminService, AuthService: r.AuthService}

	r.Mux.Handle("GET /api/admin/metrics", httpx.Chain(http.HandlerFunc(h.Metrics), onlyAdmins))
	r.Mux.Handle("GET /api/admin/students", httpx.Chain(http.HandlerFunc(h.Students), onlyAdmins))
	r.Mux.Handle("GET /api/admin/counselors", httpx.Chain(http.HandlerFunc(h.Counselors), onlyAdmins))
	r.Mux.Handle("GET /api/admin/agents", httpx.Chain(http.HandlerFunc(h.Agents), onlyAdmins))
	r.Mux.Handle("POST /api/admin/users", httpx.Chain(http.HandlerFunc(h.CreateUser), onlyAdmins))
	r.Mux.Handle("PUT /api/admin/students/{studentId}/assign-counselor",
		httpx.Chain(http.HandlerFunc(h.AssignCounselor), onlyAdmins))
	r.Mux.Handle("PUT /api/admin/students/{studentId}/assign-agent",
		httpx.Chain(http.HandlerFunc(h.AssignAgent), onlyAdmins))
}

func (r *Router) registerStaff() {
	onlyCounselors := r.requireAuth(domain.RoleCounselor)
	h := &StaffHandler{StaffService: r.StaffService}

	r.Mux.Handle("GET /api/counselors/my-students", httpx.Chain(http.HandlerFunc(h.MyStudents), onlyCounselors))
	r.Mux.Handle("PUT /api/counselors/applications/{applicationId}",
		httpx.Chain(http.HandlerFunc(h.UpdateApplication), onlyCounselors))

	r.Mux.Handle("GET /api/agents/my-students",
		httpx.Chain(http.HandlerFunc(h.MyStudents), r.requireAuth(domain.RoleAgent)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/{$}", RootHandler())
	r.Mux.Handle("GET /api/health", HealthHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
