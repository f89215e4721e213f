package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Amit01999/fly8-admin-all/internal/fly8/http"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/telemetry"
	"github.com/Amit01999/fly8-admin-all/pkg/cryptox"
	"github.com/Amit01999/fly8-admin-all/pkg/jwtx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v1.0.0"

// Application encapsulates the API with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	rdb     *redis.Client
	hasher  *cryptox.Hasher
	metrics *telemetry.Metrics

	// Services
	tokenService       *service.TokenService
	guard              *service.AccessGuard
	authService        *service.AuthService
	onboardingService  *service.OnboardingService
	applicationService *service.ApplicationService
	catalogService     *service.CatalogService
	adminService       *service.AdminService
	staffService       *service.StaffService
	seedService        *service.SeedService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized, the schema
// migrated and the seed data in place.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "fly8-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: telemetry.New(),
	}
	ctx := slogx.WithContext(context.Background(), app.logger)

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewHasher(pepper)

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.seedService.Run(ctx); err != nil {
		_ = app.close()
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("fly8 api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and releases the store and cache.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down fly8 api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.close(); err != nil {
		return err
	}

	app.logger.Info("fly8 api stopped")
	return nil
}

// Handler returns the routed HTTP handler, for tests and embedding.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) close() error {
	var errs []error
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
			errs = append(errs, err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// initDatabase opens the configured store and, when redis is configured,
// puts the catalog cache in front of it.
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return err
	}
	app.logger.Info("database migrations applied successfully", "store", app.cfg.StoreDriver)

	app.rdb = openCache(ctx, app.cfg, app.logger)
	app.db = wrapCache(db, app.rdb, app.cfg.CatalogCacheTTL)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	secret, err := app.jwtSecret()
	if err != nil {
		return err
	}
	signer, err := jwtx.NewHS256Signer(secret)
	if err != nil {
		return fmt.Errorf("invalid FLY8_JWT_SECRET: %w", err)
	}

	signupRoles, err := app.cfg.AllowedSignupRoles()
	if err != nil {
		return err
	}

	app.tokenService = &service.TokenService{
		Signer:   signer,
		Verifier: jwtx.NewHS256Verifier(secret, nil),
		Issuer:   app.cfg.Issuer,
		TTL:      jwtx.DefaultTTL,
	}
	app.guard = &service.AccessGuard{Tokens: app.tokenService, Store: app.db}
	app.authService = &service.AuthService{
		Store:       app.db,
		Hasher:      app.hasher,
		Tokens:      app.tokenService,
		Metrics:     app.metrics,
		SignupRoles: signupRoles,
	}
	app.onboardingService = &service.OnboardingService{Store: app.db, Metrics: app.metrics}
	app.applicationService = &service.ApplicationService{Store: app.db, Metrics: app.metrics}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.adminService = &service.AdminService{Store: app.db}
	app.staffService = &service.StaffService{Store: app.db, Metrics: app.metrics}
	app.seedService = &service.SeedService{
		Store:        app.db,
		Hasher:       app.hasher,
		Catalog:      app.catalogService,
		DemoUsers:    app.cfg.SeedDemoUsers,
		DemoPassword: app.cfg.DemoPassword,
	}
	return nil
}

// jwtSecret returns the configured signing secret. In dev a missing secret
// is replaced by a random one, so tokens die with the process.
func (app *Application) jwtSecret() ([]byte, error) {
	if app.cfg.JWTSecret != "" {
		return []byte(app.cfg.JWTSecret), nil
	}
	if !app.cfg.IsDev() {
		return nil, errors.New("FLY8_JWT_SECRET is required outside dev")
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}
	app.logger.Warn("FLY8_JWT_SECRET not set, using a random per-process secret")
	return []byte(secret), nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.metrics,
		app.cfg.CORSOrigins,
		app.logger,
	)

	router.Guard = app.guard
	router.AuthService = app.authService
	router.OnboardingService = app.onboardingService
	router.ApplicationService = app.applicationService
	router.CatalogService = app.catalogService
	router.AdminService = app.adminService
	router.StaffService = app.staffService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
