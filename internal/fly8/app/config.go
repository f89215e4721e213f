package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/caarlos0/env/v11"
)

// Store drivers selectable with FLY8_STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Env                 string        `env:"ENV" envDefault:"dev"`                    // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`             // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`            // json, text
	Port                int           `env:"PORT" envDefault:"8080"`                  // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`  // Graceful shutdown timeout
	JWTSecret           string        `env:"FLY8_JWT_SECRET"`                         // Required outside dev
	Issuer              string        `env:"FLY8_ISSUER" envDefault:"fly8-api"`       // iss claim
	StoreDriver         string        `env:"FLY8_STORE_DRIVER" envDefault:"sqlite"`   // sqlite, postgres, mongo
	DatabaseFile        string        `env:"FLY8_DATABASE_FILE" envDefault:"fly8.db"` // sqlite only
	PostgresDSN         string        `env:"FLY8_POSTGRES_DSN"`                       // postgres only
	MongoURI            string        `env:"FLY8_MONGO_URI"`                          // mongo only
	MongoDatabase       string        `env:"FLY8_MONGO_DATABASE" envDefault:"fly8"`   // mongo only
	PepperFile          string        `env:"FLY8_PEPPER_FILE" envDefault:"pepper"`    // Created on first start
	RedisAddr           string        `env:"FLY8_REDIS_ADDR"`                         // Empty disables the catalog cache
	RedisPassword       string        `env:"FLY8_REDIS_PASSWORD"`
	CatalogCacheTTL     time.Duration `env:"FLY8_CATALOG_CACHE_TTL" envDefault:"5m"`
	SeedDemoUsers       bool          `env:"FLY8_SEED_DEMO_USERS" envDefault:"false"`
	DemoPassword        string        `env:"FLY8_DEMO_PASSWORD" envDefault:"password123"`
	SignupRoles         []string      `env:"FLY8_SIGNUP_ROLES" envSeparator:"," envDefault:"student,counselor,agent"`
	CORSOrigins         []string      `env:"FLY8_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDev reports whether the service runs in the dev environment.
func (c Config) IsDev() bool { return c.Env == "dev" }

// Validate checks the combinations env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("FLY8_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("FLY8_POSTGRES_DSN is required for the postgres driver"))
		}
	case DriverMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("FLY8_MONGO_URI is required for the mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown FLY8_STORE_DRIVER %q", c.StoreDriver))
	}

	if c.JWTSecret == "" && !c.IsDev() {
		errs = append(errs, errors.New("FLY8_JWT_SECRET is required outside dev"))
	}
	if _, err := c.AllowedSignupRoles(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// AllowedSignupRoles parses FLY8_SIGNUP_ROLES. super_admin is never
// self-service.
func (c Config) AllowedSignupRoles() ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(c.SignupRoles))
	for _, raw := range c.SignupRoles {
		r, err := domain.ParseRole(raw)
		if err != nil {
			return nil, fmt.Errorf("FLY8_SIGNUP_ROLES: %w", err)
		}
		if r == domain.RoleSuperAdmin {
			return nil, errors.New("FLY8_SIGNUP_ROLES: super_admin cannot sign up")
		}
		if !slices.Contains(roles, r) {
			roles = append(roles, r)
		}
	}
	return roles, nil
}
