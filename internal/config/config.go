// Package config loads application configuration from environment
// variables and validates it at startup.
package config

import (
	"fmt"
	"time"

	"newsroom/internal/moderation"
	"newsroom/pkg/config"
)

const (
	// DefaultNewsCountOnHomePage bounds how many news items the home
	// page lists.
	DefaultNewsCountOnHomePage = 10

	// minSessionSecretLength is the minimum byte length accepted for
	// the session signing secret.
	minSessionSecretLength = 32
)

// Config holds all runtime configuration for the server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBDriver selects the database backend: "pgx" or "sqlite".
	DBDriver string

	// DatabaseURL is the DSN passed to the selected driver.
	DatabaseURL string

	// NewsCountOnHomePage is how many news items the home page shows.
	NewsCountOnHomePage int

	// BadWords is the comment moderation blocklist.
	BadWords []string

	// SessionSecret signs session tokens. Must be at least 32 bytes.
	SessionSecret string

	// SessionTTL is how long an issued session stays valid.
	SessionTTL time.Duration

	// LogoutStatus is the HTTP status returned by a successful POST
	// logout. Some deployments expect 200, others 302.
	LogoutStatus int

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration

	// MaxBodyBytes caps the size of accepted request bodies.
	MaxBodyBytes int64

	// LoginRatePerMinute and LoginBurst configure the login endpoint
	// rate limiter.
	LoginRatePerMinute int
	LoginBurst         int
}

// Load reads configuration from environment variables, applies
// defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:                config.GetEnvString("ADDR", ":8080"),
		DBDriver:            config.GetEnvString("DB_DRIVER", "sqlite"),
		DatabaseURL:         config.GetEnvString("DATABASE_URL", "file:newsroom.db?_pragma=foreign_keys(1)"),
		NewsCountOnHomePage: config.GetEnvInt("NEWS_COUNT_ON_HOME_PAGE", DefaultNewsCountOnHomePage),
		BadWords:            config.GetEnvStringList("BLOCKLIST", moderation.BadWords),
		SessionSecret:       config.GetEnvString("SESSION_SECRET", ""),
		SessionTTL:          config.GetEnvDuration("SESSION_TTL", 24*time.Hour),
		LogoutStatus:        config.GetEnvInt("LOGOUT_STATUS", 200),
		RequestTimeout:      config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxBodyBytes:        int64(config.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		LoginRatePerMinute:  config.GetEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:          config.GetEnvInt("LOGIN_BURST", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that would break the
// server at runtime.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.DBDriver != "pgx" && c.DBDriver != "sqlite" {
		return fmt.Errorf("unsupported DB_DRIVER %q, want pgx or sqlite", c.DBDriver)
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.NewsCountOnHomePage <= 0 {
		return fmt.Errorf("NEWS_COUNT_ON_HOME_PAGE must be positive, got %d", c.NewsCountOnHomePage)
	}

	if len(c.SessionSecret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLength)
	}

	if err := config.ValidatePositiveDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if c.LogoutStatus < 200 || c.LogoutStatus > 399 {
		return fmt.Errorf("LOGOUT_STATUS must be a success or redirect status, got %d", c.LogoutStatus)
	}

	if err := config.ValidatePositiveDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}

	if c.LoginRatePerMinute <= 0 || c.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit settings must be positive")
	}

	return nil
}
