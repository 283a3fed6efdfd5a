package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Addr:                ":8080",
		DBDriver:            "sqlite",
		DatabaseURL:         "file::memory:",
		NewsCountOnHomePage: 10,
		SessionSecret:       strings.Repeat("s", 32),
		SessionTTL:          24 * time.Hour,
		LogoutStatus:        200,
		RequestTimeout:      30 * time.Second,
		MaxBodyBytes:        1 << 20,
		LoginRatePerMinute:  10,
		LoginBurst:          5,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		errorMsg string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:     "empty addr",
			mutate:   func(c *Config) { c.Addr = "" },
			wantErr:  true,
			errorMsg: "listen address",
		},
		{
			name:     "unknown driver",
			mutate:   func(c *Config) { c.DBDriver = "mysql" },
			wantErr:  true,
			errorMsg: "DB_DRIVER",
		},
		{
			name:     "missing database url",
			mutate:   func(c *Config) { c.DatabaseURL = "" },
			wantErr:  true,
			errorMsg: "DATABASE_URL",
		},
		{
			name:     "zero news count",
			mutate:   func(c *Config) { c.NewsCountOnHomePage = 0 },
			wantErr:  true,
			errorMsg: "NEWS_COUNT_ON_HOME_PAGE",
		},
		{
			name:     "short session secret",
			mutate:   func(c *Config) { c.SessionSecret = "short" },
			wantErr:  true,
			errorMsg: "SESSION_SECRET",
		},
		{
			name:     "zero session ttl",
			mutate:   func(c *Config) { c.SessionTTL = 0 },
			wantErr:  true,
			errorMsg: "SESSION_TTL",
		},
		{
			name:     "logout status out of range",
			mutate:   func(c *Config) { c.LogoutStatus = 500 },
			wantErr:  true,
			errorMsg: "LOGOUT_STATUS",
		},
		{
			name:     "negative body limit",
			mutate:   func(c *Config) { c.MaxBodyBytes = -1 },
			wantErr:  true,
			errorMsg: "MAX_BODY_BYTES",
		},
		{
			name:     "zero login burst",
			mutate:   func(c *Config) { c.LoginBurst = 0 },
			wantErr:  true,
			errorMsg: "rate limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("k", 32))
	t.Setenv("ADDR", "")
	t.Setenv("NEWS_COUNT_ON_HOME_PAGE", "")
	t.Setenv("BLOCKLIST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.NewsCountOnHomePage != DefaultNewsCountOnHomePage {
		t.Errorf("expected default news count %d, got %d", DefaultNewsCountOnHomePage, cfg.NewsCountOnHomePage)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %q", cfg.DBDriver)
	}
	if len(cfg.BadWords) == 0 {
		t.Error("expected default blocklist to be non-empty")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %v", cfg.SessionTTL)
	}
	if cfg.LogoutStatus != 200 {
		t.Errorf("expected default logout status 200, got %d", cfg.LogoutStatus)
	}
}

func TestLoadBlocklistOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("k", 32))
	t.Setenv("BLOCKLIST", "spam, scam")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(cfg.BadWords) != 2 || cfg.BadWords[0] != "spam" || cfg.BadWords[1] != "scam" {
		t.Errorf("expected blocklist [spam scam], got %v", cfg.BadWords)
	}
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing session secret, got nil")
	}
}
