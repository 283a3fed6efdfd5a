package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents the account security policy loaded from a
// YAML file. It controls signup password requirements and session
// token settings.
type SecurityConfig struct {
	Security struct {
		Passwords struct {
			MinLength     int      `yaml:"min_length"`
			WeakPasswords []string `yaml:"weak_passwords"`
		} `yaml:"passwords"`
		Session struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"session"`
	} `yaml:"security"`
}

// LoadSecurityConfig loads the security policy from a YAML file.
// The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Passwords.MinLength <= 0 {
		return fmt.Errorf("min_length must be positive")
	}

	if config.Security.Passwords.MinLength < 8 {
		return fmt.Errorf("min_length must be at least 8")
	}

	if config.Security.Session.SecretEnv == "" {
		return fmt.Errorf("session secret_env is required")
	}

	if config.Security.Session.ExpiryHours <= 0 {
		return fmt.Errorf("session expiry_hours must be positive")
	}

	return nil
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Passwords.MinLength
}

// GetWeakPasswords returns the list of passwords rejected at signup.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Passwords.WeakPasswords
}

// GetSessionSecretEnv returns the environment variable name holding
// the session signing secret.
func (c *SecurityConfig) GetSessionSecretEnv() string {
	return c.Security.Session.SecretEnv
}

// GetSessionExpiryHours returns the session expiry time in hours.
func (c *SecurityConfig) GetSessionExpiryHours() int {
	return c.Security.Session.ExpiryHours
}

// DefaultSecurityConfig returns the policy used when no YAML file is
// provided.
func DefaultSecurityConfig() *SecurityConfig {
	var config SecurityConfig
	config.Security.Passwords.MinLength = 8
	config.Security.Passwords.WeakPasswords = []string{"password", "12345678", "qwertyui"}
	config.Security.Session.SecretEnv = "SESSION_SECRET"
	config.Security.Session.ExpiryHours = 24
	return &config
}
