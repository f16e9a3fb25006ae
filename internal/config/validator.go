package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// MaxRecommendedSessionTTL is the idle expiry above which a warning is issued
const MaxRecommendedSessionTTL = 24 * 60 * 60 // seconds

// ValidateEnv checks that the .env schema version, when set, matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// Validate checks values that parse but cannot be served
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using development settings in production)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	}

	if cfg.Environment == "prod" && cfg.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT should be json in production")
	}

	if cfg.SessionTTL.Seconds() > MaxRecommendedSessionTTL {
		warnings = append(warnings, fmt.Sprintf("SESSION_TTL of %s keeps idle sessions in memory for over a day", cfg.SessionTTL))
	}

	return warnings, nil
}
