package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             int
	LogLevel         string
	LogFormat        string
	Environment      string
	ServiceName      string
	Version          string
	SessionCacheSize int
	SessionTTL       time.Duration
	ShutdownTimeout  time.Duration
	TrustedProxies   []string // Remote addresses whose X-Forwarded-For is honoured
	RateLimit        int      // Requests allowed per client IP per rate window
}

// Defaults
const (
	DefaultPort             = 8080
	DefaultSessionCacheSize = 10000
	DefaultSessionTTL       = 30 * time.Minute
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRateLimit        = 1000
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		ServiceName:     getEnv("SERVICE_NAME", "fun-slots"),
		Version:         getEnv("VERSION", "dev"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		TrustedProxies:  splitList(os.Getenv("TRUSTED_PROXIES")),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	size, err := strconv.Atoi(getEnv("SESSION_CACHE_SIZE", strconv.Itoa(DefaultSessionCacheSize)))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE value: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("SESSION_CACHE_SIZE must be positive, got %d", size)
	}
	cfg.SessionCacheSize = size

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", DefaultSessionTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer env var, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration env var, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated env value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
