package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/checklists/pkg/jwtx"
)

type Config struct {
	DatabaseURL          string        // Optional: postgres:// URL; selects the Postgres driver when set
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./checklists.db)
	JWTSecret            string        // Optional: HS256 secret for session tokens
	JWTSecretFile        string        // Optional: file holding the HS256 secret, read when JWTSecret is empty
	TokenIssuer          string        // Optional: iss claim of session tokens (default: checklists)
	TokenTTL             time.Duration // Optional: session lifetime, 0 disables expiry (default: 7 days)
	TokenHeader          string        // Optional: header carrying session tokens (default: x-auth)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	MetricsEnabled       bool          // Expose /metrics (default: true)
	Env                  string        // Environment (dev, staging, prod, test) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session cleanup interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "checklists.db"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTSecretFile:        os.Getenv("JWT_SECRET_FILE"),
		TokenIssuer:          getEnvOrDefault("TOKEN_ISSUER", "checklists"),
		TokenTTL:             getEnvDurationOrDefault("TOKEN_TTL", jwtx.DefaultSessionTTL),
		TokenHeader:          strings.ToLower(getEnvOrDefault("TOKEN_HEADER", "x-auth")),
		PepperFile:           getEnvOrDefault("PEPPER_FILE", "pepper"),
		MetricsEnabled:       getEnvBoolOrDefault("METRICS_ENABLED", true),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// UsesPostgres reports whether DatabaseURL selects the Postgres driver.
func (c Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// allowsGeneratedSecret reports whether a missing JWT secret may be replaced
// by a random one.
func (c Config) allowsGeneratedSecret() bool {
	return c.Env == "dev" || c.Env == "test"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
