package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DATABASE_FILE", "JWT_SECRET", "JWT_SECRET_FILE", "TOKEN_ISSUER",
		"TOKEN_TTL", "TOKEN_HEADER", "PEPPER_FILE", "METRICS_ENABLED", "ENV", "LOG_LEVEL",
		"LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, Config{
		DatabaseFile:         "checklists.db",
		TokenIssuer:          "checklists",
		TokenTTL:             7 * 24 * time.Hour,
		TokenHeader:          "x-auth",
		PepperFile:           "pepper",
		MetricsEnabled:       true,
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: time.Hour,
	}, cfg)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.TokenTTL)
	require.False(t, cfg.UsesPostgres())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/checklists")
	t.Setenv("TOKEN_TTL", "0")
	t.Setenv("TOKEN_HEADER", "X-Session")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15m")

	cfg := LoadConfig()
	require.True(t, cfg.UsesPostgres())
	require.Zero(t, cfg.TokenTTL)
	require.Equal(t, "x-session", cfg.TokenHeader)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Minute, cfg.ShutdownGracePeriod)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.MetricsEnabled)
}

func TestUsesPostgres(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", false},
		{"postgres://localhost/checklists", true},
		{"postgresql://localhost/checklists", true},
		{"file:checklists.db", false},
		{"host=localhost dbname=checklists", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Config{DatabaseURL: tt.url}.UsesPostgres(), tt.url)
	}
}
