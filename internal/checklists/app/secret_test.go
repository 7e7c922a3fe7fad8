package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSigningSecret(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"

	t.Run("from env", func(t *testing.T) {
		got, err := LoadSigningSecret(Config{JWTSecret: secret, Env: "prod"}, discardLogger())
		require.NoError(t, err)
		require.Equal(t, []byte(secret), got)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jwt")
		require.NoError(t, os.WriteFile(path, []byte(secret+"\n"), 0o600))

		got, err := LoadSigningSecret(Config{JWTSecretFile: path, Env: "prod"}, discardLogger())
		require.NoError(t, err)
		require.Equal(t, []byte(secret), got)
	})

	t.Run("env wins over file", func(t *testing.T) {
		got, err := LoadSigningSecret(Config{
			JWTSecret:     secret,
			JWTSecretFile: filepath.Join(t.TempDir(), "missing"),
		}, discardLogger())
		require.NoError(t, err)
		require.Equal(t, []byte(secret), got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSigningSecret(Config{JWTSecretFile: filepath.Join(t.TempDir(), "missing")}, discardLogger())
		require.Error(t, err)
	})

	t.Run("generated in dev and test", func(t *testing.T) {
		for _, env := range []string{"dev", "test"} {
			a, err := LoadSigningSecret(Config{Env: env}, discardLogger())
			require.NoError(t, err)
			b, err := LoadSigningSecret(Config{Env: env}, discardLogger())
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(a), jwtx.MinSecretLength)
			require.NotEqual(t, a, b)
		}
	})

	t.Run("required elsewhere", func(t *testing.T) {
		for _, env := range []string{"staging", "prod"} {
			_, err := LoadSigningSecret(Config{Env: env}, discardLogger())
			require.ErrorIs(t, err, ErrNoSecret)
		}
	})

	t.Run("too short", func(t *testing.T) {
		_, err := LoadSigningSecret(Config{JWTSecret: "short", Env: "prod"}, discardLogger())
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})
}
