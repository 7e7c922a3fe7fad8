package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/aussiebroadwan/checklists/pkg/jwtx"
)

// ErrNoSecret means no JWT secret was configured outside dev and test.
var ErrNoSecret = errors.New("JWT_SECRET or JWT_SECRET_FILE must be set")

// LoadSigningSecret returns the HS256 secret for session tokens.
//
// Sources, in order:
//   - cfg.JWTSecret
//   - the trimmed content of cfg.JWTSecretFile
//   - a random secret, only in dev and test. Tokens then stop verifying
//     when the process restarts.
func LoadSigningSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	secret := cfg.JWTSecret

	if secret == "" && cfg.JWTSecretFile != "" {
		raw, err := os.ReadFile(filepath.Clean(cfg.JWTSecretFile))
		if err != nil {
			return nil, fmt.Errorf("read JWT secret file: %w", err)
		}
		secret = strings.TrimSpace(string(raw))
	}

	if secret == "" {
		if !cfg.allowsGeneratedSecret() {
			return nil, ErrNoSecret
		}

		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, err
		}
		logger.Warn("no JWT secret configured, using a random one; sessions will not survive a restart", "env", cfg.Env)
		secret = generated
	}

	if len(secret) < jwtx.MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes", jwtx.ErrWeakSecret, jwtx.MinSecretLength)
	}
	return []byte(secret), nil
}
