package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

// DefaultTokenHeader carries session tokens in both directions.
const DefaultTokenHeader = "x-auth"

// TokenVerifier resolves a raw session token to the principal that holds it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (Principal, error)
}

// TokenVerifierFunc adapts a function to TokenVerifier.
type TokenVerifierFunc func(ctx context.Context, token string) (Principal, error)

func (f TokenVerifierFunc) VerifyToken(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// AuthnMiddleware rejects requests whose header does not carry a token v
// accepts. Accepted requests continue with the principal in their context.
func AuthnMiddleware(header string, v TokenVerifier) Middleware {
	if header == "" {
		header = DefaultTokenHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(header))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "invalid_token", "missing session token")
				return
			}

			principal, err := v.VerifyToken(ctx, raw)
			if err != nil {
				log.Warn("session token rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "invalid_token", "the session token is invalid, expired or revoked")
				return
			}
			principal.Token = raw

			ctx = contextWithPrincipal(ctx, principal)
			ctx = slogx.WithUserID(ctx, principal.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
