package http

import (
	"context"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/service"
	"github.com/aussiebroadwan/checklists/pkg/httpx"
)

// TokenVerifier lets AuthnMiddleware resolve tokens through ts. The principal
// carries the domain.User the token belongs to.
func TokenVerifier(ts *service.TokenService) httpx.TokenVerifier {
	return httpx.TokenVerifierFunc(func(ctx context.Context, token string) (httpx.Principal, error) {
		u, err := ts.Verify(ctx, token)
		if err != nil {
			return httpx.Principal{}, err
		}
		return httpx.Principal{Subject: u.ID, Value: u}, nil
	})
}

// currentUser returns the user AuthnMiddleware resolved for this request.
func currentUser(ctx context.Context) (domain.User, bool) {
	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		return domain.User{}, false
	}
	u, ok := p.Value.(domain.User)
	return u, ok
}
