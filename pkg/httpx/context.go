package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyToken     ctxKey = "token"
	CtxKeyPrincipal ctxKey = "principal"
)

// Principal is what a verified session token resolves to.
type Principal struct {
	// Subject is the authenticated user id.
	Subject string

	// Token is the raw token the request presented.
	Token string

	// Value carries the resolved user record for handlers that need more
	// than the id.
	Value any
}

func contextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.Subject)
	ctx = context.WithValue(ctx, CtxKeyToken, p.Token)
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}

// PrincipalFromContext returns the principal stored by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok
}

// UserIDFromContext returns the authenticated user id or "".
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxKeyUserID).(string)
	return id
}

// TokenFromContext returns the raw session token or "".
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(CtxKeyToken).(string)
	return tok
}
