package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/metrics"
	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	u, err := svc.users.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.tokens.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	session, err := svc.store.Sessions().GetSession(ctx, u.ID, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, jwtx.AccessAuth, session.Access)
	require.NotNil(t, session.ExpiresAt)
}

func TestConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	u, err := svc.users.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	first, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)
	second, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, svc.tokens.Revoke(ctx, u.ID, first))
	require.NoError(t, svc.tokens.Revoke(ctx, u.ID, first), "revoking twice is fine")

	_, err = svc.tokens.Verify(ctx, first)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.tokens.Verify(ctx, second)
	require.NoError(t, err)

	n, err := svc.tokens.RevokeAll(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = svc.tokens.Verify(ctx, second)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejects(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	u, err := svc.users.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	valid, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)

	otherSigner, err := jwtx.NewSignerHS256([]byte("another-secret-that-is-long-enough"))
	require.NoError(t, err)
	forged, err := otherSigner.Sign(jwtx.NewSessionClaims(u.ID, jwtx.AccessAuth, "checklists-test", time.Hour, time.Now()))
	require.NoError(t, err)

	// Correctly signed but never recorded as a session.
	unrecorded, err := svc.tokens.Signer.Sign(jwtx.NewSessionClaims(u.ID, jwtx.AccessAuth, "checklists-test", time.Hour, time.Now()))
	require.NoError(t, err)

	wrongAccess, err := svc.tokens.Signer.Sign(jwtx.NewSessionClaims(u.ID, "admin", "checklists-test", time.Hour, time.Now()))
	require.NoError(t, err)
	require.NoError(t, svc.store.Sessions().CreateSession(ctx, domain.Session{
		UserID: u.ID, TokenHash: cryptox.FingerprintToken(wrongAccess), Access: "admin", CreatedAt: time.Now(),
	}))

	expired, err := svc.tokens.Signer.Sign(jwtx.NewSessionClaims(u.ID, jwtx.AccessAuth, "checklists-test", time.Hour, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":        "",
		"whitespace":   "   ",
		"garbage":      "not.a.jwt",
		"tampered":     valid + "x",
		"forged":       forged,
		"unrecorded":   unrecorded,
		"wrong access": wrongAccess,
		"expired":      expired,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.tokens.Verify(ctx, token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokensWithoutExpiry(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, 0)

	u, err := svc.users.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)

	claims, err := svc.tokens.Verifier.Verify(token)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)

	session, err := svc.store.Sessions().GetSession(ctx, u.ID, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Nil(t, session.ExpiresAt)

	_, err = svc.tokens.Verify(ctx, token)
	require.NoError(t, err)
}

type revokeCounter struct {
	metrics.Nop
	revoked int
}

func (r *revokeCounter) RecordSessionsRevoked(n int) { r.revoked += n }

func TestRevokeCountsOnlyRemovedSessions(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)
	counter := &revokeCounter{}
	svc.tokens.Metrics = counter

	u := registerUser(t, svc, "alice@example.com")
	token, err := svc.tokens.Issue(ctx, u.ID)
	require.NoError(t, err)

	require.NoError(t, svc.tokens.Revoke(ctx, u.ID, token))
	require.Equal(t, 1, counter.revoked)

	require.NoError(t, svc.tokens.Revoke(ctx, u.ID, token))
	require.NoError(t, svc.tokens.Revoke(ctx, u.ID, "never-issued"))
	require.Equal(t, 1, counter.revoked)
}
