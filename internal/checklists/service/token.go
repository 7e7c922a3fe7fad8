package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/metrics"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

// TokenService issues signed session tokens and checks presented tokens
// against the sessions a user still holds.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Store    store.Store
	Issuer   string
	TTL      time.Duration // <= 0 issues tokens without expiry
	Metrics  metrics.Recorder
}

// Issue signs a new session token for userID and records the session.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(userID, jwtx.AccessAuth, s.Issuer, s.TTL, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", err
	}

	session := domain.Session{
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(token),
		Access:    jwtx.AccessAuth,
		CreatedAt: now,
		ExpiresAt: claims.ExpiresAtTime(),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", err
	}

	metrics.OrNop(s.Metrics).RecordSessionIssued()
	return token, nil
}

// Verify resolves token to its user. Any failure, from a bad signature to a
// revoked session or a deleted user, is ErrInvalidToken.
func (s *TokenService) Verify(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		log.Debug("token rejected", "err", err)
		return domain.User{}, ErrInvalidToken
	}
	if err := claims.ValidateAccess(jwtx.AccessAuth); err != nil {
		return domain.User{}, ErrInvalidToken
	}

	session, err := s.Store.Sessions().GetSession(ctx, claims.Subject, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	if session.Access != jwtx.AccessAuth || session.Expired(time.Now()) {
		return domain.User{}, ErrInvalidToken
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	return u, nil
}

// Revoke ends the session holding token. Revoking a session that does not
// exist succeeds.
func (s *TokenService) Revoke(ctx context.Context, userID, token string) error {
	n, err := s.Store.Sessions().DeleteSession(ctx, userID, cryptox.FingerprintToken(token))
	if err != nil {
		return err
	}
	metrics.OrNop(s.Metrics).RecordSessionsRevoked(int(n))
	return nil
}

// RevokeAll ends every session of userID and reports how many there were.
func (s *TokenService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	n, err := s.Store.Sessions().DeleteUserSessions(ctx, userID)
	if err != nil {
		return 0, err
	}
	metrics.OrNop(s.Metrics).RecordSessionsRevoked(int(n))
	return n, nil
}
