package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessAuth is the access level carried by login sessions.
const AccessAuth = "auth"

// DefaultSessionTTL is how long a session token stays valid when the
// service is not configured otherwise.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the session-token claims. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims

	// Access level granted by the token, "auth" for login sessions.
	Access string `json:"access"`
}

// NewSessionClaims builds claims for subject. A ttl of zero or less issues a
// token without an exp claim; such tokens live until their session is
// revoked.
func NewSessionClaims(subject, access, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       NewJTI(),
		},
		Access: access,
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// NewJTI returns a random URL-safe token id. Two tokens issued to the same
// user in the same second still differ because of it.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ExpiresAtTime returns the exp claim or nil when the token never expires.
func (c *Claims) ExpiresAtTime() *time.Time {
	if c.ExpiresAt == nil {
		return nil
	}
	t := c.ExpiresAt.Time
	return &t
}

// ValidateIssuer checks the iss claim. An empty expectation accepts any.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAccess checks the access level.
func (c *Claims) ValidateAccess(expected string) error {
	if c.Access != expected {
		return ErrAccess
	}
	return nil
}

// ValidateExpiryWithLeeway ensures the token hasn't expired (exp) and isn't
// used before nbf, allowing leeway either side for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
