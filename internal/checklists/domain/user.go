package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the only representation of a user handed to clients.
type Profile struct {
	ID    string
	Email string
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email}
}

// Session is one issued token a user currently holds. The token itself is
// never stored, only its fingerprint.
type Session struct {
	UserID    string
	TokenHash string
	Access    string
	CreatedAt time.Time
	ExpiresAt *time.Time // nil for sessions that never expire
}

// Expired reports whether the session has passed its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
