package checklistsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated handle holding one session token.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  User
}

// Token returns the raw session token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the account the session belongs to, as last seen by
// Register, Login or Me.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Me fetches the session's user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return &user, nil
}

// Logout revokes this session's token. Other sessions of the user are not
// affected.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/users/me/token", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
