package checklistsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTokenHeader is the header the service reads and returns tokens in.
const DefaultTokenHeader = "x-auth"

// Client talks to the checklists service. It covers the unauthenticated
// endpoints and creates Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// TokenHeader defaults to DefaultTokenHeader.
	TokenHeader string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		TokenHeader: DefaultTokenHeader,
	}
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/users", email, password)
}

// Login starts a new session for an existing account. Earlier sessions stay
// valid.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/users/login", email, password)
}

// NewSession wraps a token obtained earlier. The session's user is unknown
// until Me is called.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*Session, error) {
	body, err := json.Marshal(Credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	token := resp.Header.Get(c.tokenHeader())

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("response carried no %s header", c.tokenHeader())
	}

	return &Session{client: c, token: token, user: user}, nil
}

func (c *Client) tokenHeader() string {
	if c.TokenHeader == "" {
		return DefaultTokenHeader
	}
	return c.TokenHeader
}
