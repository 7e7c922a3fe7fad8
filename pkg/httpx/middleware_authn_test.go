package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	tokens map[string]httpx.Principal
	calls  int
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (httpx.Principal, error) {
	s.calls++
	p, ok := s.tokens[token]
	if !ok {
		return httpx.Principal{}, errors.New("unknown token")
	}
	return p, nil
}

func TestAuthnMiddleware(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]httpx.Principal{
		"good": {Subject: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Value: "alice"},
	}}

	var got httpx.Principal
	var gotOK bool
	protected := httpx.AuthnMiddleware("", verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, gotOK = httpx.PrincipalFromContext(r.Context())
		require.Equal(t, got.Subject, httpx.UserIDFromContext(r.Context()))
		require.Equal(t, "good", httpx.TokenFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checklists", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, 0, verifier.calls)

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "invalid_token", body.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/checklists", nil)
		req.Header.Set(httpx.DefaultTokenHeader, "bad")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("accepted token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/checklists", nil)
		req.Header.Set("X-Auth", " good ")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, gotOK)
		require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.Subject)
		require.Equal(t, "good", got.Token)
		require.Equal(t, "alice", got.Value)
	})
}

func TestAuthnMiddlewareCustomHeader(t *testing.T) {
	verifier := httpx.TokenVerifierFunc(func(ctx context.Context, token string) (httpx.Principal, error) {
		return httpx.Principal{Subject: token}, nil
	})
	protected := httpx.AuthnMiddleware("Authorization-Token", verifier)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.DefaultTokenHeader, "ignored")
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("Authorization-Token", "abc")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalFromEmptyContext(t *testing.T) {
	_, ok := httpx.PrincipalFromContext(context.Background())
	require.False(t, ok)
	require.Empty(t, httpx.UserIDFromContext(context.Background()))
	require.Empty(t, httpx.TokenFromContext(context.Background()))
}
