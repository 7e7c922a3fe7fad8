//go:build e2e

package checklists_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies that login is rate limited per IP and email.
// The strict limit is 5 requests per minute.
func TestRateLimitLogin(t *testing.T) {
	client := setupServiceWithDefaultRateLimits(t)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody@example.com", "wrong-password")
		require.ErrorIs(t, err, checklistsdk.ErrInvalidCredentials, "request %d should not be rate limited", i+1)
	}

	_, err := client.Login(ctx, "nobody@example.com", "wrong-password")
	require.ErrorIs(t, err, checklistsdk.ErrRateLimited)

	var apiErr *checklistsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 429, apiErr.StatusCode)

	// A different email has its own bucket.
	_, err = client.Login(ctx, "somebody@example.com", "wrong-password")
	require.ErrorIs(t, err, checklistsdk.ErrInvalidCredentials)
}
