package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/stretchr/testify/require"
)

func TestSetCompletion(t *testing.T) {
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	var c domain.Checklist
	c.SetCompletion(true, first)
	require.True(t, c.Completed)
	require.Equal(t, first, *c.CompletedAt)
	require.Equal(t, first.UnixMilli(), *c.CompletedAtMillis())

	c.SetCompletion(true, later)
	require.Equal(t, later, *c.CompletedAt, "completing again refreshes the timestamp")

	c.SetCompletion(false, later)
	require.False(t, c.Completed)
	require.Nil(t, c.CompletedAt)
	require.Nil(t, c.CompletedAtMillis())
}

func TestNormaliseItems(t *testing.T) {
	items, empty := domain.NormaliseItems([]domain.Item{
		{Text: "  milk "},
		{Text: "   ", Completed: true},
		{Text: "eggs", Completed: true},
		{Text: ""},
	})

	require.Equal(t, []int{1, 3}, empty)
	require.Equal(t, "milk", items[0].Text)
	require.True(t, items[2].Completed)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	require.False(t, domain.Session{}.Expired(now))
	require.True(t, domain.Session{ExpiresAt: &past}.Expired(now))
	require.False(t, domain.Session{ExpiresAt: &future}.Expired(now))
}

func TestProfile(t *testing.T) {
	u := domain.User{ID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Email: "a@example.com", PasswordHash: "secret"}
	require.Equal(t, domain.Profile{ID: u.ID, Email: u.Email}, u.Profile())
}
