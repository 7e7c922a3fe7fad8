//go:build e2e

package checklists_test

import (
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/stretchr/testify/require"
)

// exerciseChecklists runs the user journey against client: register, log in
// twice, work with checklists, check isolation and log out.
func exerciseChecklists(t *testing.T, client *checklistsdk.Client) {
	t.Helper()
	ctx := t.Context()

	alice := registerUser(t, client)
	bob := registerUser(t, client)

	other, err := client.Login(ctx, alice.User().Email, testPassword)
	require.NoError(t, err)

	created, err := alice.CreateChecklist(ctx, checklistsdk.CreateChecklistRequest{
		Title: "packing",
		Items: []checklistsdk.Item{{Text: "passport"}, {Text: "charger"}},
	})
	require.NoError(t, err)
	require.Nil(t, created.CompletedAt)

	done := true
	items := []checklistsdk.Item{{Text: "passport", Completed: true}, {Text: "charger", Completed: true}}
	updated, err := other.UpdateChecklist(ctx, created.ID, checklistsdk.UpdateChecklistRequest{
		Completed: &done,
		Items:     &items,
	})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	require.Equal(t, items, updated.Items)

	_, err = bob.GetChecklist(ctx, created.ID)
	require.ErrorIs(t, err, checklistsdk.ErrNotFound)

	bobs, err := bob.ListChecklists(ctx)
	require.NoError(t, err)
	require.Empty(t, bobs)

	_, err = alice.GetChecklist(ctx, "not-an-id")
	require.ErrorIs(t, err, checklistsdk.ErrInvalidID)

	require.NoError(t, alice.Logout(ctx))
	_, err = alice.ListChecklists(ctx)
	require.ErrorIs(t, err, checklistsdk.ErrInvalidToken)

	deleted, err := other.DeleteChecklist(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, *updated, *deleted)

	list, err := other.ListChecklists(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

// TestChecklistsOnSQLite runs the journey against the default SQLite store.
func TestChecklistsOnSQLite(t *testing.T) {
	exerciseChecklists(t, setupService(t))
}

// TestChecklistsOnPostgres runs the same journey with DATABASE_URL pointing
// at a Postgres container.
func TestChecklistsOnPostgres(t *testing.T) {
	exerciseChecklists(t, setupServiceOnPostgres(t))
}

// TestRegistrationErrors checks the error bodies clients see.
func TestRegistrationErrors(t *testing.T) {
	client := setupService(t)
	ctx := t.Context()

	session := registerUser(t, client)

	_, err := client.Register(ctx, session.User().Email, testPassword)
	var apiErr *checklistsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, checklistsdk.ErrorCodeValidation, apiErr.Code)
	require.Contains(t, apiErr.Details, "email")

	_, err = client.Register(ctx, "new@example.com", "123")
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Details, "password")

	_, err = client.Login(ctx, session.User().Email, "not-the-password")
	require.ErrorIs(t, err, checklistsdk.ErrInvalidCredentials)
}
