package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	u, err := svc.users.Register(ctx, "  alice@example.com ", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.NotEmpty(t, u.ID)
	require.NotContains(t, u.PasswordHash, "hunter22")
	require.Equal(t, u.ID, u.Profile().ID)

	stored, err := svc.users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, stored.Email)
	require.Equal(t, u.PasswordHash, stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	_, err := svc.users.Register(ctx, "taken@example.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		field    string
	}{
		{"missing email", "", "secret1", "email"},
		{"blank email", "   ", "secret1", "email"},
		{"invalid email", "not-an-email", "secret1", "email"},
		{"missing password", "bob@example.com", "", "password"},
		{"short password", "bob@example.com", "12345", "password"},
		{"duplicate email", "taken@example.com", "secret1", "email"},
		{"duplicate email after trim", " taken@example.com", "secret1", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.users.Register(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, time.Hour)

	registered, err := svc.users.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	u, err := svc.users.Authenticate(ctx, " alice@example.com ", "hunter22")
	require.NoError(t, err)
	require.Equal(t, registered.ID, u.ID)

	_, err = svc.users.Authenticate(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrAuthentication)

	_, err = svc.users.Authenticate(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newTestServices(t, time.Hour)

	_, err := svc.users.GetUser(context.Background(), "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewUserServiceHashesDummyUpFront(t *testing.T) {
	ctx := context.Background()
	hasher := cryptox.NewHasher("test-pepper")

	svc, err := NewUserService(newTestStore(t), hasher)
	require.NoError(t, err)
	require.NotEmpty(t, svc.dummyHash)
	require.ErrorIs(t, hasher.Verify("hunter22", svc.dummyHash), cryptox.ErrMismatch)

	dummy := svc.dummyHash
	_, err = svc.Authenticate(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, dummy, svc.dummyHash)
}
