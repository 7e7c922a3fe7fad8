package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/internal/checklists/store/drivers/sqlite"
	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

type testServices struct {
	store      store.Store
	users      *UserService
	tokens     *TokenService
	checklists *ChecklistService
}

func newTestServices(t *testing.T, ttl time.Duration) testServices {
	t.Helper()

	s := newTestStore(t)

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "checklists-test", 0)
	require.NoError(t, err)

	users, err := NewUserService(s, cryptox.NewHasher("test-pepper"))
	require.NoError(t, err)

	return testServices{
		store: s,
		users: users,
		tokens: &TokenService{
			Signer:   signer,
			Verifier: verifier,
			Store:    s,
			Issuer:   "checklists-test",
			TTL:      ttl,
		},
		checklists: &ChecklistService{Store: s},
	}
}
