// Package storetest is a behavioural suite every store driver must pass.
package storetest

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/pkg/idx"
	"github.com/aussiebroadwan/checklists/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store.
type Factory func(t *testing.T) store.Store

// Run exercises the repositories and transactions of the store newStore
// builds. Each subtest gets a fresh store.
func Run(t *testing.T, newStore Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore) })
	t.Run("SessionsRequireUser", func(t *testing.T) { testSessionsRequireUser(t, newStore) })
	t.Run("Checklists", func(t *testing.T) { testChecklists(t, newStore) })
	t.Run("WithTxRollsBack", func(t *testing.T) { testWithTxRollsBack(t, newStore) })
	t.Run("ConcurrentUpdatesKeepBothChanges", func(t *testing.T) { testConcurrentUpdates(t, newStore) })
}

func createUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func testUsers(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	u := createUser(t, s, "alice@example.com")

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u, byID)

	byEmail, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = s.Users().GetUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func testSessions(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	now := time.Now().UTC().Truncate(time.Millisecond)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	sessions := []domain.Session{
		{UserID: u.ID, TokenHash: "expired", Access: jwtx.AccessAuth, CreatedAt: now, ExpiresAt: &past},
		{UserID: u.ID, TokenHash: "live", Access: jwtx.AccessAuth, CreatedAt: now, ExpiresAt: &future},
		{UserID: u.ID, TokenHash: "forever", Access: jwtx.AccessAuth, CreatedAt: now},
	}
	for _, sess := range sessions {
		require.NoError(t, s.Sessions().CreateSession(ctx, sess))
	}
	require.ErrorIs(t, s.Sessions().CreateSession(ctx, sessions[0]), store.ErrAlreadyExists)

	got, err := s.Sessions().GetSession(ctx, u.ID, "live")
	require.NoError(t, err)
	require.Equal(t, sessions[1], got)

	got, err = s.Sessions().GetSession(ctx, u.ID, "forever")
	require.NoError(t, err)
	require.Nil(t, got.ExpiresAt)

	n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Sessions().GetSession(ctx, u.ID, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err = s.Sessions().DeleteSession(ctx, u.ID, "live")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = s.Sessions().DeleteSession(ctx, u.ID, "live")
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = s.Sessions().DeleteUserSessions(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func testSessionsRequireUser(t *testing.T, newStore Factory) {
	s := newStore(t)
	err := s.Sessions().CreateSession(context.Background(), domain.Session{
		UserID: idx.New().String(), TokenHash: "x", Access: jwtx.AccessAuth, CreatedAt: time.Now(),
	})
	require.Error(t, err)
}

func testChecklists(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)
	alice := createUser(t, s, "alice@example.com")
	bob := createUser(t, s, "bob@example.com")

	now := time.Now().UTC().Truncate(time.Millisecond)
	first := domain.Checklist{
		ID:        idx.NewAt(now).String(),
		OwnerID:   alice.ID,
		Title:     "groceries",
		Items:     []domain.Item{{Text: "milk"}, {Text: "eggs"}, {Text: "bread"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	second := domain.Checklist{
		ID:        idx.NewAt(now.Add(time.Second)).String(),
		OwnerID:   alice.ID,
		Title:     "empty",
		Items:     []domain.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Checklists().CreateChecklist(ctx, first))
	require.NoError(t, s.Checklists().CreateChecklist(ctx, second))

	t.Run("get keeps item order", func(t *testing.T) {
		got, err := s.Checklists().GetChecklist(ctx, first.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, first, got)
	})

	t.Run("other owners see not found", func(t *testing.T) {
		_, err := s.Checklists().GetChecklist(ctx, first.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		list, err := s.Checklists().ListChecklists(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, list)

		require.ErrorIs(t, s.Checklists().DeleteChecklist(ctx, first.ID, bob.ID), store.ErrNotFound)
		require.ErrorIs(t, s.Checklists().UpdateChecklist(ctx, domain.Checklist{ID: first.ID, OwnerID: bob.ID}), store.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		list, err := s.Checklists().ListChecklists(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, first, list[0])
		require.Equal(t, second, list[1])
	})

	t.Run("update replaces items", func(t *testing.T) {
		updated := first
		updated.Title = "weekly shop"
		updated.SetCompletion(true, now)
		updated.Items = []domain.Item{{Text: "coffee", Completed: true}}
		updated.UpdatedAt = now.Add(time.Minute)

		require.NoError(t, s.Checklists().UpdateChecklist(ctx, updated))

		got, err := s.Checklists().GetChecklist(ctx, first.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("delete removes checklist", func(t *testing.T) {
		require.NoError(t, s.Checklists().DeleteChecklist(ctx, first.ID, alice.ID))

		_, err := s.Checklists().GetChecklist(ctx, first.ID, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Checklists().DeleteChecklist(ctx, first.ID, alice.ID), store.ErrNotFound)
	})
}

func testWithTxRollsBack(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	now := time.Now().UTC().Truncate(time.Millisecond)
	c := domain.Checklist{ID: idx.New().String(), OwnerID: u.ID, Title: "t", Items: []domain.Item{}, CreatedAt: now, UpdatedAt: now}

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Checklists().CreateChecklist(ctx, c))
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Checklists().GetChecklist(ctx, c.ID, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Checklists().CreateChecklist(ctx, c)
	}))
	_, err = s.Checklists().GetChecklist(ctx, c.ID, u.ID)
	require.NoError(t, err)
}

// testConcurrentUpdates races read-modify-write transactions that touch
// disjoint fields. Neither may write back a stale copy of the other's field.
func testConcurrentUpdates(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	now := time.Now().UTC().Truncate(time.Millisecond)
	c := domain.Checklist{ID: idx.New().String(), OwnerID: u.ID, Title: "start", Items: []domain.Item{}, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Checklists().CreateChecklist(ctx, c))

	modify := func(change func(*domain.Checklist)) error {
		return s.WithTx(ctx, func(tx store.Tx) error {
			cur, err := tx.Checklists().GetChecklistForUpdate(ctx, c.ID, u.ID)
			if err != nil {
				return err
			}
			// Widen the window between read and write.
			time.Sleep(20 * time.Millisecond)
			change(&cur)
			return tx.Checklists().UpdateChecklist(ctx, cur)
		})
	}

	for round := range 5 {
		title := fmt.Sprintf("title %d", round)
		items := []domain.Item{{Text: fmt.Sprintf("item %d", round)}}

		var (
			wg   sync.WaitGroup
			errs [2]error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = modify(func(cur *domain.Checklist) { cur.Title = title })
		}()
		go func() {
			defer wg.Done()
			errs[1] = modify(func(cur *domain.Checklist) { cur.Items = items })
		}()
		wg.Wait()
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		got, err := s.Checklists().GetChecklist(ctx, c.ID, u.ID)
		require.NoError(t, err)
		require.Equal(t, title, got.Title, "round %d", round)
		require.Equal(t, items, got.Items, "round %d", round)
	}
}
