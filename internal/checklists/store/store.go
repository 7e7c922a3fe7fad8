package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it. Repositories hang off the store so a transaction
// scoped store hands out transaction scoped repositories.
type Store interface {
	Users() Users
	Sessions() Sessions
	Checklists() Checklists

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Nested transactions are not
	// supported.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the stored (trimmed) email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u. A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession looks a session up by owner and token fingerprint.
	GetSession(ctx context.Context, userID, tokenHash string) (domain.Session, error)

	// DeleteSession removes one session and reports how many rows went.
	// Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, userID, tokenHash string) (int64, error)

	// DeleteUserSessions removes every session of a user.
	DeleteUserSessions(ctx context.Context, userID string) (int64, error)

	// DeleteExpiredSessions removes sessions whose expiry is at or before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Checklists interface {
	// CreateChecklist inserts the checklist row and its items.
	CreateChecklist(ctx context.Context, c domain.Checklist) error

	// GetChecklist returns ErrNotFound when the checklist is missing or owned
	// by someone else.
	GetChecklist(ctx context.Context, id, ownerID string) (domain.Checklist, error)

	// GetChecklistForUpdate is GetChecklist that also holds a write lock on
	// the checklist row until the surrounding transaction ends. Use it for
	// read-modify-write inside WithTx.
	GetChecklistForUpdate(ctx context.Context, id, ownerID string) (domain.Checklist, error)

	// ListChecklists returns the owner's checklists ordered by id.
	ListChecklists(ctx context.Context, ownerID string) ([]domain.Checklist, error)

	// UpdateChecklist overwrites the mutable fields of c and replaces its items.
	UpdateChecklist(ctx context.Context, c domain.Checklist) error

	// DeleteChecklist removes the checklist and its items.
	DeleteChecklist(ctx context.Context, id, ownerID string) error
}
