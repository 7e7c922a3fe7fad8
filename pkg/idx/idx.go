// Package idx generates and validates the identifiers used for users,
// checklists and request ids. Identifiers are ULIDs: 26 character Crockford
// base32 strings that sort by creation time.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID. It never identifies a stored record.
const Zero ID = ""

// ErrInvalid reports a string that is not a canonical ULID.
var ErrInvalid = errors.New("idx: invalid id")

var (
	once   sync.Once
	source *generator
)

// generator hands out monotonic ULIDs. The entropy source is not safe for
// concurrent use so every call goes through the mutex.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) at(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}

func initSource() {
	source = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a fresh ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with t. IDs created for the same millisecond
// still sort in creation order.
func NewAt(t time.Time) ID {
	once.Do(initSource)
	return source.at(t)
}

// Parse validates s and returns it as an ID. Surrounding whitespace is
// ignored, anything else that is not a canonical ULID yields ErrInvalid.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Zero, ErrInvalid
	}

	// Lowercase input parses, store the canonical upper case form.
	return ID(u.String()), nil
}

// MustParse is Parse for fixtures and constants. It panics on bad input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s parses as an ID.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time returns the creation timestamp embedded in the ID, or the zero time
// for zero and invalid IDs.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// Compare orders a and b. Canonical IDs compare in creation order.
func Compare(a, b ID) int {
	return strings.Compare(string(a), string(b))
}
