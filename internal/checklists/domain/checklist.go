package domain

import (
	"strings"
	"time"
)

type Checklist struct {
	ID          string
	OwnerID     string
	Title       string
	Completed   bool
	CompletedAt *time.Time // set iff Completed
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is an entry of a checklist. Items have no identity of their own and
// are always replaced as a whole list.
type Item struct {
	Text      string
	Completed bool
}

// Patch is a partial checklist update. Nil fields are left as they are,
// except Completed: an absent value means "not completed".
type Patch struct {
	Title     *string
	Completed *bool
	Items     *[]Item
}

// SetCompletion applies the completion state machine. Completing always
// stamps now, even when the checklist was already complete.
func (c *Checklist) SetCompletion(completed bool, now time.Time) {
	if completed {
		at := now.UTC()
		c.Completed = true
		c.CompletedAt = &at
		return
	}
	c.Completed = false
	c.CompletedAt = nil
}

// CompletedAtMillis returns the completion time in ms since the epoch.
func (c Checklist) CompletedAtMillis() *int64 {
	if c.CompletedAt == nil {
		return nil
	}
	ms := c.CompletedAt.UnixMilli()
	return &ms
}

// NormaliseItems trims every item text. It reports the indexes of items
// whose text is empty after trimming.
func NormaliseItems(items []Item) ([]Item, []int) {
	out := make([]Item, len(items))
	var empty []int
	for i, it := range items {
		it.Text = strings.TrimSpace(it.Text)
		if it.Text == "" {
			empty = append(empty, i)
		}
		out[i] = it
	}
	return out, empty
}
