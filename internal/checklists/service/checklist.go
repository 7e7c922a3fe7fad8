package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/metrics"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/pkg/idx"
	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

// ChecklistService owns checklists on behalf of their users. Every lookup is
// scoped to the owner; another user's checklist is reported as not found.
type ChecklistService struct {
	Store   store.Store
	Metrics metrics.Recorder

	// Now defaults to time.Now.
	Now func() time.Time
}

type checklistInput struct {
	Title string      `json:"title" validate:"required"`
	Items []itemInput `json:"items" validate:"dive"`
}

type itemInput struct {
	Text string `json:"text" validate:"required"`
}

func (s *ChecklistService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// normalise trims title and item texts and validates the result as a whole.
func normalise(title string, items []domain.Item) (string, []domain.Item, error) {
	title = strings.TrimSpace(title)
	items, _ = domain.NormaliseItems(items)

	in := checklistInput{Title: title, Items: make([]itemInput, len(items))}
	for i, it := range items {
		in.Items[i] = itemInput{Text: it.Text}
	}
	if err := validateStruct(in); err != nil {
		return "", nil, err
	}
	return title, items, nil
}

// Create stores a new, incomplete checklist for ownerID. Items start
// incomplete whatever the input says.
func (s *ChecklistService) Create(ctx context.Context, ownerID, title string, items []domain.Item) (domain.Checklist, error) {
	title, items, err := normalise(title, items)
	if err != nil {
		return domain.Checklist{}, err
	}
	for i := range items {
		items[i].Completed = false
	}

	now := s.now()
	c := domain.Checklist{
		ID:        idx.NewAt(now).String(),
		OwnerID:   ownerID,
		Title:     title,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Checklists().CreateChecklist(ctx, c)
	})
	if err != nil {
		return domain.Checklist{}, err
	}

	metrics.OrNop(s.Metrics).RecordChecklistCreated()
	slogx.FromContext(ctx).Info("checklist created", "checklist_id", c.ID, "items", len(c.Items))
	return c, nil
}

// List returns ownerID's checklists in creation order.
func (s *ChecklistService) List(ctx context.Context, ownerID string) ([]domain.Checklist, error) {
	return s.Store.Checklists().ListChecklists(ctx, ownerID)
}

// Get returns one of ownerID's checklists. rawID must be a well formed id.
func (s *ChecklistService) Get(ctx context.Context, rawID, ownerID string) (domain.Checklist, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Checklist{}, err
	}

	c, err := s.Store.Checklists().GetChecklist(ctx, id, ownerID)
	return c, mapNotFound(err)
}

// Delete removes one of ownerID's checklists and returns it as it was.
func (s *ChecklistService) Delete(ctx context.Context, rawID, ownerID string) (domain.Checklist, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Checklist{}, err
	}

	var deleted domain.Checklist
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Checklists().GetChecklistForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if err := tx.Checklists().DeleteChecklist(ctx, id, ownerID); err != nil {
			return err
		}
		deleted = c
		return nil
	})
	if err != nil {
		return domain.Checklist{}, mapNotFound(err)
	}

	slogx.FromContext(ctx).Info("checklist deleted", "checklist_id", id)
	return deleted, nil
}

// Update applies patch to one of ownerID's checklists.
//
// A present title or item list replaces the stored one after the same
// trimming and validation as Create; supplied item completion flags are
// kept. Completion is recomputed on every update: a true Completed stamps
// the current time, anything else clears it. Nothing is written when
// validation fails.
func (s *ChecklistService) Update(ctx context.Context, rawID, ownerID string, patch domain.Patch) (domain.Checklist, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Checklist{}, err
	}

	var updated domain.Checklist
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Checklists().GetChecklistForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}

		title, items := c.Title, c.Items
		if patch.Title != nil {
			title = *patch.Title
		}
		if patch.Items != nil {
			items = *patch.Items
		}
		if c.Title, c.Items, err = normalise(title, items); err != nil {
			return err
		}

		now := s.now()
		c.SetCompletion(patch.Completed != nil && *patch.Completed, now)
		c.UpdatedAt = now

		if err := tx.Checklists().UpdateChecklist(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return domain.Checklist{}, mapNotFound(err)
	}
	return updated, nil
}

func parseID(raw string) (string, error) {
	id, err := idx.Parse(raw)
	if err != nil {
		return "", ErrMalformedID
	}
	return id.String(), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
