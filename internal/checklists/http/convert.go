package http

import (
	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
)

func toUser(p domain.Profile) checklistsdk.User {
	return checklistsdk.User{ID: p.ID, Email: p.Email}
}

func toChecklist(c domain.Checklist) checklistsdk.Checklist {
	items := make([]checklistsdk.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = checklistsdk.Item{Text: it.Text, Completed: it.Completed}
	}

	return checklistsdk.Checklist{
		ID:          c.ID,
		Title:       c.Title,
		Completed:   c.Completed,
		CompletedAt: c.CompletedAtMillis(),
		OwnerID:     c.OwnerID,
		Items:       items,
	}
}

func fromItems(items []checklistsdk.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = domain.Item{Text: it.Text, Completed: it.Completed}
	}
	return out
}
