package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
)

type checklistsRepo struct {
	q queries
}

const checklistColumns = `id, owner_id, title, completed, completed_at, created_at, updated_at`

func scanChecklist(row interface{ Scan(...any) error }) (domain.Checklist, error) {
	var (
		c                    domain.Checklist
		completedAt          sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Completed, &completedAt, &createdAt, &updatedAt); err != nil {
		return domain.Checklist{}, mapNotFound(err)
	}
	c.CompletedAt = mapNullTimePtr(completedAt)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	c.Items = []domain.Item{}
	return c, nil
}

func (r *checklistsRepo) CreateChecklist(ctx context.Context, c domain.Checklist) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO checklists (`+checklistColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Title, c.Completed, mapOptionalTime(c.CompletedAt),
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	if err != nil {
		return err
	}
	return r.insertItems(ctx, c.ID, c.Items)
}

func (r *checklistsRepo) insertItems(ctx context.Context, checklistID string, items []domain.Item) error {
	for pos, it := range items {
		if _, err := r.q.exec(ctx,
			`INSERT INTO checklist_items (checklist_id, position, text, completed) VALUES (?, ?, ?, ?)`,
			checklistID, pos, it.Text, it.Completed,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *checklistsRepo) GetChecklist(ctx context.Context, id, ownerID string) (domain.Checklist, error) {
	return r.getChecklist(ctx, id, ownerID, "")
}

func (r *checklistsRepo) GetChecklistForUpdate(ctx context.Context, id, ownerID string) (domain.Checklist, error) {
	return r.getChecklist(ctx, id, ownerID, r.q.d.ForUpdate)
}

// getChecklist loads the row with lock appended to its SELECT, then the items.
func (r *checklistsRepo) getChecklist(ctx context.Context, id, ownerID, lock string) (domain.Checklist, error) {
	c, err := scanChecklist(r.q.queryRow(ctx,
		`SELECT `+checklistColumns+` FROM checklists WHERE id = ? AND owner_id = ?`+lock, id, ownerID))
	if err != nil {
		return domain.Checklist{}, err
	}

	items, err := r.loadItems(ctx,
		`SELECT checklist_id, text, completed FROM checklist_items WHERE checklist_id = ? ORDER BY position`, id)
	if err != nil {
		return domain.Checklist{}, err
	}
	if got, ok := items[id]; ok {
		c.Items = got
	}
	return c, nil
}

func (r *checklistsRepo) ListChecklists(ctx context.Context, ownerID string) ([]domain.Checklist, error) {
	rows, err := r.q.query(ctx,
		`SELECT `+checklistColumns+` FROM checklists WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}

	out := []domain.Checklist{}
	for rows.Next() {
		c, err := scanChecklist(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// Rows must be closed before the next query; sqlite runs on one connection.
	items, err := r.loadItems(ctx,
		`SELECT i.checklist_id, i.text, i.completed
		   FROM checklist_items i
		   JOIN checklists c ON c.id = i.checklist_id
		  WHERE c.owner_id = ?
		  ORDER BY i.checklist_id, i.position`, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if got, ok := items[out[i].ID]; ok {
			out[i].Items = got
		}
	}
	return out, nil
}

func (r *checklistsRepo) loadItems(ctx context.Context, query string, args ...any) (map[string][]domain.Item, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.Item)
	for rows.Next() {
		var (
			checklistID string
			it          domain.Item
		)
		if err := rows.Scan(&checklistID, &it.Text, &it.Completed); err != nil {
			return nil, err
		}
		items[checklistID] = append(items[checklistID], it)
	}
	return items, rows.Err()
}

func (r *checklistsRepo) UpdateChecklist(ctx context.Context, c domain.Checklist) error {
	res, err := r.q.exec(ctx,
		`UPDATE checklists SET title = ?, completed = ?, completed_at = ?, updated_at = ?
		  WHERE id = ? AND owner_id = ?`,
		c.Title, c.Completed, mapOptionalTime(c.CompletedAt), toMillis(c.UpdatedAt), c.ID, c.OwnerID,
	)
	if err != nil {
		return err
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	if _, err := r.q.exec(ctx, `DELETE FROM checklist_items WHERE checklist_id = ?`, c.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, c.ID, c.Items)
}

func (r *checklistsRepo) DeleteChecklist(ctx context.Context, id, ownerID string) error {
	if _, err := r.q.exec(ctx,
		`DELETE FROM checklist_items WHERE checklist_id IN (SELECT id FROM checklists WHERE id = ? AND owner_id = ?)`,
		id, ownerID,
	); err != nil {
		return err
	}

	res, err := r.q.exec(ctx, `DELETE FROM checklists WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
