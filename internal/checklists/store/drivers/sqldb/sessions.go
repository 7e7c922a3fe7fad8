package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
)

type sessionsRepo struct {
	q queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO sessions (user_id, token_hash, access, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		s.UserID, s.TokenHash, s.Access, toMillis(s.CreatedAt), mapOptionalTime(s.ExpiresAt),
	)
	return err
}

func (r *sessionsRepo) GetSession(ctx context.Context, userID, tokenHash string) (domain.Session, error) {
	var (
		s         domain.Session
		createdAt int64
		expiresAt sql.NullInt64
	)
	err := r.q.queryRow(ctx,
		`SELECT user_id, token_hash, access, created_at, expires_at FROM sessions WHERE user_id = ? AND token_hash = ?`,
		userID, tokenHash,
	).Scan(&s.UserID, &s.TokenHash, &s.Access, &createdAt, &expiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	s.CreatedAt = fromMillis(createdAt)
	s.ExpiresAt = mapNullTimePtr(expiresAt)
	return s, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, userID, tokenHash string) (int64, error) {
	res, err := r.q.exec(ctx, `DELETE FROM sessions WHERE user_id = ? AND token_hash = ?`, userID, tokenHash)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sessionsRepo) DeleteUserSessions(ctx context.Context, userID string) (int64, error) {
	res, err := r.q.exec(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.exec(ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= ?`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
