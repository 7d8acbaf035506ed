package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type BehaviorRepo struct {
	db *sql.DB
}

func NewBehaviorRepo(db *sql.DB) *BehaviorRepo { return &BehaviorRepo{db: db} }

func (r *BehaviorRepo) Append(ctx context.Context, e *domain.BehaviorEvent) error {
	err := r.db.QueryRowContext(ctx, insertBehaviorEventSQL,
		e.UserID, e.EventType, e.Properties,
	).Scan(&e.ID, &e.OccurredAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferential("user does not exist", err)
		}
		return domain.ErrStorage(err)
	}
	return nil
}

func (r *BehaviorRepo) ListByUser(ctx context.Context, userID int64, f domain.ListFilter) ([]domain.BehaviorEvent, error) {
	q := `
SELECT id, user_id, event_type, event_properties, occurred_at
FROM behavior_events
WHERE user_id = $1`
	args := []any{userID}

	if f.EventType != "" {
		q += ` AND event_type = $2`
		args = append(args, f.EventType)
	}
	q += fmt.Sprintf(` ORDER BY occurred_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	defer rows.Close()

	out := []domain.BehaviorEvent{}
	for rows.Next() {
		var e domain.BehaviorEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.Properties, &e.OccurredAt); err != nil {
			return nil, domain.ErrStorage(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorage(err)
	}
	return out, nil
}

func (r *BehaviorRepo) CountByType(ctx context.Context, userID int64) ([]domain.EventTypeCount, error) {
	rows, err := r.db.QueryContext(ctx, countByTypeSQL, userID)
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	defer rows.Close()

	out := []domain.EventTypeCount{}
	for rows.Next() {
		var c domain.EventTypeCount
		if err := rows.Scan(&c.EventType, &c.Count); err != nil {
			return nil, domain.ErrStorage(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorage(err)
	}
	return out, nil
}
