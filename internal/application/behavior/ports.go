package behavior

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type BehaviorRepo interface {
	// Append inserts the event and fills its ID and OccurredAt. A user_id
	// that names no user fails the FK constraint; no row is written.
	Append(ctx context.Context, e *domain.BehaviorEvent) error

	// ListByUser returns the user's events newest first, optionally
	// filtered by event type and capped by limit.
	ListByUser(ctx context.Context, userID int64, f domain.ListFilter) ([]domain.BehaviorEvent, error)
}

// EventPublisher forwards appended events to downstream analysis agents.
type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
