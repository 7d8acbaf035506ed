package behavior

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

const routingKeyLogged = "behavior.logged"

type AppendCmd struct {
	UserID     int64
	EventType  string
	Properties domain.Document
}

// loggedPayload is the message body published for downstream agents.
type loggedPayload struct {
	EventID    int64           `json:"event_id"`
	UserID     int64           `json:"user_id"`
	EventType  string          `json:"event_type"`
	Properties domain.Document `json:"event_properties"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (s *Service) Append(ctx context.Context, cmd AppendCmd) (*domain.BehaviorEvent, error) {
	if cmd.UserID <= 0 {
		return nil, domain.ErrInvalidField("user_id", "must be a positive integer")
	}
	e, err := domain.NewBehaviorEvent(cmd.UserID, cmd.EventType, cmd.Properties)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return nil, err
	}

	// Best effort: the append is acknowledged once stored. A publish failure
	// must not fail the request.
	if err := s.pub.PublishEvent(ctx, routingKeyLogged, loggedPayload{
		EventID:    e.ID,
		UserID:     e.UserID,
		EventType:  e.EventType,
		Properties: e.Properties,
		OccurredAt: e.OccurredAt,
	}); err != nil {
		zlog.Warn().Err(err).Int64("user_id", e.UserID).Str("event_type", e.EventType).
			Msg("behavior event publish failed")
	}

	return e, nil
}
