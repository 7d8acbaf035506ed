package behavior

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

func (s *Service) List(ctx context.Context, userID int64, f domain.ListFilter) ([]domain.BehaviorEvent, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidField("user_id", "must be a positive integer")
	}
	if err := f.Normalize(); err != nil {
		return nil, err
	}
	if f.Limit == 0 {
		// limit=0 is an explicit request for nothing
		return []domain.BehaviorEvent{}, nil
	}
	return s.repo.ListByUser(ctx, userID, f)
}
