package recommend

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// Result pairs a behavior summary with the recommendation list. The list is
// always empty until a real scoring algorithm lands; callers must still
// serialize the field.
type Result struct {
	Summary         domain.BehaviorSummary
	Recommendations []domain.Recommendation
}

// Summarize never reports not-found: a user with no events (or no user at
// all) gets an empty summary.
func (s *Service) Summarize(ctx context.Context, userID int64) (Result, error) {
	if userID <= 0 {
		return Result{}, domain.ErrInvalidField("user_id", "must be a positive integer")
	}

	counts, err := s.repo.CountByType(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	return Result{
		Summary: domain.BehaviorSummary{
			UserID: userID,
			Counts: counts,
			Total:  total,
		},
		Recommendations: []domain.Recommendation{},
	}, nil
}
