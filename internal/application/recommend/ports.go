package recommend

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type SummaryRepo interface {
	// CountByType aggregates a user's events grouped by type, ordered by
	// count descending. Unknown users produce an empty result, not an error.
	CountByType(ctx context.Context, userID int64) ([]domain.EventTypeCount, error)
}
