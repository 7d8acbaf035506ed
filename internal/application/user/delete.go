package user

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// Delete is the administrative path: no HTTP endpoint removes users, only the
// admin tool calls this. Deletion cascades to the user's behavior events.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidField("id", "must be a positive integer")
	}
	return s.repo.Delete(ctx, id)
}
