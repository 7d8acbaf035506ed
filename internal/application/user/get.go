package user

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidField("id", "must be a positive integer")
	}
	return s.repo.GetByID(ctx, id)
}
