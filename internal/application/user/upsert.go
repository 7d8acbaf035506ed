package user

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// Upsert inserts a new profile or fully replaces the existing one matching the
// email. Omitted optional fields on an existing row are overwritten to NULL.
// The returned bool is true when a new user was created.
func (s *Service) Upsert(ctx context.Context, p domain.Profile) (*domain.User, bool, error) {
	if err := p.Normalize(); err != nil {
		return nil, false, err
	}
	return s.repo.Upsert(ctx, p)
}
