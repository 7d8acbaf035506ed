package user

import (
	"context"
	"strings"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

func (s *Service) Register(ctx context.Context, email string, name *string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrMissingField("email")
	}
	return s.repo.Create(ctx, email, name)
}
