package user

import (
	"context"
	"strings"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// FindByEmail backs the login placeholder: no credentials, no session, just
// an existence check keyed on email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrMissingField("email")
	}
	return s.repo.GetByEmail(ctx, email)
}
