package user

import (
	"context"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Upsert atomically inserts or fully replaces the profile matching
	// p.Email. The bool reports whether a new row was inserted.
	Upsert(ctx context.Context, p domain.Profile) (*domain.User, bool, error)

	// Create inserts a new user and fails with a conflict when the email
	// is already registered.
	Create(ctx context.Context, email string, name *string) (*domain.User, error)

	// Delete removes the user row; the user's behavior events go with it
	// (FK cascade).
	Delete(ctx context.Context, id int64) error
}
