package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var ur userRow
	err := r.db.QueryRowContext(ctx, getUserByIDSQL, id).Scan(ur.fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var ur userRow
	err := r.db.QueryRowContext(ctx, getUserByEmailSQL, email).Scan(ur.fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	return ur.toDomain(), nil
}

// Upsert is a single atomic statement, so two concurrent upserts for the same
// brand-new email cannot race the way a lookup-then-write would. A unique
// violation can still surface under serialization pressure and maps to a
// conflict, never a crash.
func (r *UserRepo) Upsert(ctx context.Context, p domain.Profile) (*domain.User, bool, error) {
	var ur userRow
	var inserted bool
	dest := append(ur.fields(), &inserted)

	err := r.db.QueryRowContext(ctx, upsertUserSQL,
		p.Email, p.Name, p.Country, p.City, p.Age, p.Preferences,
	).Scan(dest...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, false, domain.ErrConflict("email already registered")
		}
		return nil, false, domain.ErrStorage(err)
	}
	return ur.toDomain(), inserted, nil
}

func (r *UserRepo) Create(ctx context.Context, email string, name *string) (*domain.User, error) {
	var ur userRow
	err := r.db.QueryRowContext(ctx, createUserSQL, email, name).Scan(ur.fields()...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict("email already registered")
		}
		return nil, domain.ErrStorage(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return domain.ErrStorage(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("user not found")
	}
	return nil
}
