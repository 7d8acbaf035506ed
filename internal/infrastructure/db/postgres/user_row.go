package postgres

import (
	"database/sql"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type userRow struct {
	ID          int64
	Email       string
	Name        sql.NullString
	Country     sql.NullString
	City        sql.NullString
	Age         sql.NullInt64
	Preferences domain.Document
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

func (ur *userRow) fields() []any {
	return []any{
		&ur.ID, &ur.Email, &ur.Name, &ur.Country, &ur.City,
		&ur.Age, &ur.Preferences, &ur.CreatedAt, &ur.UpdatedAt,
	}
}

func (ur *userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:          ur.ID,
		Email:       ur.Email,
		Preferences: ur.Preferences,
		CreatedAt:   ur.CreatedAt.Time,
		UpdatedAt:   ur.UpdatedAt.Time,
	}
	if ur.Name.Valid {
		v := ur.Name.String
		u.Name = &v
	}
	if ur.Country.Valid {
		v := ur.Country.String
		u.Country = &v
	}
	if ur.City.Valid {
		v := ur.City.String
		u.City = &v
	}
	if ur.Age.Valid {
		v := int(ur.Age.Int64)
		u.Age = &v
	}
	return u
}
