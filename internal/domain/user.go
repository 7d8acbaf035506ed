package domain

import (
	"strings"
	"time"
)

// User is a person's static profile. Email is the natural key: at most one
// user per email, matched case-sensitively. All other profile fields are
// optional and fully replaced on every upsert.
type User struct {
	ID          int64
	Email       string
	Name        *string
	Country     *string
	City        *string
	Age         *int
	Preferences Document

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile carries the mutable fields of an upsert. A nil optional field is
// written as NULL: the upsert is a full replace, not a partial patch.
type Profile struct {
	Email       string
	Name        *string
	Country     *string
	City        *string
	Age         *int
	Preferences Document
}

func (p *Profile) Normalize() error {
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" {
		return ErrMissingField("email")
	}
	return nil
}
