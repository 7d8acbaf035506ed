package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
	deleted []int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound("user not found")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound("user not found")
}

func (f *fakeUserRepo) Upsert(ctx context.Context, p domain.Profile) (*domain.User, bool, error) {
	if u, ok := f.byEmail[p.Email]; ok {
		u.Name, u.Country, u.City, u.Age, u.Preferences = p.Name, p.Country, p.City, p.Age, p.Preferences
		return u, false, nil
	}
	u := &domain.User{ID: f.nextID, Email: p.Email, Name: p.Name, Country: p.Country, City: p.City, Age: p.Age, Preferences: p.Preferences}
	f.nextID++
	f.byEmail[p.Email] = u
	return u, true, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, email string, name *string) (*domain.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, domain.ErrConflict("email already registered")
	}
	u := &domain.User{ID: f.nextID, Email: email, Name: name}
	f.nextID++
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestService_Upsert(t *testing.T) {
	t.Run("new_email_creates_exactly_one_user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := New(repo)

		u, created, err := svc.Upsert(context.Background(), domain.Profile{Email: "a@b.com"})
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, repo.byEmail, 1)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("same_email_mutates_same_row", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := New(repo)

		first, _, err := svc.Upsert(context.Background(), domain.Profile{Email: "a@b.com"})
		assert.NoError(t, err)

		name := "Alice"
		second, created, err := svc.Upsert(context.Background(), domain.Profile{Email: "a@b.com", Name: &name})
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, repo.byEmail, 1)
	})

	t.Run("omitted_fields_overwrite_to_null", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := New(repo)

		name := "Alice"
		_, _, err := svc.Upsert(context.Background(), domain.Profile{Email: "a@b.com", Name: &name})
		assert.NoError(t, err)

		// full replace: no name this time
		u, _, err := svc.Upsert(context.Background(), domain.Profile{Email: "a@b.com"})
		assert.NoError(t, err)
		assert.Nil(t, u.Name)
	})

	t.Run("missing_email_rejected", func(t *testing.T) {
		svc := New(newFakeUserRepo())
		_, _, err := svc.Upsert(context.Background(), domain.Profile{Email: "   "})
		var de *domain.Error
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindInvalidInput, de.Kind)
	})
}

func TestService_Register(t *testing.T) {
	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := New(repo)

		_, err := svc.Register(context.Background(), "a@b.com", nil)
		assert.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@b.com", nil)
		var de *domain.Error
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindConflict, de.Kind)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("invalid_id_rejected", func(t *testing.T) {
		svc := New(newFakeUserRepo())
		assert.Error(t, svc.Delete(context.Background(), 0))
	})

	t.Run("delegates_to_repo", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := New(repo)
		assert.NoError(t, svc.Delete(context.Background(), 9))
		assert.Equal(t, []int64{9}, repo.deleted)
	})
}
