package behavior

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

type fakeRepo struct {
	appended  []domain.BehaviorEvent
	listed    []domain.BehaviorEvent
	appendErr error
	listCalls int
}

func (f *fakeRepo) Append(ctx context.Context, e *domain.BehaviorEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	e.ID = int64(len(f.appended) + 1)
	f.appended = append(f.appended, *e)
	return nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID int64, filter domain.ListFilter) ([]domain.BehaviorEvent, error) {
	f.listCalls++
	return f.listed, nil
}

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, routingKey string, payload any) error {
	p.keys = append(p.keys, routingKey)
	return p.err
}

func TestService_Append(t *testing.T) {
	t.Run("stores_then_publishes", func(t *testing.T) {
		repo := &fakeRepo{}
		pub := &recordingPublisher{}
		svc := New(repo, pub)

		e, err := svc.Append(context.Background(), AppendCmd{UserID: 1, EventType: "click"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), e.ID)
		assert.Equal(t, []string{"behavior.logged"}, pub.keys)
	})

	t.Run("publish_failure_does_not_fail_append", func(t *testing.T) {
		repo := &fakeRepo{}
		pub := &recordingPublisher{err: errors.New("broker down")}
		svc := New(repo, pub)

		_, err := svc.Append(context.Background(), AppendCmd{UserID: 1, EventType: "click"})
		assert.NoError(t, err)
	})

	t.Run("store_failure_skips_publish", func(t *testing.T) {
		repo := &fakeRepo{appendErr: domain.ErrStorage(errors.New("down"))}
		pub := &recordingPublisher{}
		svc := New(repo, pub)

		_, err := svc.Append(context.Background(), AppendCmd{UserID: 1, EventType: "click"})
		assert.Error(t, err)
		assert.Empty(t, pub.keys)
	})

	t.Run("invalid_user_id_rejected", func(t *testing.T) {
		svc := New(&fakeRepo{}, nil)
		_, err := svc.Append(context.Background(), AppendCmd{UserID: 0, EventType: "click"})
		var de *domain.Error
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindInvalidInput, de.Kind)
	})

	t.Run("missing_event_type_rejected", func(t *testing.T) {
		svc := New(&fakeRepo{}, nil)
		_, err := svc.Append(context.Background(), AppendCmd{UserID: 1})
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	t.Run("zero_limit_short_circuits", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := New(repo, nil)

		events, err := svc.List(context.Background(), 1, domain.ListFilter{Limit: 0})
		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.Zero(t, repo.listCalls)
	})

	t.Run("negative_limit_rejected", func(t *testing.T) {
		svc := New(&fakeRepo{}, nil)
		_, err := svc.List(context.Background(), 1, domain.ListFilter{Limit: -5})
		assert.Error(t, err)
	})

	t.Run("delegates_to_repo", func(t *testing.T) {
		repo := &fakeRepo{listed: []domain.BehaviorEvent{{ID: 2}, {ID: 1}}}
		svc := New(repo, nil)

		events, err := svc.List(context.Background(), 1, domain.ListFilter{Limit: 100})
		assert.NoError(t, err)
		assert.Len(t, events, 2)
	})
}
