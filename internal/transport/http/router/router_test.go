package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/behavior"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/recommend"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/user"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/config"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/handlers"
)

type stubUserRepo struct{}

func (stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, domain.ErrNotFound("user not found")
}
func (stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound("user not found")
}
func (stubUserRepo) Upsert(ctx context.Context, p domain.Profile) (*domain.User, bool, error) {
	return &domain.User{ID: 1, Email: p.Email}, true, nil
}
func (stubUserRepo) Create(ctx context.Context, email string, name *string) (*domain.User, error) {
	return &domain.User{ID: 1, Email: email, Name: name}, nil
}
func (stubUserRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubBehaviorRepo struct{}

func (stubBehaviorRepo) Append(ctx context.Context, e *domain.BehaviorEvent) error {
	e.ID = 1
	e.OccurredAt = time.Now().UTC()
	return nil
}
func (stubBehaviorRepo) ListByUser(ctx context.Context, userID int64, f domain.ListFilter) ([]domain.BehaviorEvent, error) {
	return []domain.BehaviorEvent{}, nil
}

type stubSummaryRepo struct{}

func (stubSummaryRepo) CountByType(ctx context.Context, userID int64) ([]domain.EventTypeCount, error) {
	return []domain.EventTypeCount{}, nil
}

func newTestRouter(rlEnabled bool) http.Handler {
	cfg := &config.Config{RLEnabled: rlEnabled, RLLimit: 2, RLWindow: time.Minute}
	userSvc := user.New(stubUserRepo{})
	return New(
		handlers.NewUsersHandler(userSvc),
		handlers.NewAuthHandler(userSvc),
		handlers.NewBehaviorHandler(behavior.New(stubBehaviorRepo{}, nil)),
		handlers.NewRecommendationsHandler(recommend.New(stubSummaryRepo{})),
		handlers.NewHealthHandler(),
		cfg,
	)
}

func TestRouter_Routing(t *testing.T) {
	r := newTestRouter(false)

	do := func(method, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("health_is_wired", func(t *testing.T) {
		rr := do("GET", "/health")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ok")
	})

	t.Run("path_params_reach_handlers", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do("GET", "/api/users/abc").Code)
		assert.Equal(t, http.StatusNotFound, do("GET", "/api/users/999999").Code)
		assert.Equal(t, http.StatusOK, do("GET", "/api/behavior/1").Code)
		assert.Equal(t, http.StatusOK, do("GET", "/api/recommendations/1").Code)
	})

	t.Run("unknown_route_404s", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do("GET", "/api/nope").Code)
	})

	t.Run("security_headers_applied", func(t *testing.T) {
		rr := do("GET", "/health")
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})
}

func TestRouter_RateLimit(t *testing.T) {
	r := newTestRouter(true)

	var last int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		last = rr.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
