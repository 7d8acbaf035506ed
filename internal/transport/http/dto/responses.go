package dto

import (
	"time"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// UserResp is the stable API representation of a user profile. Behavior
// events are never embedded here; they are independently queryable.
type UserResp struct {
	ID          int64           `json:"id"`
	Email       string          `json:"email"`
	Name        *string         `json:"name"`
	Country     *string         `json:"country"`
	City        *string         `json:"city"`
	Age         *int            `json:"age"`
	Preferences domain.Document `json:"preferences"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type LoginResp struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type RegisterResp struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type AckResp struct {
	Status string `json:"status"`
}

type BehaviorEventResp struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	EventType  string          `json:"event_type"`
	Properties domain.Document `json:"event_properties"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventTypeCountResp struct {
	EventType string `json:"eventType"`
	Count     int64  `json:"count"`
}

type RecommendationResp struct {
	ProductID string  `json:"productId"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason,omitempty"`
}

// SummaryResp keeps recommendations as an explicit (possibly empty) array:
// the field must serialize even while no scoring algorithm exists.
type SummaryResp struct {
	UserID          int64                `json:"userId"`
	BehaviorSummary []EventTypeCountResp `json:"behaviorSummary"`
	Recommendations []RecommendationResp `json:"recommendations"`
}
