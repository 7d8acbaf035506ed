package domain

import (
	"strings"
	"time"
)

// BehaviorEvent is one discrete user action. Events are append-only: never
// updated or individually deleted, only bulk-removed when the owning user is
// deleted (FK cascade).
type BehaviorEvent struct {
	ID         int64
	UserID     int64
	EventType  string
	Properties Document
	OccurredAt time.Time
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListFilter filters a user's event log. Limit 0 is a valid request for an
// empty result; a negative limit is rejected.
type ListFilter struct {
	EventType string
	Limit     int
}

func (f *ListFilter) Normalize() error {
	f.EventType = strings.TrimSpace(f.EventType)
	if f.Limit < 0 {
		return ErrInvalidField("limit", "must be >= 0")
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	return nil
}

func NewBehaviorEvent(userID int64, eventType string, props Document) (*BehaviorEvent, error) {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return nil, ErrMissingField("event_type")
	}
	if len(eventType) > 80 {
		return nil, ErrInvalidField("event_type", "must be <= 80 chars")
	}
	return &BehaviorEvent{
		UserID:     userID,
		EventType:  eventType,
		Properties: props,
	}, nil
}
