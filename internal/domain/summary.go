package domain

// EventTypeCount is one row of a per-user behavior aggregation.
type EventTypeCount struct {
	EventType string
	Count     int64
}

// BehaviorSummary aggregates a user's event log by type, ordered by count
// descending. Tie order between equal counts is unspecified.
type BehaviorSummary struct {
	UserID int64
	Counts []EventTypeCount
	Total  int64
}

// Recommendation is a deliberate placeholder: no scoring algorithm exists yet,
// so summaries always carry an empty recommendation list.
type Recommendation struct {
	ProductID string
	Score     float64
	Reason    string
}
