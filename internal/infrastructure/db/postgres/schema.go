package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema idempotently creates the tables and indexes. It must complete
// before the service accepts requests; a failure here is fatal at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"users", createUsersSQL},
		{"behavior_events", createBehaviorEventsSQL},
		{"idx_behavior_events_user_time", createBehaviorEventsIndexSQL},
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			return fmt.Errorf("ensure schema %s: %w", s.name, err)
		}
	}
	return nil
}
