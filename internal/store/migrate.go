package store

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order on every Open. Each statement must be
// idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS progress_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL UNIQUE,
		timestamp  TEXT NOT NULL,
		kind       TEXT NOT NULL,
		course_id  TEXT NOT NULL DEFAULT '',
		lesson_id  TEXT NOT NULL DEFAULT '',
		score      INTEGER,
		xp_delta   INTEGER NOT NULL DEFAULT 0,
		total_xp   INTEGER NOT NULL DEFAULT 0,
		streak     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_events_timestamp ON progress_events (timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_events_course ON progress_events (course_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
