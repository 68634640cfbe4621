package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// timeLayout is fixed-width UTC so stored timestamps sort lexicographically
// and their first ten bytes are the calendar day.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// sequenceCounter manages the global monotonic sequence number for journal
// entries. Events keep their own auto-increment IDs, but the shared counter
// survives table rebuilds and gives exports a stable ordering key.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the progress_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var score sql.NullInt64
	if data.Score != nil {
		score = sql.NullInt64{Int64: int64(*data.Score), Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_events
			(sequence, timestamp, kind, course_id, lesson_id, score, xp_delta, total_xp, streak)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, formatTime(time.Now()), data.Kind, data.CourseID, data.LessonID,
		score, data.XPDelta, data.TotalXP, data.Streak,
	)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, formatTime(opts.To))
	}
	if opts.CourseID != "" {
		where = append(where, "course_id = ?")
		args = append(args, opts.CourseID)
	}

	query := `SELECT id, sequence, timestamp, kind, course_id, lesson_id, score, xp_delta, total_xp, streak
		FROM progress_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}
	defer rows.Close()

	var records []ProgressEventRecord
	for rows.Next() {
		var (
			rec   ProgressEventRecord
			ts    string
			score sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Kind, &rec.CourseID, &rec.LessonID,
			&score, &rec.XPDelta, &rec.TotalXP, &rec.Streak); err != nil {
			return nil, fmt.Errorf("scan progress event: %w", err)
		}
		rec.Timestamp, err = parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp %q: %w", ts, err)
		}
		if score.Valid {
			v := int(score.Int64)
			rec.Score = &v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) XPByDay(ctx context.Context, days int) ([]DailyXP, error) {
	query := `SELECT substr(timestamp, 1, 10) AS day, SUM(xp_delta)
		FROM progress_events
		GROUP BY day
		ORDER BY day DESC`
	var args []any
	if days > 0 {
		query += " LIMIT ?"
		args = append(args, days)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query xp by day: %w", err)
	}
	defer rows.Close()

	var result []DailyXP
	for rows.Next() {
		var d DailyXP
		if err := rows.Scan(&d.Day, &d.XP); err != nil {
			return nil, fmt.Errorf("scan xp by day: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate xp by day: %w", err)
	}
	return result, nil
}
