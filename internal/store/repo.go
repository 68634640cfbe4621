package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	CourseID string    // exact match when set
}

// KVRepo is a string-keyed value store holding whole snapshots.
type KVRepo interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the value for key.
	Put(ctx context.Context, key string, value []byte) error
}

// ProgressEventData captures one applied progress action.
type ProgressEventData struct {
	Kind     string
	CourseID string
	LessonID string
	Score    *int
	XPDelta  int
	TotalXP  int
	Streak   int
}

// ProgressEventRecord is a stored ProgressEventData with its ordering fields.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// DailyXP is the XP earned on one calendar day (UTC).
type DailyXP struct {
	Day string
	XP  int
}

// EventRepo provides append and query access to the action journal.
type EventRepo interface {
	// AppendProgressEvent records an applied progress action.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns events newest first.
	QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error)

	// XPByDay sums XP deltas per day for the most recent days with activity.
	XPByDay(ctx context.Context, days int) ([]DailyXP, error)
}
