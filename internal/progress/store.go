package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/learncode/internal/store"
)

// PersistFunc writes a full state snapshot. It is called once per dispatched
// action with the state that action produced.
type PersistFunc func(ctx context.Context, s State) error

// Journal records applied actions. store.EventRepo satisfies it.
type Journal interface {
	AppendProgressEvent(ctx context.Context, data store.ProgressEventData) error
}

// Store owns the learner's progress state. All transitions go through
// Dispatch, which runs the reducer, persists the snapshot, and journals the
// action. Persistence and journal failures are logged and swallowed; the
// in-memory state stays authoritative.
type Store struct {
	mu      sync.Mutex
	state   State
	now     func() time.Time
	persist PersistFunc
	journal Journal
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for "today" and completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPersist sets the callback invoked after every transition.
func WithPersist(fn PersistFunc) Option {
	return func(s *Store) { s.persist = fn }
}

// WithJournal records every dispatched action in j.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// WithLogger sets the logger for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a Store holding initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state:  normalize(initial.Clone()),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := normalize(Reduce(prev, a, s.now()))
	s.state = next

	if s.persist != nil {
		if err := s.persist(ctx, next.Clone()); err != nil {
			s.logger.Warn("failed to persist progress", "action", a.Kind(), "error", err)
		}
	}

	if s.journal != nil {
		if err := s.journal.AppendProgressEvent(ctx, eventData(prev, next, a)); err != nil {
			s.logger.Warn("failed to journal progress action", "action", a.Kind(), "error", err)
		}
	}

	return next.Clone()
}

// CompleteLesson marks a lesson complete. score may be nil.
func (s *Store) CompleteLesson(ctx context.Context, courseID, lessonID string, score *int) State {
	return s.Dispatch(ctx, CompleteLesson{CourseID: courseID, LessonID: lessonID, Score: score})
}

// AwardCertificate grants the certificate for courseID.
func (s *Store) AwardCertificate(ctx context.Context, courseID string) State {
	return s.Dispatch(ctx, AwardCertificate{CourseID: courseID})
}

// LoadProgress replaces the state with snapshot.
func (s *Store) LoadProgress(ctx context.Context, snapshot State) State {
	return s.Dispatch(ctx, LoadProgress{Snapshot: snapshot})
}

// UpdateStreak records a study day.
func (s *Store) UpdateStreak(ctx context.Context) State {
	return s.Dispatch(ctx, UpdateStreak{})
}

// Reset returns the store to the empty initial state and persists it.
func (s *Store) Reset(ctx context.Context) State {
	return s.LoadProgress(ctx, NewState())
}

func eventData(prev, next State, a Action) store.ProgressEventData {
	data := store.ProgressEventData{
		Kind:    string(a.Kind()),
		XPDelta: next.TotalXP - prev.TotalXP,
		TotalXP: next.TotalXP,
		Streak:  next.Streak,
	}
	switch a := a.(type) {
	case CompleteLesson:
		data.CourseID = a.CourseID
		data.LessonID = a.LessonID
		data.Score = a.Score
	case AwardCertificate:
		data.CourseID = a.CourseID
	}
	return data
}

// normalize replaces nil slices so the JSON form always carries arrays.
func normalize(s State) State {
	if s.Progress == nil {
		s.Progress = []Record{}
	}
	if s.Certificates == nil {
		s.Certificates = []string{}
	}
	return s
}
