package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	events []store.ProgressEventRecord
	daily  []store.DailyXP
	err    error
}

func (m *mockEventRepo) AppendProgressEvent(_ context.Context, _ store.ProgressEventData) error {
	return nil
}
func (m *mockEventRepo) QueryProgressEvents(_ context.Context, opts store.QueryOpts) ([]store.ProgressEventRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if opts.Limit > 0 && len(m.events) > opts.Limit {
		return m.events[:opts.Limit], nil
	}
	return m.events, nil
}
func (m *mockEventRepo) XPByDay(_ context.Context, _ int) ([]store.DailyXP, error) {
	return m.daily, nil
}

func testRepo() *mockEventRepo {
	ts := time.Date(2026, 5, 14, 9, 30, 0, 0, time.UTC)
	score := 90
	return &mockEventRepo{
		events: []store.ProgressEventRecord{
			{ID: 2, Sequence: 2, Timestamp: ts.Add(time.Minute), ProgressEventData: store.ProgressEventData{
				Kind: string(progress.KindAwardCertificate), CourseID: "html", XPDelta: 200, TotalXP: 300, Streak: 1,
			}},
			{ID: 1, Sequence: 1, Timestamp: ts, ProgressEventData: store.ProgressEventData{
				Kind: string(progress.KindCompleteLesson), CourseID: "html", LessonID: "html-basics", Score: &score, XPDelta: 50, TotalXP: 100, Streak: 1,
			}},
		},
		daily: []store.DailyXP{{Day: "2026-05-14", XP: 250}},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg := s.Init()()
	s.Update(msg)
	if !s.loaded {
		t.Fatal("expected loaded state")
	}
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(testRepo())
	if s.Title() != "History" {
		t.Errorf("Title = %q, want %q", s.Title(), "History")
	}
}

func TestHistoryScreen_Loading(t *testing.T) {
	s := New(testRepo())
	if !strings.Contains(s.View(100, 30), "Loading history") {
		t.Error("expected loading view before Init completes")
	}
}

func TestHistoryScreen_ShowsEvents(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	view := s.View(120, 30)
	for _, want := range []string{"Earned certificate", "Completed lesson", "html/html-basics", "+200 XP", "05-14", "250XP"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_ExpandDetails(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[1] {
		t.Fatal("expected second entry expanded")
	}
	if !strings.Contains(s.View(120, 30), "score 90%") {
		t.Error("expected score in expanded details")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&mockEventRepo{})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No activity yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&mockEventRepo{err: errors.New("db locked")})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected error in view")
	}
}

func TestHistoryScreen_Esc(t *testing.T) {
	s := New(testRepo())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
