package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int { return &v }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.KV().Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("value = %q, want %q", got, "v")
	}
}

func TestKVGetPut(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	got, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %q", got)
	}

	if err := kv.Put(ctx, "progress", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "progress", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err = kv.Get(ctx, "progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Errorf("value = %q, want overwritten value", got)
	}

}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryProgressEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ProgressEventData{
		{Kind: "complete_lesson", CourseID: "html", LessonID: "html-basics", XPDelta: 50, TotalXP: 50, Streak: 1},
		{Kind: "complete_lesson", CourseID: "html", LessonID: "html-forms", Score: intPtr(80), XPDelta: 50, TotalXP: 100, Streak: 1},
		{Kind: "award_certificate", CourseID: "html", XPDelta: 200, TotalXP: 300, Streak: 1},
		{Kind: "complete_lesson", CourseID: "css", LessonID: "css-basics", XPDelta: 50, TotalXP: 350, Streak: 1},
	}
	for _, e := range events {
		if err := repo.AppendProgressEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryProgressEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d events, want 4", len(all))
	}
	// Newest first.
	if all[0].LessonID != "css-basics" {
		t.Errorf("first event lesson = %q, want css-basics", all[0].LessonID)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence >= all[i-1].Sequence {
			t.Errorf("events not in descending sequence order at %d", i)
		}
	}
	if all[2].Score == nil || *all[2].Score != 80 {
		t.Errorf("score not round-tripped: %v", all[2].Score)
	}
	if all[3].Score != nil {
		t.Errorf("expected nil score, got %d", *all[3].Score)
	}
	if time.Since(all[0].Timestamp) > time.Minute {
		t.Errorf("timestamp %v not recent", all[0].Timestamp)
	}

	html, err := repo.QueryProgressEvents(ctx, QueryOpts{CourseID: "html"})
	if err != nil {
		t.Fatalf("query by course: %v", err)
	}
	if len(html) != 3 {
		t.Errorf("got %d html events, want 3", len(html))
	}

	limited, err := repo.QueryProgressEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit, want 2", len(limited))
	}

	after, err := repo.QueryProgressEvents(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].Sequence != all[0].Sequence {
		t.Errorf("after filter returned %d events", len(after))
	}

	future, err := repo.QueryProgressEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("expected no events in the future, got %d", len(future))
	}
}

func TestXPByDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, xp := range []int{50, 50, 200} {
		if err := repo.AppendProgressEvent(ctx, ProgressEventData{Kind: "complete_lesson", XPDelta: xp}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	days, err := repo.XPByDay(ctx, 7)
	if err != nil {
		t.Fatalf("xp by day: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].XP != 300 {
		t.Errorf("xp = %d, want 300", days[0].XP)
	}
	if days[0].Day != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("day = %q, want today", days[0].Day)
	}
}

func TestTimeFormatRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 8, time.FixedZone("X", 3600))
	s := formatTime(ts)
	if len(s) != len(timeLayout)-len("Z07:00")+1 {
		t.Errorf("formatted time %q is not fixed width", s)
	}
	got, err := parseTime(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(ts) {
		t.Errorf("round trip = %v, want %v", got, ts)
	}
}
