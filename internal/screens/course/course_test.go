package course

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/learncode/internal/export"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screens/lesson"
	"github.com/abhisek/learncode/internal/screens/screentest"
)

func TestCourseScreen_StartsOnFirstUnfinishedLesson(t *testing.T) {
	env := screentest.NewEnv(t)
	if _, err := env.Service.CompleteLesson(context.Background(), "html", "html-basics", nil); err != nil {
		t.Fatal(err)
	}

	s := New(env, "html")
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	if s.Title() != "HTML Fundamentals" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestCourseScreen_Navigation(t *testing.T) {
	s := New(screentest.NewEnv(t), "javascript")

	s.Update(screentest.Key("down"))
	s.Update(screentest.Key("down"))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1 (clamped)", s.selected)
	}

	_, cmd := s.Update(screentest.Key("enter"))
	msg, ok := screentest.Drain(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	ls, ok := msg.Screen.(*lesson.LessonScreen)
	if !ok {
		t.Fatalf("pushed %T, want *lesson.LessonScreen", msg.Screen)
	}
	if ls.Title() != "Functions and Arrow Functions" {
		t.Errorf("lesson title = %q", ls.Title())
	}
}

func TestCourseScreen_DownloadCheatSheet(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, "css")

	_, cmd := s.Update(screentest.Key("D"))
	msg := screentest.Drain(cmd)
	saved, ok := msg.(cheatSheetSavedMsg)
	if !ok {
		t.Fatalf("expected cheatSheetSavedMsg, got %T", msg)
	}
	if saved.Err != nil {
		t.Fatal(saved.Err)
	}

	want := filepath.Join(env.OutDir, export.CheatSheetFilename("CSS Styling", export.FormatHTML))
	if saved.Path != want {
		t.Errorf("path = %q, want %q", saved.Path, want)
	}
	data, err := os.ReadFile(saved.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<html") {
		t.Error("expected an HTML document")
	}

	s.Update(saved)
	if !strings.HasPrefix(s.status, "Saved ") {
		t.Errorf("status = %q", s.status)
	}
}

func TestCourseScreen_UnknownCourse(t *testing.T) {
	s := New(screentest.NewEnv(t), "cobol")
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("expected an error view")
	}
	if _, cmd := s.Update(screentest.Key("enter")); cmd != nil {
		t.Error("expected no command for an unknown course")
	}
}

func TestCourseScreen_ShowsCertificateHint(t *testing.T) {
	env := screentest.NewEnv(t)
	ctx := context.Background()
	for _, id := range []string{"js-basics", "js-functions"} {
		if _, err := env.Service.CompleteLesson(ctx, "javascript", id, nil); err != nil {
			t.Fatal(err)
		}
	}

	view := New(env, "javascript").View(100, 40)
	if !strings.Contains(view, "Claim your certificate") {
		t.Error("expected certificate hint in view")
	}
}
