package certificates

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/screens/screentest"
)

func finishHTML(t *testing.T, env screen.Env) {
	t.Helper()
	ctx := context.Background()
	for _, id := range []string{"html-basics", "html-forms"} {
		if _, err := env.Service.CompleteLesson(ctx, "html", id, nil); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCertificatesScreen_NotEligible(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env)

	_, cmd := s.Update(screentest.Key("enter"))
	if cmd != nil {
		t.Error("expected no command for an unfinished course")
	}
	if !strings.Contains(s.status, "0/2 done") {
		t.Errorf("status = %q", s.status)
	}
}

func TestCertificatesScreen_ClaimAndDownload(t *testing.T) {
	env := screentest.NewEnv(t)
	finishHTML(t, env)
	s := New(env)

	_, cmd := s.Update(screentest.Key("enter"))
	awarded, ok := screentest.Drain(cmd).(awardedMsg)
	if !ok {
		t.Fatal("expected awardedMsg")
	}
	if awarded.Err != nil {
		t.Fatal(awarded.Err)
	}
	if awarded.XPGained != 200 {
		t.Errorf("XPGained = %d, want 200", awarded.XPGained)
	}
	s.Update(awarded)
	if !env.Service.State().HasCertificate("html") {
		t.Fatal("certificate not recorded")
	}

	// Enter on an earned certificate prompts for the name.
	s.Update(screentest.Key("enter"))
	if !s.naming {
		t.Fatal("expected name prompt")
	}
	if s.input.Value() != "Test Learner" {
		t.Errorf("prefilled name = %q", s.input.Value())
	}

	_, cmd = s.Update(screentest.Key("enter"))
	if s.naming {
		t.Error("prompt still open after enter")
	}
	exported, ok := screentest.Drain(cmd).(exportedMsg)
	if !ok {
		t.Fatal("expected exportedMsg")
	}
	if exported.Err != nil {
		t.Fatal(exported.Err)
	}

	data, err := os.ReadFile(exported.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Test Learner") || !strings.Contains(string(data), "HTML Fundamentals") {
		t.Error("certificate is missing the recipient or course")
	}
	if !strings.HasSuffix(exported.Path, ".html") {
		t.Errorf("path = %q, want .html", exported.Path)
	}

	s.Update(exported)
	if !strings.HasPrefix(s.status, "Saved ") {
		t.Errorf("status = %q", s.status)
	}
}

func TestCertificatesScreen_EscCancelsPrompt(t *testing.T) {
	env := screentest.NewEnv(t)
	finishHTML(t, env)
	if _, err := env.Service.AwardCertificate(context.Background(), "html"); err != nil {
		t.Fatal(err)
	}
	s := New(env)

	s.Update(screentest.Key("enter"))
	if !s.naming {
		t.Fatal("expected name prompt")
	}
	if _, cmd := s.Update(screentest.Key("esc")); cmd != nil {
		t.Error("esc in the prompt should not leave the screen")
	}
	if s.naming {
		t.Error("prompt still open after esc")
	}

	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := screentest.Drain(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected pop on esc")
	}
}

func TestCertificatesScreen_View(t *testing.T) {
	env := screentest.NewEnv(t)
	finishHTML(t, env)

	view := New(env).View(100, 40)
	for _, want := range []string{"ready to claim", "0/2 lessons", "0 earned"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
