// Package screentest builds screen environments and key events for tests.
package screentest

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/learning"
	"github.com/abhisek/learncode/internal/logging"
	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/runner"
	"github.com/abhisek/learncode/internal/screen"
)

// Now is the fixed clock used by test environments.
var Now = time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

// NewEnv returns an Env over the built-in catalog with in-memory progress,
// the JavaScript and markup runners, and a temp output directory.
func NewEnv(t *testing.T) screen.Env {
	t.Helper()

	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("load built-in catalog: %v", err)
	}

	reg := runner.NewRegistry()
	reg.Register(catalog.TrackJavaScript, runner.NewJavaScript())
	reg.Register(catalog.TrackMarkup, runner.NewMarkup())

	clock := func() time.Time { return Now }
	svc := learning.NewService(learning.Options{
		Catalog:     cat,
		Progress:    progress.NewStore(progress.NewState(), progress.WithClock(clock)),
		Runners:     reg,
		LearnerName: "Test Learner",
		Clock:       clock,
	})

	return screen.Env{
		Service: svc,
		Logger:  logging.Discard(),
		OutDir:  t.TempDir(),
	}
}

// Key returns a key press for a named key ("enter", "esc", "up", "down",
// "ctrl+r") or a single printable character.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	if len(name) == len("ctrl+x") && name[:5] == "ctrl+" {
		return tea.KeyPressMsg{Code: rune(name[5]), Mod: tea.ModCtrl}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

// Drain runs cmd and returns its message, or nil for a nil command.
func Drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
