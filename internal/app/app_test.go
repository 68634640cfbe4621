package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learncode/internal/screens/screentest"
)

func testModel(t *testing.T) AppModel {
	env := screentest.NewEnv(t)
	m := newAppModel(Options{Service: env.Service, Logger: env.Logger, OutDir: env.OutDir})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

// send delivers msg and then every message produced by the resulting command.
func send(m AppModel, msg tea.Msg) AppModel {
	for msg != nil {
		updated, cmd := m.Update(msg)
		m = updated.(AppModel)
		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return m
}

func TestAppModel_NavigateAndBack(t *testing.T) {
	m := testModel(t)
	if m.router.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", m.router.Depth())
	}

	m = send(m, screentest.Key("enter"))
	if m.router.Depth() != 2 {
		t.Fatalf("Depth after enter = %d, want 2", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != "HTML Fundamentals" {
		t.Errorf("active = %q", got)
	}

	m = send(m, screentest.Key("esc"))
	if m.router.Depth() != 1 {
		t.Errorf("Depth after esc = %d, want 1", m.router.Depth())
	}

	// Esc on the home screen stays put.
	m = send(m, screentest.Key("esc"))
	if m.router.Depth() != 1 {
		t.Errorf("Depth after esc at home = %d, want 1", m.router.Depth())
	}
}

func TestAppModel_EscHandlerScreensKeepEsc(t *testing.T) {
	m := testModel(t)

	// Certificates follows the four courses in the home menu.
	for i := 0; i < 4; i++ {
		m = send(m, screentest.Key("down"))
	}
	m = send(m, screentest.Key("enter"))
	if got := m.router.Active().Title(); got != "Certificates" {
		t.Fatalf("active = %q, want Certificates", got)
	}

	// The screen pops itself when no prompt is open.
	m = send(m, screentest.Key("esc"))
	if m.router.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", m.router.Depth())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppModel_View(t *testing.T) {
	m := testModel(t)
	_ = m.View()

	small, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	_ = small.(AppModel).View()
}
