package screen

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learncode/internal/learning"
	"github.com/abhisek/learncode/internal/store"
	"github.com/abhisek/learncode/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is an optional interface for screens that refresh their data
// when a screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// EscHandler marks screens that consume Esc themselves, e.g. to cancel an
// inline prompt before leaving. The app pops every other screen on Esc.
type EscHandler interface {
	HandlesEsc()
}

// Env carries the dependencies every screen may need.
type Env struct {
	Service *learning.Service
	Events  store.EventRepo // nil disables the history screen
	Logger  *slog.Logger
	OutDir  string
}
