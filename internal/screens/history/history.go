package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/store"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

// pageSize bounds how many journal entries the screen loads.
const pageSize = 100

type historyLoadedMsg struct {
	Events []store.ProgressEventRecord
	Daily  []store.DailyXP
	Err    error
}

// HistoryScreen displays the progress journal, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.ProgressEventRecord
	daily     []store.DailyXP
	selected  int
	offset    int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := s.eventRepo.QueryProgressEvents(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		daily, err := s.eventRepo.XPByDay(ctx, 7)
		if err != nil {
			return historyLoadedMsg{Events: events}
		}
		return historyLoadedMsg{Events: events, Daily: daily}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
			s.daily = msg.Daily
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No activity yet. Complete a lesson to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(s.daily) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderDaily(s.daily)))
		b.WriteString("\n\n")
	}

	for i, ev := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-18s %s  %+d XP",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04"), describe(ev.Kind), target(ev), ev.XPDelta)

		style := lipgloss.NewStyle().Foreground(kindColor(ev.Kind))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    total %d XP · streak %d", ev.TotalXP, ev.Streak)
			if ev.Score != nil {
				detail += fmt.Sprintf(" · score %d%%", *ev.Score)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	// Keep the selection on screen.
	lines := strings.Count(b.String(), "\n")
	if lines > height && height > 0 {
		if s.selected < s.offset {
			s.offset = s.selected
		} else if s.selected >= s.offset+height-4 {
			s.offset = s.selected - height + 5
		}
	} else {
		s.offset = 0
	}
	window, _ := layout.Scroll(b.String(), s.offset, height)
	return window
}

// renderDaily renders a compact XP-per-day strip, oldest first.
func renderDaily(daily []store.DailyXP) string {
	parts := make([]string, 0, len(daily))
	for i := len(daily) - 1; i >= 0; i-- {
		d := daily[i]
		day := d.Day
		if len(day) == len("2006-01-02") {
			day = day[5:]
		}
		parts = append(parts, fmt.Sprintf("%s %s", day,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%dXP", d.XP))))
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "  "))
}

func describe(kind string) string {
	switch progress.Kind(kind) {
	case progress.KindCompleteLesson:
		return "Completed lesson"
	case progress.KindAwardCertificate:
		return "Earned certificate"
	case progress.KindUpdateStreak:
		return "Checked in"
	case progress.KindLoadProgress:
		return "Loaded progress"
	default:
		return kind
	}
}

func target(ev store.ProgressEventRecord) string {
	switch {
	case ev.LessonID != "":
		return ev.CourseID + "/" + ev.LessonID
	case ev.CourseID != "":
		return ev.CourseID
	default:
		return "-"
	}
}

func kindColor(kind string) color.Color {
	switch progress.Kind(kind) {
	case progress.KindCompleteLesson:
		return theme.Text
	case progress.KindAwardCertificate:
		return theme.Accent
	case progress.KindUpdateStreak:
		return theme.Secondary
	case progress.KindLoadProgress:
		return theme.TextDim
	default:
		return theme.Text
	}
}
