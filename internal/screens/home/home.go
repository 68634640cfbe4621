package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/screens/certificates"
	"github.com/abhisek/learncode/internal/screens/course"
	"github.com/abhisek/learncode/internal/screens/history"
	"github.com/abhisek/learncode/internal/screens/resources"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

// HomeScreen is the dashboard: learner stats plus the course menu.
type HomeScreen struct {
	env     screen.Env
	menu    components.Menu
	summary progress.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(env screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.refresh()
	return h
}

// refresh recomputes stats and menu details, keeping the selection.
func (h *HomeScreen) refresh() {
	svc := h.env.Service
	cat := svc.Catalog()
	st := svc.State()
	h.summary = svc.Summary()

	var items []components.MenuItem
	for _, c := range cat.Courses() {
		id := c.ID
		cp := st.CourseProgress(id, cat)
		detail := fmt.Sprintf("%d/%d", cp.Completed, cp.Total)
		if st.HasCertificate(id) {
			detail += " 🏆"
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %s", c.Icon, c.Title),
			Detail: detail,
			Action: func() tea.Cmd { return router.Push(course.New(h.env, id)) },
		})
	}

	certDetail := ""
	if n := len(svc.EligibleCourses()); n > 0 {
		certDetail = fmt.Sprintf("%d ready", n)
	}
	items = append(items,
		components.MenuItem{
			Label:  "Certificates",
			Detail: certDetail,
			Action: func() tea.Cmd { return router.Push(certificates.New(h.env)) },
		},
		components.MenuItem{
			Label:  "Resources",
			Action: func() tea.Cmd { return router.Push(resources.New(h.env)) },
		},
		components.MenuItem{
			Label:    "History",
			Disabled: h.env.Events == nil,
			Action:   func() tea.Cmd { return router.Push(history.New(h.env.Events)) },
		},
		components.MenuItem{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to judge
	// the terminal size.
	compact := layout.IsCompactHeight(height + 6)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStats(h.summary, cw),
		components.Card(h.menu.View(cw-4), cw),
	}

	if recent := h.env.Service.State().RecentActivity(1); len(recent) > 0 && !compact {
		r := recent[0]
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Last completed: %s / %s", r.CourseID, r.LessonID)))
	}

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
