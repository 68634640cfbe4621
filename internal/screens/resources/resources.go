package resources

import (
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/export"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

type savedMsg struct {
	Path string
	Err  error
}

// ResourcesScreen lists reference documents and downloads them.
type ResourcesScreen struct {
	env       screen.Env
	resources []catalog.Resource
	selected  int
	status    string
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates a ResourcesScreen.
func New(env screen.Env) *ResourcesScreen {
	return &ResourcesScreen{
		env:       env,
		resources: env.Service.Catalog().Resources(),
	}
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return nil
}

func (s *ResourcesScreen) Title() string {
	return "Resources"
}

func (s *ResourcesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Download .md"},
		{Key: "h", Description: "Download .html"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.status = "Download failed: " + msg.Err.Error()
		} else {
			s.status = "Saved " + msg.Path
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.resources)-1 {
				s.selected++
			}
		case "enter":
			return s, s.save(export.FormatMarkdown)
		case "h":
			return s, s.save(export.FormatHTML)
		}
	}
	return s, nil
}

func (s *ResourcesScreen) save(f export.Format) tea.Cmd {
	if len(s.resources) == 0 {
		return nil
	}
	r := s.resources[s.selected]
	dir := s.env.OutDir
	return func() tea.Msg {
		doc := export.ResourceDocument(r, f)
		path, err := export.WriteFile(dir, doc.Filename, func(w io.Writer) error {
			return doc.Write(w, f)
		})
		return savedMsg{Path: path, Err: err}
	}
}

func (s *ResourcesScreen) View(width, height int) string {
	if len(s.resources) == 0 {
		return components.Message("No resources in this catalog.", width, false)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("📚 Resources"))
	b.WriteString("\n\n")
	for i, r := range s.resources {
		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + r.Title))
		b.WriteString("  ")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("[%s]", r.Category)))
		b.WriteString("\n")
	}

	sel := s.resources[s.selected]
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(sel.Description))
	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(cw - 4).Render(s.status))
	}

	return components.Centered(components.Card(b.String(), cw), width, height)
}
