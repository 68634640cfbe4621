package certificates

import (
	"context"
	"fmt"
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

type awardedMsg struct {
	CourseID string
	XPGained int
	Err      error
}

type exportedMsg struct {
	Path string
	Err  error
}

// CertificatesScreen lists courses with their certificate status. Eligible
// certificates can be claimed and earned ones downloaded as HTML.
type CertificatesScreen struct {
	env      screen.Env
	courses  []catalog.Course
	selected int
	naming   bool
	input    components.TextInput
	status   string
}

var _ screen.Screen = (*CertificatesScreen)(nil)
var _ screen.KeyHintProvider = (*CertificatesScreen)(nil)
var _ screen.EscHandler = (*CertificatesScreen)(nil)

// New creates a CertificatesScreen.
func New(env screen.Env) *CertificatesScreen {
	return &CertificatesScreen{
		env:     env,
		courses: env.Service.Catalog().Courses(),
	}
}

func (s *CertificatesScreen) Init() tea.Cmd {
	return nil
}

func (s *CertificatesScreen) HandlesEsc() {}

func (s *CertificatesScreen) Title() string {
	return "Certificates"
}

func (s *CertificatesScreen) KeyHints() []layout.KeyHint {
	if s.naming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Download"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Claim / Download"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertificatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case awardedMsg:
		if msg.Err != nil {
			s.status = msg.Err.Error()
		} else {
			s.status = fmt.Sprintf("🏆 Certificate awarded! +%d XP. Press Enter to download it.", msg.XPGained)
		}
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.status = "Download failed: " + msg.Err.Error()
		} else {
			s.status = "Saved " + msg.Path
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.naming {
			switch msg.String() {
			case "esc":
				s.naming = false
				return s, nil
			case "enter":
				s.naming = false
				return s, s.export(s.courses[s.selected].ID, s.input.Value())
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.courses)-1 {
				s.selected++
			}
		case "enter":
			return s, s.activate()
		}
	}
	return s, nil
}

// activate claims an eligible certificate or opens the name prompt for an
// earned one.
func (s *CertificatesScreen) activate() tea.Cmd {
	if len(s.courses) == 0 {
		return nil
	}
	svc := s.env.Service
	id := s.courses[s.selected].ID
	st := svc.State()

	switch {
	case st.HasCertificate(id):
		s.naming = true
		s.input = components.NewTextInput(svc.LearnerName(), svc.LearnerName(), 60)
		return s.input.Init()
	case st.CertificateEligible(id, svc.Catalog()):
		return func() tea.Msg {
			before := svc.State().TotalXP
			after, err := svc.AwardCertificate(context.Background(), id)
			if err != nil {
				return awardedMsg{CourseID: id, Err: err}
			}
			return awardedMsg{CourseID: id, XPGained: after.TotalXP - before}
		}
	default:
		cp := st.CourseProgress(id, svc.Catalog())
		s.status = fmt.Sprintf("Finish all lessons to unlock this certificate (%d/%d done).", cp.Completed, cp.Total)
		return nil
	}
}

func (s *CertificatesScreen) export(courseID, recipient string) tea.Cmd {
	svc := s.env.Service
	dir := s.env.OutDir
	return func() tea.Msg {
		cert, err := svc.Certificate(courseID, recipient)
		if err != nil {
			return exportedMsg{Err: err}
		}
		path, err := export.WriteFile(dir, cert.Filename(), cert.Render)
		return exportedMsg{Path: path, Err: err}
	}
}

func (s *CertificatesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	svc := s.env.Service
	st := svc.State()
	cat := svc.Catalog()

	var b strings.Builder
	b.WriteString(theme.Title.Render("🏆 Certificates"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d earned", len(st.Certificates))))
	b.WriteString("\n\n")

	for i, c := range s.courses {
		var badge string
		switch {
		case st.HasCertificate(c.ID):
			badge = theme.Correct.Render("earned")
		case st.CertificateEligible(c.ID, cat):
			badge = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("ready to claim")
		default:
			cp := st.CourseProgress(c.ID, cat)
			badge = theme.Subtitle.Render(fmt.Sprintf("%d/%d lessons", cp.Completed, cp.Total))
		}

		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", prefix, c.Icon, c.Title)))
		b.WriteString("  ")
		b.WriteString(badge)
		b.WriteString("\n")
	}

	if s.naming {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Name on certificate:"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
	}
	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(cw).Render(s.status))
	}

	return components.Centered(components.Card(b.String(), cw), width, height)
}
