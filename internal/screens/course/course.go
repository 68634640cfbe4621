package course

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
	"github.com/abhisek/learncode/internal/screens/lesson"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

type cheatSheetSavedMsg struct {
	Path string
	Err  error
}

// CourseScreen lists a course's lessons with completion marks.
type CourseScreen struct {
	env      screen.Env
	course   *catalog.Course
	selected int
	status   string
	errMsg   string
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.Resumer = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates a CourseScreen for courseID.
func New(env screen.Env, courseID string) *CourseScreen {
	s := &CourseScreen{env: env}
	c, err := env.Service.Course(courseID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.course = c
	// Start on the first unfinished lesson.
	st := env.Service.State()
	for i, l := range c.Lessons {
		if !st.IsCompleted(c.ID, l.ID) {
			s.selected = i
			break
		}
	}
	return s
}

func (s *CourseScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseScreen) Resume() tea.Cmd {
	s.status = ""
	return nil
}

func (s *CourseScreen) Title() string {
	if s.course == nil {
		return "Course"
	}
	return s.course.Title
}

func (s *CourseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open lesson"},
		{Key: "d", Description: "Cheat sheet (.md)"},
		{Key: "D", Description: "Cheat sheet (.html)"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cheatSheetSavedMsg:
		if msg.Err != nil {
			s.status = "Download failed: " + msg.Err.Error()
		} else {
			s.status = "Saved " + msg.Path
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.course == nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.course.Lessons)-1 {
				s.selected++
			}
		case "enter":
			if len(s.course.Lessons) > 0 {
				l := s.course.Lessons[s.selected]
				return s, router.Push(lesson.New(s.env, s.course.ID, l.ID))
			}
		case "d":
			return s, s.saveCheatSheet(export.FormatMarkdown)
		case "D":
			return s, s.saveCheatSheet(export.FormatHTML)
		}
	}
	return s, nil
}

func (s *CourseScreen) saveCheatSheet(f export.Format) tea.Cmd {
	c := *s.course
	dir := s.env.OutDir
	return func() tea.Msg {
		doc := export.CheatSheet(c, f)
		path, err := export.WriteFile(dir, doc.Filename, func(w io.Writer) error {
			return doc.Write(w, f)
		})
		return cheatSheetSavedMsg{Path: path, Err: err}
	}
}

func (s *CourseScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Message("Error: "+s.errMsg, width, true)
	}

	cw := components.ContentWidth(width)
	c := s.course
	st := s.env.Service.State()
	cp := st.CourseProgress(c.ID, s.env.Service.Catalog())

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s %s", c.Icon, c.Title)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s",
		c.Difficulty, c.EstimatedTime, catalog.TrackDisplayName(c.Track))))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw).Render(c.Description))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar(fmt.Sprintf("%d/%d", cp.Completed, cp.Total), cp.Percentage, true, cw).View())
	b.WriteString("\n\n")

	for i, l := range c.Lessons {
		mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		if rec, ok := st.LessonProgress(c.ID, l.ID); ok && rec.Completed {
			mark = theme.Correct.Render("✓")
			if rec.Score != nil {
				mark += theme.Subtitle.Render(fmt.Sprintf(" %d%%", *rec.Score))
			}
		}

		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", prefix, i+1, l.Title)))
		b.WriteString("  ")
		b.WriteString(mark)
		b.WriteString("\n")
	}

	if st.HasCertificate(c.ID) {
		b.WriteString("\n" + theme.Correct.Render("🏆 Certificate earned"))
	} else if st.CertificateEligible(c.ID, s.env.Service.Catalog()) {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("🏆 Course complete! Claim your certificate from the home screen."))
	}
	if s.status != "" {
		b.WriteString("\n\n" + theme.Hint.Render(s.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
