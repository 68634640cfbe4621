package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/screens/editor"
	"github.com/abhisek/learncode/internal/screens/quiz"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

type lessonCompletedMsg struct {
	XPGained int
	Err      error
}

// LessonScreen shows a lesson's content, example, and exercise.
type LessonScreen struct {
	env          screen.Env
	courseID     string
	lesson       *catalog.Lesson
	index        int
	total        int
	offset       int
	showSolution bool
	status       string
	errMsg       string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.Resumer = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen.
func New(env screen.Env, courseID, lessonID string) *LessonScreen {
	s := &LessonScreen{env: env, courseID: courseID}
	l, idx, err := env.Service.Lesson(courseID, lessonID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.lesson = l
	s.index = idx
	s.total = env.Service.Catalog().LessonCount(courseID)
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Resume() tea.Cmd {
	if s.lesson != nil && s.env.Service.State().IsCompleted(s.courseID, s.lesson.ID) && s.status == "" {
		s.status = "✓ Lesson complete"
	}
	return nil
}

func (s *LessonScreen) Title() string {
	if s.lesson == nil {
		return "Lesson"
	}
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "c", Description: "Complete"},
	}
	if s.lesson != nil && s.lesson.HasQuiz() {
		hints = append(hints, layout.KeyHint{Key: "q", Description: "Quiz"})
	}
	if s.lesson != nil && s.lesson.Exercise != nil {
		hints = append(hints,
			layout.KeyHint{Key: "e", Description: "Code"},
			layout.KeyHint{Key: "s", Description: "Solution"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "n/p", Description: "Next/Prev"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonCompletedMsg:
		if msg.Err != nil {
			s.status = "Could not complete lesson: " + msg.Err.Error()
		} else if msg.XPGained > 0 {
			s.status = fmt.Sprintf("✓ Lesson complete! +%d XP", msg.XPGained)
		} else {
			s.status = "✓ Lesson complete"
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.lesson == nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.offset--
		case "down", "j":
			s.offset++
		case "pgup":
			s.offset -= 10
		case "pgdown", "space":
			s.offset += 10
		case "c":
			return s, s.complete()
		case "q":
			if s.lesson.HasQuiz() {
				return s, router.Push(quiz.New(s.env, s.courseID, s.lesson.ID))
			}
		case "e":
			if s.lesson.Exercise != nil {
				return s, router.Push(editor.New(s.env, s.courseID, s.lesson.ID))
			}
		case "s":
			if s.lesson.Exercise != nil {
				s.showSolution = !s.showSolution
			}
		case "n", "p":
			prev, next := s.env.Service.Catalog().Neighbors(s.courseID, s.lesson.ID)
			target := next
			if msg.String() == "p" {
				target = prev
			}
			if target != nil {
				to := New(s.env, s.courseID, target.ID)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: to} }
			}
		}
		if s.offset < 0 {
			s.offset = 0
		}
	}
	return s, nil
}

func (s *LessonScreen) complete() tea.Cmd {
	svc := s.env.Service
	courseID, lessonID := s.courseID, s.lesson.ID
	return func() tea.Msg {
		before := svc.State().TotalXP
		st, err := svc.CompleteLesson(context.Background(), courseID, lessonID, nil)
		if err != nil {
			return lessonCompletedMsg{Err: err}
		}
		return lessonCompletedMsg{XPGained: st.TotalXP - before}
	}
}

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Message("Error: "+s.errMsg, width, true)
	}

	cw := components.ContentWidth(width)
	body := s.renderBody(cw)

	header := theme.Title.Render(s.lesson.Title) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("Lesson %d of %d", s.index+1, s.total))
	if rec, ok := s.env.Service.State().LessonProgress(s.courseID, s.lesson.ID); ok && rec.Completed {
		header += "  " + theme.Correct.Render("✓")
	}

	footer := ""
	if s.status != "" {
		footer = "\n" + theme.Hint.Render(s.status)
	}

	// Header line, blank line, optional status line, padding.
	avail := height - 4 - lipgloss.Height(footer)
	window, off := layout.Scroll(body, s.offset, avail)
	s.offset = off

	return lipgloss.NewStyle().Padding(1, 2).Render(header + "\n\n" + window + footer)
}

func (s *LessonScreen) renderBody(cw int) string {
	l := s.lesson
	var b strings.Builder

	b.WriteString(theme.Body.Width(cw).Render(strings.TrimSpace(l.Content)))

	if l.CodeExample != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Example"))
		b.WriteString("\n")
		b.WriteString(theme.CodeBlock.Width(cw).Render(l.CodeExample))
	}

	if ex := l.Exercise; ex != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Exercise"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw).Render(ex.Instructions))
		for _, t := range ex.Tests {
			b.WriteString("\n  • " + t)
		}
		if s.showSolution {
			b.WriteString("\n\n")
			b.WriteString(theme.Subtitle.Render("Solution"))
			b.WriteString("\n")
			b.WriteString(theme.CodeBlock.Width(cw).Render(ex.Solution))
		}
	}

	if l.HasQuiz() {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Quiz: %d question(s). Press q to start.", len(l.Quiz))))
	}

	return b.String()
}
