package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/grading"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

type quizGradedMsg struct {
	Result   grading.QuizResult
	XPGained int
	Err      error
}

// QuizScreen walks through a lesson's quiz one question at a time. The
// graded score completes the lesson.
type QuizScreen struct {
	env       screen.Env
	courseID  string
	lessonID  string
	questions []catalog.QuizQuestion
	current   int
	mc        components.MultiChoice
	answers   []int
	feedback  bool
	pending   bool
	result    *grading.QuizResult
	xpGained  int
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a lesson.
func New(env screen.Env, courseID, lessonID string) *QuizScreen {
	s := &QuizScreen{env: env, courseID: courseID, lessonID: lessonID}
	l, _, err := env.Service.Lesson(courseID, lessonID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	if !l.HasQuiz() {
		s.errMsg = "this lesson has no quiz"
		return s
	}
	s.questions = l.Quiz
	s.mc = newChoice(s.questions[0])
	return s
}

func newChoice(q catalog.QuizQuestion) components.MultiChoice {
	return components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.result != nil || s.errMsg != "":
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	case s.feedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizGradedMsg:
		s.pending = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = &msg.Result
		s.xpGained = msg.XPGained
		return s, nil

	case tea.KeyPressMsg:
		if s.result != nil || s.errMsg != "" {
			if k := msg.String(); k == "enter" || k == "esc" {
				return s, router.Pop
			}
			return s, nil
		}
		if s.pending {
			return s, nil
		}
		if s.feedback {
			if msg.String() != "enter" {
				return s, nil
			}
			s.feedback = false
			s.current++
			if s.current >= len(s.questions) {
				s.pending = true
				return s, s.submit()
			}
			s.mc = newChoice(s.questions[s.current])
			return s, nil
		}

		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			s.answers = append(s.answers, s.mc.ChosenIndex)
			s.feedback = true
		}
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit() tea.Cmd {
	svc := s.env.Service
	courseID, lessonID := s.courseID, s.lessonID
	answers := append([]int(nil), s.answers...)
	return func() tea.Msg {
		before := svc.State().TotalXP
		res, err := svc.SubmitQuiz(context.Background(), courseID, lessonID, answers)
		if err != nil {
			return quizGradedMsg{Err: err}
		}
		return quizGradedMsg{Result: res, XPGained: svc.State().TotalXP - before}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Message("Error: "+s.errMsg, width, true)
	}
	cw := components.ContentWidth(width)

	if s.result != nil {
		return components.Centered(components.Card(s.renderResult(), cw), width, height)
	}
	if s.pending {
		return components.Message("Grading...", width, false)
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.current+1, len(s.questions))))
	b.WriteString("\n\n")
	b.WriteString(s.mc.View())

	if s.feedback {
		q := s.questions[s.current]
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(theme.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(theme.Body.Width(cw - 4).Render(q.Explanation))
		}
	}

	return components.Centered(components.Card(b.String(), cw), width, height)
}

func (s *QuizScreen) renderResult() string {
	r := s.result
	var b strings.Builder

	headline := "Quiz complete"
	style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if r.Score == 100 {
		headline = "🎉 Perfect score!"
		style = theme.Correct
	}
	b.WriteString(style.Render(headline))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You answered %d of %d correctly (%d%%).", r.Correct, r.Total, r.Score)))
	b.WriteString("\n")
	for i, ok := range r.Answers {
		mark := theme.Correct.Render("✓")
		if !ok {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("\n%s Question %d", mark, i+1))
	}
	if s.xpGained > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("+%d XP · lesson complete", s.xpGained)))
	}
	return b.String()
}
