package editor

import (
	"context"
	"io"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/export"
	"github.com/abhisek/learncode/internal/grading"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/runner"
	"github.com/abhisek/learncode/internal/screen"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/layout"
	"github.com/abhisek/learncode/internal/ui/theme"
)

// PreviewFilename is where HTML and CSS previews are written.
const PreviewFilename = "learncode-preview.html"

type ranMsg struct {
	Output string
	Err    error
}

type checkedMsg struct {
	Passed bool
	Err    error
}

// EditorScreen lets the learner edit exercise code, run it, and check it
// against the reference solution.
type EditorScreen struct {
	env      screen.Env
	courseID string
	lesson   *catalog.Lesson
	track    catalog.Track
	area     textarea.Model
	output   string
	feedback string
	passed   bool
	running  bool
	errMsg   string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an EditorScreen seeded with the exercise starter code.
func New(env screen.Env, courseID, lessonID string) *EditorScreen {
	s := &EditorScreen{env: env, courseID: courseID}

	c, err := env.Service.Course(courseID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	l, _, err := env.Service.Lesson(courseID, lessonID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	if l.Exercise == nil {
		s.errMsg = "this lesson has no exercise"
		return s
	}
	s.lesson = l
	s.track = c.Track

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetValue(l.Exercise.StarterCode)
	s.area = ta
	return s
}

func (s *EditorScreen) Init() tea.Cmd {
	if s.lesson == nil {
		return nil
	}
	return s.area.Focus()
}

func (s *EditorScreen) Title() string {
	if s.lesson == nil {
		return "Editor"
	}
	return s.lesson.Title + " · Exercise"
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	run := "Run"
	if s.track == catalog.TrackMarkup {
		run = "Preview"
	}
	return []layout.KeyHint{
		{Key: "Ctrl+R", Description: run},
		{Key: "Ctrl+T", Description: "Check solution"},
		{Key: "Ctrl+U", Description: "Reset code"},
		{Key: "Esc", Description: "Back"},
	}
}

// Source returns the code currently in the editor.
func (s *EditorScreen) Source() string {
	return s.area.Value()
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ranMsg:
		s.running = false
		s.output = runner.Output(msg.Output, msg.Err)
		return s, nil

	case checkedMsg:
		if msg.Err != nil {
			s.feedback = "Error: " + msg.Err.Error()
			return s, nil
		}
		s.passed = msg.Passed
		s.feedback = grading.Feedback(msg.Passed)
		return s, nil

	case tea.KeyPressMsg:
		if s.lesson == nil {
			if msg.String() == "esc" {
				return s, router.Pop
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "ctrl+r":
			if s.running {
				return s, nil
			}
			s.running = true
			s.output = ""
			return s, s.run()
		case "ctrl+t":
			return s, s.check()
		case "ctrl+u":
			s.area.SetValue(s.lesson.Exercise.StarterCode)
			s.feedback = ""
			return s, nil
		}
	}

	if s.lesson == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	return s, cmd
}

func (s *EditorScreen) run() tea.Cmd {
	svc := s.env.Service
	courseID, source, track, dir := s.courseID, s.Source(), s.track, s.env.OutDir
	return func() tea.Msg {
		ctx := context.Background()
		if track == catalog.TrackMarkup {
			path, err := export.WriteFile(dir, PreviewFilename, func(w io.Writer) error {
				_, err := io.WriteString(w, runner.Preview(source))
				return err
			})
			if err != nil {
				return ranMsg{Err: err}
			}
			return ranMsg{Output: "Preview written to " + path}
		}

		out, err := svc.Run(ctx, courseID, source)
		if err != nil {
			return ranMsg{Err: err}
		}
		return ranMsg{Output: out}
	}
}

func (s *EditorScreen) check() tea.Cmd {
	svc := s.env.Service
	courseID, lessonID, source := s.courseID, s.lesson.ID, s.Source()
	return func() tea.Msg {
		passed, err := svc.CheckSolution(context.Background(), courseID, lessonID, source)
		return checkedMsg{Passed: passed, Err: err}
	}
}

func (s *EditorScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Message("Error: "+s.errMsg, width, true)
	}

	cw := width - 6
	instructions := theme.Body.Width(cw).Render(s.lesson.Exercise.Instructions)

	outHeight := 6
	editorHeight := height - lipgloss.Height(instructions) - outHeight - 6
	if editorHeight < 3 {
		editorHeight = 3
	}
	s.area.SetWidth(cw)
	s.area.SetHeight(editorHeight)

	status := s.runnerStatus()
	out := s.output
	if s.running {
		out = "Running..."
	}
	if s.feedback != "" {
		style := theme.Incorrect
		if s.passed {
			style = theme.Correct
		}
		out = strings.TrimSpace(out + "\n" + style.Render(s.feedback))
	}
	outLines, _ := layout.Scroll(out, len(strings.Split(out, "\n")), outHeight-2)

	outputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Height(outHeight - 2).
		Render(outLines)

	return lipgloss.NewStyle().Padding(0, 2).Render(
		instructions + "\n\n" +
			s.area.View() + "\n" +
			theme.Subtitle.Render("Output "+status) + "\n" +
			outputBox)
}

func (s *EditorScreen) runnerStatus() string {
	if s.track == catalog.TrackMarkup {
		return ""
	}
	switch s.env.Service.RunnerStatus(s.courseID) {
	case runner.StatusLoading:
		return "(runtime loading...)"
	case runner.StatusUnavailable:
		return "(runtime unavailable)"
	}
	return ""
}
