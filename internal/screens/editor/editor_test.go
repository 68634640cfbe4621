package editor

import (
	"os"
	"strings"
	"testing"

	"github.com/abhisek/learncode/internal/grading"
	"github.com/abhisek/learncode/internal/router"
	"github.com/abhisek/learncode/internal/runner"
	"github.com/abhisek/learncode/internal/screens/screentest"
)

func TestEditorScreen_SeededWithStarterCode(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, "javascript", "js-functions")

	l, _, err := env.Service.Lesson("javascript", "js-functions")
	if err != nil {
		t.Fatal(err)
	}
	if s.Source() != l.Exercise.StarterCode {
		t.Errorf("Source = %q, want starter code", s.Source())
	}
}

func TestEditorScreen_RunJavaScript(t *testing.T) {
	s := New(screentest.NewEnv(t), "javascript", "js-basics")
	s.area.SetValue(`console.log("sum", 1 + 1)`)

	_, cmd := s.Update(screentest.Key("ctrl+r"))
	if !s.running {
		t.Error("expected running state")
	}
	msg, ok := screentest.Drain(cmd).(ranMsg)
	if !ok {
		t.Fatal("expected ranMsg")
	}
	s.Update(msg)

	if s.running {
		t.Error("running not cleared")
	}
	if s.output != "sum 2\n" {
		t.Errorf("output = %q, want %q", s.output, "sum 2\n")
	}
}

func TestEditorScreen_RunWithoutOutput(t *testing.T) {
	s := New(screentest.NewEnv(t), "javascript", "js-basics")
	s.area.SetValue(`const x = 1;`)

	_, cmd := s.Update(screentest.Key("ctrl+r"))
	s.Update(screentest.Drain(cmd))
	if s.output != runner.NoOutputMessage {
		t.Errorf("output = %q", s.output)
	}
}

func TestEditorScreen_MarkupPreview(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, "css", "css-basics")
	s.area.SetValue("body { color: red; }")

	_, cmd := s.Update(screentest.Key("ctrl+r"))
	s.Update(screentest.Drain(cmd))

	if !strings.HasPrefix(s.output, "Preview written to ") {
		t.Fatalf("output = %q", s.output)
	}
	data, err := os.ReadFile(strings.TrimPrefix(s.output, "Preview written to "))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "body { color: red; }") {
		t.Error("preview does not contain the stylesheet")
	}
}

func TestEditorScreen_CheckSolution(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, "javascript", "js-functions")

	_, cmd := s.Update(screentest.Key("ctrl+t"))
	s.Update(screentest.Drain(cmd))
	if s.passed || s.feedback != grading.FailMessage {
		t.Errorf("starter code passed: feedback = %q", s.feedback)
	}
	if env.Service.State().IsCompleted("javascript", "js-functions") {
		t.Error("failed check completed the lesson")
	}

	l, _, _ := env.Service.Lesson("javascript", "js-functions")
	s.area.SetValue(l.Exercise.Solution)
	_, cmd = s.Update(screentest.Key("ctrl+t"))
	s.Update(screentest.Drain(cmd))
	if !s.passed || s.feedback != grading.PassMessage {
		t.Errorf("solution failed: feedback = %q", s.feedback)
	}
	rec, ok := env.Service.State().LessonProgress("javascript", "js-functions")
	if !ok || rec.Score == nil || *rec.Score != grading.PassingScore {
		t.Errorf("recorded = %+v", rec)
	}
}

func TestEditorScreen_ResetCode(t *testing.T) {
	s := New(screentest.NewEnv(t), "javascript", "js-basics")
	starter := s.Source()

	s.area.SetValue("changed")
	s.Update(screentest.Key("ctrl+u"))
	if s.Source() != starter {
		t.Errorf("Source = %q, want starter code", s.Source())
	}
}

func TestEditorScreen_Esc(t *testing.T) {
	s := New(screentest.NewEnv(t), "javascript", "js-basics")
	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := screentest.Drain(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected pop on esc")
	}
}

func TestEditorScreen_NoExercise(t *testing.T) {
	s := New(screentest.NewEnv(t), "css", "css-layout")
	if s.errMsg == "" {
		t.Fatal("expected an error")
	}
	if s.Init() != nil {
		t.Error("expected no init command without an exercise")
	}
	if _, cmd := s.Update(screentest.Key("ctrl+r")); cmd != nil {
		t.Error("expected run to be ignored")
	}
}

func TestEditorScreen_RunnerStatus(t *testing.T) {
	env := screentest.NewEnv(t)

	// The test environment registers no Python runner.
	s := New(env, "python", "py-basics")
	if got := s.runnerStatus(); got != "(runtime unavailable)" {
		t.Errorf("python status = %q", got)
	}
	if got := New(env, "javascript", "js-basics").runnerStatus(); got != "" {
		t.Errorf("javascript status = %q", got)
	}

	_, cmd := s.Update(screentest.Key("ctrl+r"))
	s.Update(screentest.Drain(cmd))
	if !strings.HasPrefix(s.output, "Error: ") {
		t.Errorf("output = %q, want an error", s.output)
	}
}
