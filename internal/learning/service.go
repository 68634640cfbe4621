// Package learning ties the course catalog, progress store, runners, and
// exports together and enforces the rules between them: only catalog lessons
// can be completed, certificates require a finished course, and exports
// require an awarded certificate.
package learning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/export"
	"github.com/abhisek/learncode/internal/grading"
	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/runner"
)

var (
	ErrUnknownCourse = errors.New("unknown course")
	ErrUnknownLesson = errors.New("unknown lesson")
	ErrInvalidScore  = errors.New("score must be between 0 and 100")
	ErrNoExercise    = errors.New("lesson has no exercise")
	ErrNoQuiz        = errors.New("lesson has no quiz")
	ErrNotEligible   = errors.New("course is not complete")
	ErrNotAwarded    = errors.New("certificate has not been awarded")
)

// Options configures a Service.
type Options struct {
	Catalog     *catalog.Catalog
	Progress    *progress.Store
	Runners     *runner.Registry
	LearnerName string
	Clock       func() time.Time
}

// Service is the application layer used by the CLI and the TUI.
type Service struct {
	catalog     *catalog.Catalog
	progress    *progress.Store
	runners     *runner.Registry
	learnerName string
	now         func() time.Time
}

// NewService creates a Service. Runners may be nil when no code is executed.
func NewService(opts Options) *Service {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:     opts.Catalog,
		progress:    opts.Progress,
		runners:     opts.Runners,
		learnerName: opts.LearnerName,
		now:         now,
	}
}

// Catalog returns the course catalog.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// LearnerName is the default certificate recipient.
func (s *Service) LearnerName() string { return s.learnerName }

// State returns a copy of the current progress state.
func (s *Service) State() progress.State { return s.progress.State() }

// Summary returns the dashboard summary.
func (s *Service) Summary() progress.Summary {
	return s.progress.State().Summarize(s.catalog)
}

// Course looks up a course.
func (s *Service) Course(courseID string) (*catalog.Course, error) {
	c, ok := s.catalog.Course(courseID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, courseID)
	}
	return c, nil
}

// Lesson looks up a lesson and its index within the course.
func (s *Service) Lesson(courseID, lessonID string) (*catalog.Lesson, int, error) {
	if _, err := s.Course(courseID); err != nil {
		return nil, 0, err
	}
	l, idx, ok := s.catalog.Lesson(courseID, lessonID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q in course %q", ErrUnknownLesson, lessonID, courseID)
	}
	return l, idx, nil
}

// CourseProgress reports completion for a catalog course.
func (s *Service) CourseProgress(courseID string) (progress.Completion, error) {
	if _, err := s.Course(courseID); err != nil {
		return progress.Completion{}, err
	}
	return s.progress.State().CourseProgress(courseID, s.catalog), nil
}

// CompleteLesson marks a catalog lesson complete. score may be nil.
func (s *Service) CompleteLesson(ctx context.Context, courseID, lessonID string, score *int) (progress.State, error) {
	if _, _, err := s.Lesson(courseID, lessonID); err != nil {
		return progress.State{}, err
	}
	if score != nil && (*score < 0 || *score > 100) {
		return progress.State{}, fmt.Errorf("%w: got %d", ErrInvalidScore, *score)
	}
	return s.progress.CompleteLesson(ctx, courseID, lessonID, score), nil
}

// SubmitQuiz grades answers for a lesson's quiz and completes the lesson
// with the resulting score.
func (s *Service) SubmitQuiz(ctx context.Context, courseID, lessonID string, answers []int) (grading.QuizResult, error) {
	l, _, err := s.Lesson(courseID, lessonID)
	if err != nil {
		return grading.QuizResult{}, err
	}
	if !l.HasQuiz() {
		return grading.QuizResult{}, fmt.Errorf("%w: %q", ErrNoQuiz, lessonID)
	}

	res := grading.ScoreQuiz(l.Quiz, answers)
	s.progress.CompleteLesson(ctx, courseID, lessonID, progress.Score(res.Score))
	return res, nil
}

// CheckSolution compares submitted code with the lesson's reference
// solution. A pass completes the lesson with grading.PassingScore.
func (s *Service) CheckSolution(ctx context.Context, courseID, lessonID, submitted string) (bool, error) {
	l, _, err := s.Lesson(courseID, lessonID)
	if err != nil {
		return false, err
	}
	if l.Exercise == nil {
		return false, fmt.Errorf("%w: %q", ErrNoExercise, lessonID)
	}

	if !grading.CheckSolution(submitted, l.Exercise.Solution) {
		return false, nil
	}
	s.progress.CompleteLesson(ctx, courseID, lessonID, progress.Score(grading.PassingScore))
	return true, nil
}

// Run executes source with the runner for the course's track and returns
// display-ready output. Blank source produces no output.
func (s *Service) Run(ctx context.Context, courseID, source string) (string, error) {
	c, err := s.Course(courseID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	if s.runners == nil {
		return runner.Output("", runner.ErrUnavailable), nil
	}
	return s.runners.Run(ctx, c.Track, source), nil
}

// RunnerStatus reports whether the course's runner can accept work.
func (s *Service) RunnerStatus(courseID string) runner.Status {
	c, ok := s.catalog.Course(courseID)
	if !ok || s.runners == nil {
		return runner.StatusUnavailable
	}
	return s.runners.Status(c.Track)
}

// WaitRunner blocks until the course's runner finished starting. It
// returns the startup error, if any.
func (s *Service) WaitRunner(ctx context.Context, courseID string) error {
	c, err := s.Course(courseID)
	if err != nil {
		return err
	}
	if s.runners == nil {
		return runner.ErrUnavailable
	}
	return s.runners.Wait(ctx, c.Track)
}

// CheckIn records a study day without completing a lesson.
func (s *Service) CheckIn(ctx context.Context) progress.State {
	return s.progress.UpdateStreak(ctx)
}

// EligibleCourses lists courses whose lessons are all complete.
func (s *Service) EligibleCourses() []catalog.Course {
	st := s.progress.State()
	var out []catalog.Course
	for _, id := range st.EligibleCertificates(s.catalog) {
		if c, ok := s.catalog.Course(id); ok {
			out = append(out, *c)
		}
	}
	return out
}

// AwardCertificate grants the certificate for a finished course. Awarding
// an already awarded certificate is a no-op.
func (s *Service) AwardCertificate(ctx context.Context, courseID string) (progress.State, error) {
	if _, err := s.Course(courseID); err != nil {
		return progress.State{}, err
	}
	st := s.progress.State()
	if st.HasCertificate(courseID) {
		return st, nil
	}
	if !st.CertificateEligible(courseID, s.catalog) {
		cp := st.CourseProgress(courseID, s.catalog)
		return progress.State{}, fmt.Errorf("%w: %d of %d lessons done", ErrNotEligible, cp.Completed, cp.Total)
	}
	return s.progress.AwardCertificate(ctx, courseID), nil
}

// Certificate builds the certificate document for an awarded course. A
// blank recipient falls back to the configured learner name.
func (s *Service) Certificate(courseID, recipient string) (export.Certificate, error) {
	c, err := s.Course(courseID)
	if err != nil {
		return export.Certificate{}, err
	}
	if !s.progress.State().HasCertificate(courseID) {
		return export.Certificate{}, fmt.Errorf("%w: %q", ErrNotAwarded, courseID)
	}
	if strings.TrimSpace(recipient) == "" {
		recipient = s.learnerName
	}
	return export.NewCertificate(*c, recipient, s.now()), nil
}

// Import replaces the progress state with a snapshot.
func (s *Service) Import(ctx context.Context, st progress.State) progress.State {
	return s.progress.LoadProgress(ctx, st)
}

// Reset clears all progress.
func (s *Service) Reset(ctx context.Context) progress.State {
	return s.progress.Reset(ctx)
}
