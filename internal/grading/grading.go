// Package grading scores quizzes and checks exercise solutions.
package grading

import (
	"math"
	"regexp"
	"strings"

	"github.com/abhisek/learncode/internal/catalog"
)

// SolutionPrefixLen is how much of the normalized reference solution a
// submission must contain to pass.
const SolutionPrefixLen = 50

// Feedback shown after a solution check.
const (
	PassMessage = "✅ Great job! Your solution looks correct."
	FailMessage = "🤔 Your solution might need some work. Try comparing it with the expected output."
)

// PassingScore is the lesson score recorded for a passing solution.
const PassingScore = 100

// QuizResult is the outcome of a scored quiz.
type QuizResult struct {
	Correct int
	Total   int
	Score   int    // 0-100
	Answers []bool // per question, true when correct
}

// ScoreQuiz grades answers (selected option indexes) against questions.
// Missing answers count as wrong; extra answers are ignored.
func ScoreQuiz(questions []catalog.QuizQuestion, answers []int) QuizResult {
	res := QuizResult{
		Total:   len(questions),
		Answers: make([]bool, len(questions)),
	}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			res.Correct++
			res.Answers[i] = true
		}
	}
	if res.Total > 0 {
		res.Score = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	}
	return res
}

var whitespace = regexp.MustCompile(`\s+`)

// Normalize collapses whitespace runs to single spaces and trims the ends.
func Normalize(code string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(code, " "))
}

// CheckSolution reports whether submitted matches reference. It is an
// approximate match: the normalized submission must contain the first
// SolutionPrefixLen characters of the normalized reference.
func CheckSolution(submitted, reference string) bool {
	want := Normalize(reference)
	if r := []rune(want); len(r) > SolutionPrefixLen {
		want = string(r[:SolutionPrefixLen])
	}
	return strings.Contains(Normalize(submitted), want)
}

// Feedback returns the message for a check result.
func Feedback(passed bool) string {
	if passed {
		return PassMessage
	}
	return FailMessage
}
