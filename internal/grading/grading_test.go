package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/learncode/internal/catalog"
)

func questions(correct ...int) []catalog.QuizQuestion {
	qs := make([]catalog.QuizQuestion, len(correct))
	for i, c := range correct {
		qs[i] = catalog.QuizQuestion{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: c,
		}
	}
	return qs
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name      string
		questions []catalog.QuizQuestion
		answers   []int
		correct   int
		score     int
	}{
		{"all correct", questions(0, 1, 2), []int{0, 1, 2}, 3, 100},
		{"none correct", questions(0, 1), []int{1, 0}, 0, 0},
		{"one of three", questions(0, 1, 2), []int{0, 0, 0}, 1, 33},
		{"two of three", questions(0, 1, 2), []int{0, 1, 0}, 2, 67},
		{"missing answers", questions(0, 1, 2, 3), []int{0}, 1, 25},
		{"extra answers ignored", questions(1), []int{1, 2, 3}, 1, 100},
		{"empty quiz", nil, nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScoreQuiz(tt.questions, tt.answers)
			assert.Equal(t, tt.correct, res.Correct)
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, len(tt.questions), res.Total)
			assert.Len(t, res.Answers, len(tt.questions))
		})
	}
}

func TestScoreQuiz_PerQuestion(t *testing.T) {
	res := ScoreQuiz(questions(2, 0), []int{2, 1})
	assert.Equal(t, []bool{true, false}, res.Answers)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a\n\tb   c \n"))
	assert.Equal(t, "", Normalize(" \n "))
}

func TestCheckSolution(t *testing.T) {
	reference := "function greet(name) {\n  return `Hello, ${name}!`;\n}\n\nconsole.log(greet('World'));"

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact", reference, true},
		{"reformatted", "function greet(name) { return `Hello, ${name}!`; }\nconsole.log(greet('World'));", true},
		{"extra code around", "// mine\n" + reference + "\nconsole.log('done');", true},
		{"prefix only is enough", "function greet(name) { return `Hello, ${name}!`; } // different tail", true},
		{"different", "function greet(n) { return 'hi'; }", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSolution(tt.submitted, reference))
		})
	}
}

func TestCheckSolution_ShortReference(t *testing.T) {
	assert.True(t, CheckSolution("print( 'hi' )  # done", "print( 'hi' )"))
	assert.False(t, CheckSolution("print('hi')", "print( 'hi' )"))
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, PassMessage, Feedback(true))
	assert.Equal(t, FailMessage, Feedback(false))
}
