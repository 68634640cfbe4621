package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/learning"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <course-id> <lesson-id>",
	Short: "Take a lesson's quiz",
	Long: `Take a lesson's quiz interactively, or pass all answers at once with
--answers (1-based option numbers, comma separated). The score completes the
lesson.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		answersFlag, _ := cmd.Flags().GetString("answers")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		l, _, err := e.service.Lesson(args[0], args[1])
		if err != nil {
			return err
		}
		if !l.HasQuiz() {
			return fmt.Errorf("%w: %q", learning.ErrNoQuiz, l.ID)
		}

		out := cmd.OutOrStdout()
		var answers []int
		if answersFlag != "" {
			answers, err = parseAnswers(answersFlag)
			if err != nil {
				return err
			}
		} else {
			answers, err = askQuiz(cmd.InOrStdin(), out, l.Quiz)
			if err != nil {
				return err
			}
		}

		before := e.service.State()
		res, err := e.service.SubmitQuiz(commandContext(cmd), args[0], args[1], answers)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		for i, q := range l.Quiz {
			mark := "✗"
			if res.Answers[i] {
				mark = "✓"
			}
			fmt.Fprintf(out, "%s %d. %s\n", mark, i+1, q.Question)
			if !res.Answers[i] {
				fmt.Fprintf(out, "     Correct answer: %s\n", q.Options[q.CorrectAnswer])
			}
			if q.Explanation != "" {
				fmt.Fprintf(out, "     %s\n", q.Explanation)
			}
		}
		fmt.Fprintf(out, "\nScore: %d/%d (%d%%)\n", res.Correct, res.Total, res.Score)
		printProgressDelta(cmd, before, e.service.State())
		return nil
	},
}

func init() {
	quizCmd.Flags().String("answers", "", "Answers as 1-based option numbers, e.g. 3,2")
}

// parseAnswers converts "3,2" into zero-based indexes.
func parseAnswers(s string) ([]int, error) {
	var answers []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", part, err)
		}
		answers = append(answers, n-1)
	}
	return answers, nil
}

func askQuiz(in io.Reader, out io.Writer, questions []catalog.QuizQuestion) ([]int, error) {
	scanner := bufio.NewScanner(in)
	answers := make([]int, 0, len(questions))

	for i, q := range questions {
		fmt.Fprintf(out, "\nQuestion %d of %d: %s\n", i+1, len(questions), q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				return nil, fmt.Errorf("quiz aborted")
			}
			n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "Enter a number from 1 to %d.\n", len(q.Options))
				continue
			}
			answers = append(answers, n-1)
			break
		}
	}
	return answers, nil
}
