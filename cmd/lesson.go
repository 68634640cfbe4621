package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Read lessons",
}

var lessonShowCmd = &cobra.Command{
	Use:   "show <course-id> <lesson-id>",
	Short: "Print a lesson's content, example, and exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		showSolution, _ := cmd.Flags().GetBool("solution")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		c, err := e.service.Course(args[0])
		if err != nil {
			return err
		}
		l, idx, err := e.service.Lesson(args[0], args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)

		status := ""
		if e.service.State().IsCompleted(c.ID, l.ID) {
			status = "  ✓ Completed"
		}
		fmt.Fprintf(out, "%s · Lesson %d of %d%s\n\n", c.Title, idx+1, len(c.Lessons), status)
		fmt.Fprintln(out, strings.TrimSpace(l.Content))

		if l.CodeExample != "" {
			fmt.Fprintf(out, "\n%s\nExample\n%s\n%s\n", sep, sep, l.CodeExample)
		}

		if ex := l.Exercise; ex != nil {
			fmt.Fprintf(out, "\n%s\nExercise\n%s\n%s\n", sep, sep, ex.Instructions)
			for _, t := range ex.Tests {
				fmt.Fprintf(out, "  • %s\n", t)
			}
			fmt.Fprintf(out, "\nStarter code:\n%s\n", ex.StarterCode)
			if showSolution {
				fmt.Fprintf(out, "\nSolution:\n%s\n", ex.Solution)
			}
		}

		if l.HasQuiz() {
			fmt.Fprintf(out, "\nQuiz: %d questions. Run: learncode quiz %s %s\n", len(l.Quiz), c.ID, l.ID)
		}
		return nil
	},
}

func init() {
	lessonShowCmd.Flags().Bool("solution", false, "Also print the exercise's reference solution")

	lessonCmd.AddCommand(lessonShowCmd)
}
