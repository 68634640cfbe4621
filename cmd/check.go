package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/grading"
)

var checkCmd = &cobra.Command{
	Use:   "check <course-id> <lesson-id>",
	Short: "Check your exercise solution",
	Long: `Compare your code with the lesson's reference solution. The check is
approximate: whitespace is ignored and your code must contain the start of the
reference solution. A pass completes the lesson with a score of 100.

Code is read from --file, or from stdin when --file is omitted or "-".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		source, err := readSource(cmd, file)
		if err != nil {
			return err
		}

		before := e.service.State()
		passed, err := e.service.CheckSolution(commandContext(cmd), args[0], args[1], source)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), grading.Feedback(passed))
		if passed {
			printProgressDelta(cmd, before, e.service.State())
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("file", "f", "", "File containing your code (default stdin)")
}

// readSource reads code from path, or from the command's stdin when path is
// empty or "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
