package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/runner"
)

var execCmd = &cobra.Command{
	Use:   "exec <course-id>",
	Short: "Run code with the course's runner",
	Long: `Run code the way the course's exercises run it: JavaScript in an
embedded VM, Python with the configured interpreter, HTML and CSS as a
preview document (written with --preview).

Code is read from --file, or from stdin when --file is omitted or "-".
Execution is bounded by LEARNCODE_EXEC_TIMEOUT.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		preview, _ := cmd.Flags().GetString("preview")

		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		c, err := e.service.Course(args[0])
		if err != nil {
			return err
		}
		source, err := readSource(cmd, file)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		// A failed probe is reported by Run as "environment unavailable".
		if err := e.service.WaitRunner(ctx, c.ID); err != nil {
			e.logger.Debug("runner not ready", "course", c.ID, "error", err)
		}

		output, err := e.service.Run(ctx, c.ID, source)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, output)
		if output != "" && !strings.HasSuffix(output, "\n") {
			fmt.Fprintln(out)
		}

		if c.Track == catalog.TrackMarkup && preview != "" {
			if err := os.MkdirAll(filepath.Dir(preview), 0o755); err != nil {
				return fmt.Errorf("create preview dir: %w", err)
			}
			if err := os.WriteFile(preview, []byte(runner.Preview(source)), 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			fmt.Fprintf(out, "Preview written to %s\n", preview)
		}
		return nil
	},
}

func init() {
	execCmd.Flags().StringP("file", "f", "", "File containing your code (default stdin)")
	execCmd.Flags().String("preview", "", "For HTML/CSS courses, write the preview document to this path")
}
