package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/progress"
)

var completeCmd = &cobra.Command{
	Use:   "complete <course-id> <lesson-id>",
	Short: "Mark a lesson complete",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		var score *int
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetInt("score")
			score = progress.Score(v)
		}

		before := e.service.State()
		st, err := e.service.CompleteLesson(commandContext(cmd), args[0], args[1], score)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Completed %s/%s", args[0], args[1])
		if score != nil {
			fmt.Fprintf(out, " with score %d%%", *score)
		}
		fmt.Fprintln(out)
		printProgressDelta(cmd, before, st)

		if !st.HasCertificate(args[0]) && st.CertificateEligible(args[0], e.service.Catalog()) {
			fmt.Fprintf(out, "🏆 Course complete! Claim your certificate: learncode certificate award %s\n", args[0])
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().Int("score", 0, "Score from 0 to 100")
}

// printProgressDelta reports XP gained and the current streak.
func printProgressDelta(cmd *cobra.Command, before, after progress.State) {
	fmt.Fprintf(cmd.OutOrStdout(), "+%d XP (total %d) · streak %d day(s)\n",
		after.TotalXP-before.TotalXP, after.TotalXP, after.Streak)
}
