package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const statsDays = 7

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		cat := e.service.Catalog()
		st := e.service.State()
		sum := e.service.Summary()

		last := sum.LastStudyDate
		if last == "" {
			last = "never"
		}
		fmt.Fprintf(out, "Total XP:       %d\n", sum.TotalXP)
		fmt.Fprintf(out, "Streak:         %d day(s) (last studied %s)\n", sum.Streak, last)
		fmt.Fprintf(out, "Lessons:        %d/%d (%d%%)\n", sum.Overall.Completed, sum.Overall.Total, sum.Overall.Percentage)
		fmt.Fprintf(out, "Certificates:   %d\n\n", sum.Certificates)

		fmt.Fprintf(out, "%-12s  %-24s  %s\n", "Course", "Progress", "")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, c := range cat.Courses() {
			cp := st.CourseProgress(c.ID, cat)
			fmt.Fprintf(out, "%-12s  %s  %3d%%\n", c.ID, bar(cp.Percentage, 24), cp.Percentage)
		}

		daily, err := e.store.EventRepo().XPByDay(commandContext(cmd), statsDays)
		if err != nil {
			return fmt.Errorf("query daily XP: %w", err)
		}
		if len(daily) == 0 {
			return nil
		}

		fmt.Fprintf(out, "\n%-10s  %s\n", "Day", "XP")
		fmt.Fprintln(out, strings.Repeat("─", 20))
		for _, d := range daily {
			fmt.Fprintf(out, "%-10s  %d\n", d.Day, d.XP)
		}
		return nil
	},
}

// bar renders a fixed-width text progress bar for pct in [0,100].
func bar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
