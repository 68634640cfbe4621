package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent progress events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		course, _ := cmd.Flags().GetString("course")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.store.EventRepo().QueryProgressEvents(commandContext(cmd), store.QueryOpts{
			Limit:    limit,
			CourseID: course,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No progress recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-19s  %-18s  %-12s  %-20s  %6s  %6s\n",
			"#", "Time", "Action", "Course", "Lesson", "XP", "Total")
		fmt.Fprintln(out, strings.Repeat("─", 97))
		for _, ev := range events {
			lesson := ev.LessonID
			if ev.Score != nil {
				lesson = fmt.Sprintf("%s (%d%%)", lesson, *ev.Score)
			}
			fmt.Fprintf(out, "%-4d  %-19s  %-18s  %-12s  %-20s  %+6d  %6d\n",
				ev.Sequence,
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Kind,
				dash(ev.CourseID),
				truncate(dash(lesson), 20),
				ev.XPDelta,
				ev.TotalXP,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	historyCmd.Flags().String("course", "", "Only show events for this course")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
