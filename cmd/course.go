package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/catalog"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse courses",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses (optionally filtered by track)",
	RunE: func(cmd *cobra.Command, args []string) error {
		track, _ := cmd.Flags().GetString("track")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		cat := e.service.Catalog()
		courses := cat.Courses()
		if track != "" {
			courses = cat.ByTrack(catalog.Track(track))
			if len(courses) == 0 {
				return fmt.Errorf("no courses found for track %q", track)
			}
		}

		st := e.service.State()
		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-12s  %-26s  %-12s  %-12s  %7s  %8s  %s\n",
			"ID", "Title", "Track", "Difficulty", "Lessons", "Progress", "Certificate")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, c := range courses {
			cp := st.CourseProgress(c.ID, cat)
			cert := ""
			if st.HasCertificate(c.ID) {
				cert = "✓"
			}
			fmt.Fprintf(out, "%-12s  %-26s  %-12s  %-12s  %7d  %7d%%  %s\n",
				c.ID, truncate(c.Title, 26), catalog.TrackDisplayName(c.Track),
				c.Difficulty, len(c.Lessons), cp.Percentage, cert)
		}

		fmt.Fprintf(out, "\n%d courses\n", len(courses))
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course and its lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		c, err := e.service.Course(args[0])
		if err != nil {
			return err
		}
		cp, _ := e.service.CourseProgress(c.ID)
		st := e.service.State()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s\n", c.Icon, c.Title)
		fmt.Fprintln(out, c.Description)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Track:       %s\n", catalog.TrackDisplayName(c.Track))
		fmt.Fprintf(out, "Difficulty:  %s\n", c.Difficulty)
		fmt.Fprintf(out, "Duration:    %s\n", c.EstimatedTime)
		fmt.Fprintf(out, "Progress:    %d/%d lessons (%d%%)\n", cp.Completed, cp.Total, cp.Percentage)
		fmt.Fprintln(out)

		for i, l := range c.Lessons {
			mark := " "
			score := ""
			if rec, ok := st.LessonProgress(c.ID, l.ID); ok && rec.Completed {
				mark = "✓"
				if rec.Score != nil {
					score = fmt.Sprintf("  (%d%%)", *rec.Score)
				}
			}
			fmt.Fprintf(out, " %s %2d. %-28s %s%s\n", mark, i+1, l.Title, l.ID, score)
		}
		return nil
	},
}

func init() {
	courseListCmd.Flags().String("track", "", "Filter by track (javascript, python, markup)")

	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
