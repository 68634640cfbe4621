package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learncode",
	Short: "Interactive coding courses in your terminal",
	Long: `learncode: work through HTML, CSS, JavaScript, and Python courses,
run your code, take quizzes, and earn certificates.

Run without a subcommand to open the interactive app.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNCODE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a course catalog JSON file (overrides LEARNCODE_CATALOG env var)")

	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(certificateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
