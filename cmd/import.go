package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace your progress with a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open snapshot: %w", err)
		}
		defer f.Close()

		snapshot, err := export.ReadState(f)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.service.Import(commandContext(cmd), snapshot)
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d lesson record(s), %d certificate(s), %d XP\n",
			len(st.Progress), len(st.Certificates), st.TotalXP)
		return nil
	},
}
