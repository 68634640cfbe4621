package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today as a study day",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.service.CheckIn(commandContext(cmd))
		fmt.Fprintf(cmd.OutOrStdout(), "🔥 Streak: %d day(s) (last study day %s)\n", st.Streak, st.LastStudyDate)
		return nil
	},
}
