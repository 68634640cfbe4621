package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/export"
)

var certificateCmd = &cobra.Command{
	Use:   "certificate",
	Short: "Claim and download course certificates",
}

var certificateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List earned and available certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.service.State()
		cat := e.service.Catalog()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-12s  %-26s  %-10s  %s\n", "Course", "Title", "Progress", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, c := range cat.Courses() {
			cp := st.CourseProgress(c.ID, cat)
			status := "in progress"
			switch {
			case st.HasCertificate(c.ID):
				status = "🏆 earned"
			case st.CertificateEligible(c.ID, cat):
				status = "available, run: learncode certificate award " + c.ID
			}
			fmt.Fprintf(out, "%-12s  %-26s  %3d/%-3d     %s\n",
				c.ID, truncate(c.Title, 26), cp.Completed, cp.Total, status)
		}

		fmt.Fprintf(out, "\n%d certificate(s) earned · %d XP\n", len(st.Certificates), st.TotalXP)
		return nil
	},
}

var certificateAwardCmd = &cobra.Command{
	Use:   "award <course-id>",
	Short: "Claim the certificate for a completed course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		before := e.service.State()
		st, err := e.service.AwardCertificate(commandContext(cmd), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if before.HasCertificate(args[0]) {
			fmt.Fprintf(out, "Certificate for %s was already awarded.\n", args[0])
			return nil
		}
		fmt.Fprintf(out, "🏆 Certificate awarded for %s\n", args[0])
		printProgressDelta(cmd, before, st)
		return nil
	},
}

var certificateExportCmd = &cobra.Command{
	Use:   "export <course-id>",
	Short: "Write an awarded certificate as an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		cert, err := e.service.Certificate(args[0], name)
		if err != nil {
			return err
		}

		path, err := export.WriteFile(outDir(cmd, e), cert.Filename(), cert.Render)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Certificate written to %s (credential %s)\n", path, cert.CredentialID)
		return nil
	},
}

func init() {
	certificateExportCmd.Flags().String("name", "", "Recipient name (overrides LEARNCODE_LEARNER_NAME)")
	addOutFlag(certificateExportCmd)

	certificateCmd.AddCommand(certificateListCmd)
	certificateCmd.AddCommand(certificateAwardCmd)
	certificateCmd.AddCommand(certificateExportCmd)
}
