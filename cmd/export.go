package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download cheat sheets, resources, reports, and progress",
}

var exportCheatSheetCmd = &cobra.Command{
	Use:   "cheatsheet <course-id>",
	Short: "Write a course's cheat sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		c, err := e.service.Course(args[0])
		if err != nil {
			return err
		}

		doc := export.CheatSheet(*c, format)
		path, err := export.WriteFile(outDir(cmd, e), doc.Filename, func(w io.Writer) error {
			return doc.Write(w, format)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cheat sheet written to %s\n", path)
		return nil
	},
}

var exportResourceCmd = &cobra.Command{
	Use:   "resource [resource-id]",
	Short: "Write a reference resource, or list resources when no ID is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		cat := e.service.Catalog()
		if len(args) == 0 {
			for _, r := range cat.Resources() {
				fmt.Fprintf(out, "%-22s  %-32s  %s\n", r.ID, r.Title, r.Category)
			}
			return nil
		}

		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		r, ok := cat.Resource(args[0])
		if !ok {
			return fmt.Errorf("unknown resource %q", args[0])
		}

		doc := export.ResourceDocument(*r, format)
		path, err := export.WriteFile(outDir(cmd, e), doc.Filename, func(w io.Writer) error {
			return doc.Write(w, format)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Resource written to %s\n", path)
		return nil
	},
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a spreadsheet summarizing your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.service.State()
		path, err := export.WriteFile(outDir(cmd, e), export.ReportFilename, func(w io.Writer) error {
			return export.WriteReport(w, e.service.Catalog(), st)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	},
}

var exportStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Write your progress as JSON (restore it with learncode import)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.service.State()
		path, err := export.WriteFile(outDir(cmd, e), export.StateFilename, func(w io.Writer) error {
			return export.WriteState(w, st)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress written to %s\n", path)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{exportCheatSheetCmd, exportResourceCmd} {
		c.Flags().String("format", "md", "Output format: md or html")
	}
	for _, c := range []*cobra.Command{exportCheatSheetCmd, exportResourceCmd, exportReportCmd, exportStateCmd} {
		addOutFlag(c)
	}

	exportCmd.AddCommand(exportCheatSheetCmd)
	exportCmd.AddCommand(exportResourceCmd)
	exportCmd.AddCommand(exportReportCmd)
	exportCmd.AddCommand(exportStateCmd)
}

func addOutFlag(c *cobra.Command) {
	c.Flags().StringP("out", "o", "", "Output directory (overrides LEARNCODE_OUT_DIR)")
}

func outDir(cmd *cobra.Command, e *env) string {
	if d, _ := cmd.Flags().GetString("out"); d != "" {
		return d
	}
	return e.cfg.Export.OutDir
}

func formatFlag(cmd *cobra.Command) (export.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return export.ParseFormat(s)
}
