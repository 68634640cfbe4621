package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnvWith(cmd, envOptions{runners: true, logToFile: true})
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Service: e.service,
		Events:  e.store.EventRepo(),
		Logger:  e.logger,
		OutDir:  e.cfg.Export.OutDir,
	})
}
