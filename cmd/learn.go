package cmd

import (
	"fmt"

	"github.com/abhisek/lingo/internal/app"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Jump straight into the next lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppWith(cmd, true)
	},
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppWith(cmd, false)
}

func runAppWith(cmd *cobra.Command, autoStart bool) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	lang, _ := cmd.Flags().GetString("lang")

	return app.Run(app.Options{
		DBPath:    dbPath,
		UILang:    lang,
		AutoStart: autoStart,
	})
}
