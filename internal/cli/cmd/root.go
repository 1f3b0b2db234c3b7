// Package cmd provides Cobra CLI commands for clipsage.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DylansGit/ClipSage/internal/cli"
	"github.com/DylansGit/ClipSage/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "clipsage",
		Short: "Clipboard history with OCR for images",
		Long: `ClipSage watches the clipboard and keeps a searchable history.

New text is recorded unless it repeats the last accepted text. Images are
saved as PNG files and, when tesseract is available, their text is extracted
so they can be searched and copied back like any other clip.

Run 'clipsage watch' to start recording, and 'clipsage history' to browse.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "path":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToStderr: !interactive(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// interactive reports whether cmd takes over the terminal, in which case
// logs must not be written to stderr.
func interactive(cmd *cobra.Command) bool {
	return cmd == historyCmd && !historyJSON && !historyStats
}

// Execute runs the root command.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command and releases the app whether or not the
// command succeeded. Cobra skips post-run hooks after a RunE error.
func execute() error {
	defer closeApp()
	return rootCmd.Execute()
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close:", err)
	}
	app = nil
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
