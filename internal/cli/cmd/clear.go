package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all clipboard history records",
	Long: `Delete every record from the history database.

Saved image files are left on disk. Use --yes to skip the confirmation prompt.`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation prompt")
}

func runClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	out := cmd.OutOrStdout()

	count, err := app.HistoryUC.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("History is already empty."))
		return nil
	}

	if !clearYes {
		prompt := fmt.Sprintf("Delete %d clipboard records?", count)
		if !confirm(cmd.InOrStdin(), out, prompt) {
			_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("Canceled."))
			return nil
		}
	}

	if err := app.HistoryUC.ClearAll(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, app.Theme.SuccessStyle.Render(fmt.Sprintf("Deleted %d records.", count)))
	return nil
}

// confirm asks a y/N question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
