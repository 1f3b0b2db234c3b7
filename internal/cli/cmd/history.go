package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DylansGit/ClipSage/internal/cli/model"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
)

var (
	historyJSON   bool
	historyStats  bool
	historyFilter string
	historyMax    int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage clipboard history",
	Long: `Interactive history browser with filtering, copy-back and reset.

Keys: / filter, enter copy, space select, c copy selected, r refresh,
x reset history, ? help, q quit.

Examples:
  clipsage history
  clipsage history --json --filter invoice --max 10
  clipsage history --stats`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().StringVar(&historyFilter, "filter", "", "case-insensitive substring filter (for --json)")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show (for --json, 0 for all)")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "print record count and image storage size")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	switch {
	case historyStats:
		return runHistoryStats(cmd.OutOrStdout())
	case historyJSON:
		clips := app.HistoryUC.Search(app.Ctx(), historyFilter)
		return writeClipsJSON(cmd.OutOrStdout(), clips, historyMax)
	}

	m := model.NewHistoryModel(app.Ctx(), app.Theme, app.HistoryUC, app.CopyUC)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// writeClipsJSON encodes at most limit clips, newest first. A limit of zero
// or less writes everything.
func writeClipsJSON(w io.Writer, clips []*entity.ClipItem, limit int) error {
	if limit > 0 && len(clips) > limit {
		clips = clips[:limit]
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(clips)
}

func runHistoryStats(w io.Writer) error {
	app := GetApp()
	ctx := app.Ctx()

	count, err := app.HistoryUC.Count(ctx)
	if err != nil {
		return err
	}
	size, err := app.Payloads.Size(ctx)
	if err != nil {
		return fmt.Errorf("measure image store: %w", err)
	}

	_, _ = fmt.Fprintf(w, "records:  %d\n", count)
	_, _ = fmt.Fprintf(w, "images:   %s (%s)\n", app.Payloads.Dir(), humanBytes(size))
	_, _ = fmt.Fprintf(w, "database: %s\n", app.Config.Database.Path)
	return nil
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
