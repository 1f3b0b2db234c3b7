package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "clipsage %s\n", orUnknown(buildInfo.Version))
		_, _ = fmt.Fprintf(out, "  commit:  %s\n", orUnknown(buildInfo.Commit))
		_, _ = fmt.Fprintf(out, "  built:   %s\n", orUnknown(buildInfo.BuildDate))
		_, _ = fmt.Fprintf(out, "  go:      %s\n", orUnknown(buildInfo.GoVersion))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
