package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden from cmd/calendar, which receives them through -ldflags.
var build = struct {
	version, commit, date string
}{"dev", "none", "unknown"}

func SetVersionInfo(version, commit, date string) {
	build.version, build.commit, build.date = version, commit, date
}

func versionLine() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", rootCmd.Name(), build.version, build.commit, build.date)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version, commit and date",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionLine())
	},
}
