package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intrigus/robovm/internal/report"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and commit information",
	Run: func(cmd *cobra.Command, _ []string) {
		noBanner, _ := cmd.Parent().PersistentFlags().GetBool("no-banner")
		logger := report.NewLogger(report.VerbosityDefault)
		if report.ShouldShowBanner(logger.IsTTY(), noBanner) {
			report.PrintBanner(logger.GetWriter(), Version, report.DefaultBannerOptions())
		} else if !logger.IsTTY() && !noBanner {
			fmt.Fprintln(os.Stderr, report.GetCompactBanner(Version))
			fmt.Fprintln(os.Stderr)
		}

		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Git Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
