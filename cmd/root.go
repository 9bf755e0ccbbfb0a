package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intrigus/robovm/analytics"
	"github.com/intrigus/robovm/internal/report"
)

var (
	verboseFlag bool
	// Version and GitCommit are overridden at build time via -ldflags.
	Version   = "0.1.0"
	GitCommit = "HEAD"
)

var rootCmd = &cobra.Command{
	Use:   "robovm",
	Short: "Reachability-driven tree shaker and archive stripper for AOT-compiled classes",
	Long: `robovm analyzes a class/method dependency graph and determines what is
reachable from a set of root classes under a chosen tree-shaker policy,
and strips unwanted entries from compiled archives before packaging.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics, _ := cmd.Flags().GetBool("disable-metrics") //nolint:all
		verboseFlag, _ = cmd.Flags().GetBool("verbose")             //nolint:all
		analytics.LoadEnvFile()
		analytics.Init(disableMetrics)
		analytics.SetVersion(Version)

		if cmd.Name() == "help" || (len(os.Args) == 1 || (len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h"))) {
			noBanner, _ := cmd.Flags().GetBool("no-banner")
			logger := report.NewLogger(report.VerbosityDefault)
			if report.ShouldShowBanner(logger.IsTTY(), noBanner) {
				report.PrintBanner(logger.GetWriter(), Version, report.DefaultBannerOptions())
			} else if !logger.IsTTY() && !noBanner {
				fmt.Fprintln(os.Stderr, report.GetCompactBanner(Version))
				fmt.Fprintln(os.Stderr)
			}
		}
	},
}

// Execute runs the root command, returning any error cobra surfaces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable metrics collection")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Disable startup banner")
}
