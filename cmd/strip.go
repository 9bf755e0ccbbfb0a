package cmd

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/intrigus/robovm/analytics"
	"github.com/intrigus/robovm/internal/archive"
	"github.com/intrigus/robovm/internal/config"
	"github.com/intrigus/robovm/internal/report"
)

var (
	stripConfigPath string
	stripArchivePath string
	stripOutput     string
	stripFormat     string
	stripInclude    []string
	stripExclude    []string
)

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Copy a jar/zip archive, dropping entries the include/exclude rules reject",
	RunE:  runStrip,
}

func init() {
	stripCmd.Flags().StringVar(&stripConfigPath, "config", "robovm.yaml", "Path to the project config file")
	stripCmd.Flags().StringVar(&stripArchivePath, "archive", "", "Source archive path")
	stripCmd.Flags().StringVar(&stripOutput, "out", "", "Destination archive path")
	stripCmd.Flags().StringVar(&stripFormat, "format", "text", "Output format: text, json")
	stripCmd.Flags().StringArrayVar(&stripInclude, "include", nil, "Include glob, in order (repeatable, appended after config)")
	stripCmd.Flags().StringArrayVar(&stripExclude, "exclude", nil, "Exclude glob, in order (repeatable, appended after config)")
	_ = stripCmd.MarkFlagRequired("archive")
	_ = stripCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(stripConfigPath)
	if err != nil {
		return err
	}

	filterCfg, err := buildStripConfig(cfg.Archive)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := stripArchive(stripArchivePath, stripOutput, filterCfg)
	if err != nil {
		return err
	}
	result.Duration = time.Since(start)

	switch stripFormat {
	case "json":
		if err := writeStripJSON(result); err != nil {
			return err
		}
	default:
		if err := report.NewTextFormatter(report.NewDefaultOptions()).FormatStrip(result); err != nil {
			return err
		}
	}

	analytics.ReportEventWithProperties(analytics.ExecutedStripCommand, map[string]interface{}{
		"total_entries":    result.TotalEntries,
		"included_entries": len(result.IncludedEntries),
	})

	os.Exit(int(report.DetermineStripExitCode(result)))
	return nil
}

// buildStripConfig assembles the ordered pattern list from the config
// file followed by any --include/--exclude flags, so a CLI override
// layers on top of (rather than replaces) the project's base rules.
func buildStripConfig(cfg config.ArchiveConfig) (*archive.StripArchivesConfig, error) {
	b := archive.NewStripArchivesBuilder()
	for _, glob := range cfg.Include {
		b.AddInclude(glob)
	}
	for _, glob := range cfg.Exclude {
		b.AddExclude(glob)
	}
	for _, glob := range stripInclude {
		b.AddInclude(glob)
	}
	for _, glob := range stripExclude {
		b.AddExclude(glob)
	}
	return b.Build()
}

// stripArchive copies every entry of in to out whose path the filter
// admits, preserving compression method and file mode.
func stripArchive(in, out string, filter *archive.StripArchivesConfig) (*report.StripResult, error) {
	reader, err := zip.OpenReader(in)
	if err != nil {
		return nil, fmt.Errorf("strip: opening %s: %w", in, err)
	}
	defer reader.Close()

	outFile, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("strip: creating %s: %w", out, err)
	}
	defer outFile.Close()

	writer := zip.NewWriter(outFile)
	defer writer.Close()

	result := &report.StripResult{ArchivePath: in}

	for _, entry := range reader.File {
		result.TotalEntries++

		include, err := filter.ShouldInclude(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("strip: evaluating %s: %w", entry.Name, err)
		}
		if !include {
			result.ExcludedEntries = append(result.ExcludedEntries, entry.Name)
			continue
		}
		result.IncludedEntries = append(result.IncludedEntries, entry.Name)

		if err := copyZipEntry(writer, entry); err != nil {
			return nil, fmt.Errorf("strip: copying %s: %w", entry.Name, err)
		}
	}

	return result, nil
}

func copyZipEntry(w *zip.Writer, entry *zip.File) error {
	dst, err := w.CreateHeader(&entry.FileHeader)
	if err != nil {
		return err
	}
	if entry.FileInfo().IsDir() {
		return nil
	}
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

func writeStripJSON(result *report.StripResult) error {
	return report.NewStripJSONFormatter().Format(result)
}
