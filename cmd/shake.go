package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/intrigus/robovm/analytics"
	"github.com/intrigus/robovm/internal/config"
	"github.com/intrigus/robovm/internal/ingest"
	"github.com/intrigus/robovm/internal/reach"
	"github.com/intrigus/robovm/internal/report"
)

var (
	shakeConfigPath  string
	shakeClasses     string
	shakeMode        string
	shakeRoots       []string
	shakeFormat      string
	shakeShowDropped bool
)

var shakeCmd = &cobra.Command{
	Use:   "shake",
	Short: "Compute reachable classes and methods under a tree-shaker policy",
	RunE:  runShake,
}

func init() {
	shakeCmd.Flags().StringVar(&shakeConfigPath, "config", "robovm.yaml", "Path to the project config file")
	shakeCmd.Flags().StringVar(&shakeClasses, "classes", "", "Directory of JSON class descriptors (overrides config)")
	shakeCmd.Flags().StringVar(&shakeMode, "mode", "", "Tree-shaker mode: none, conservative, aggressive (overrides config)")
	shakeCmd.Flags().StringSliceVar(&shakeRoots, "roots", nil, "Root class internal names (overrides config)")
	shakeCmd.Flags().StringVar(&shakeFormat, "format", "", "Output format: text, json, csv, sarif (overrides config)")
	shakeCmd.Flags().BoolVar(&shakeShowDropped, "show-dropped", false, "List dropped classes in the text report (text format only)")
	rootCmd.AddCommand(shakeCmd)
}

func runShake(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(shakeConfigPath)
	if err != nil {
		return err
	}

	classesDir := cfg.ClassesDir
	if shakeClasses != "" {
		classesDir = shakeClasses
	}

	modeStr := cfg.Mode
	if shakeMode != "" {
		modeStr = shakeMode
	}
	mode, ok := reach.ParseMode(modeStr)
	if !ok {
		return fmt.Errorf("shake: unknown mode %q (want none, conservative, or aggressive)", modeStr)
	}

	roots := cfg.Roots
	if len(shakeRoots) > 0 {
		roots = shakeRoots
	}
	rootSet := make(map[string]struct{}, len(roots))
	for _, r := range roots {
		rootSet[strings.TrimSpace(r)] = struct{}{}
	}

	format := cfg.Output.Format
	if shakeFormat != "" {
		format = shakeFormat
	}
	if format == "" {
		format = "text"
	}

	logger := report.NewLogger(verbosityFromFlag())

	loader, err := ingest.NewLoader()
	if err != nil {
		return err
	}

	start := time.Now()
	classes, loadErrs := loader.LoadDir(classesDir, logger)

	engine := reach.New(mode)
	totalMethods := 0
	for _, clazz := range classes {
		_, inRootSet := rootSet[clazz.InternalName]
		isRoot := inRootSet || clazz.Info.IsRoot
		engine.Add(clazz, isRoot)
		totalMethods += len(clazz.Info.Methods)
	}

	result := report.NewShakeResult(engine, totalMethods, time.Since(start))
	for _, e := range loadErrs {
		result.Errors = append(result.Errors, e.Error())
	}

	if err := writeShakeReport(result, format, shakeShowDropped); err != nil {
		return err
	}

	analytics.ReportEventWithProperties(analytics.ExecutedShakeCommand, map[string]interface{}{
		"mode":              mode.String(),
		"format":            format,
		"reachable_classes": len(result.ReachableClasses),
		"reachable_methods": len(result.ReachableMethods),
	})

	os.Exit(int(report.DetermineShakeExitCode(result)))
	return nil
}

func writeShakeReport(result *report.ShakeResult, format string, showDropped bool) error {
	switch format {
	case "json":
		return report.NewJSONFormatter().Format(result, Version)
	case "csv":
		return report.NewCSVFormatter().Format(result)
	case "sarif":
		return report.NewSARIFFormatter().Format(result, Version)
	case "text":
		opts := report.NewDefaultOptions()
		opts.Verbosity = verbosityFromFlag()
		opts.ShowDropped = showDropped
		return report.NewTextFormatter(opts).Format(result)
	default:
		return fmt.Errorf("shake: unknown format %q (want text, json, csv, or sarif)", format)
	}
}

func verbosityFromFlag() report.VerbosityLevel {
	if verboseFlag {
		return report.VerbosityVerbose
	}
	return report.VerbosityDefault
}
