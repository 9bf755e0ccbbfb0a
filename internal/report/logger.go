package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Logger provides structured, verbosity-gated logging plus an optional
// progress bar for long-running ingest/traversal stages. Output goes
// to stderr by default so stdout stays clean for --format results.
type Logger struct {
	verbosity    VerbosityLevel
	writer       io.Writer
	startTime    time.Time
	timings      map[string]time.Duration
	isTTY        bool
	progressBar  *progressbar.ProgressBar
	showProgress bool
}

// NewLogger creates a logger writing to stderr at the given verbosity.
func NewLogger(verbosity VerbosityLevel) *Logger {
	return NewLoggerWithWriter(verbosity, os.Stderr)
}

// NewLoggerWithWriter creates a logger with a custom output writer,
// primarily for tests.
func NewLoggerWithWriter(verbosity VerbosityLevel, w io.Writer) *Logger {
	isTTY := IsTTY(w)
	return &Logger{
		verbosity:    verbosity,
		writer:       w,
		startTime:    time.Now(),
		timings:      make(map[string]time.Duration),
		isTTY:        isTTY,
		showProgress: isTTY,
	}
}

// Progress logs a high-level progress line ("Traversing reachability
// graph...") — shown in verbose and debug modes.
func (l *Logger) Progress(format string, args ...interface{}) {
	if l.verbosity >= VerbosityVerbose {
		fmt.Fprintf(l.writer, format+"\n", args...)
	}
}

// Statistic logs a humanized count, e.g. "Classes kept: 12,480 of 40,112".
func (l *Logger) Statistic(label string, count, total int) {
	if l.verbosity < VerbosityVerbose {
		return
	}
	fmt.Fprintf(l.writer, "%s: %s of %s\n", label, humanize.Comma(int64(count)), humanize.Comma(int64(total)))
}

// Debug logs a timestamped debug line — debug mode only.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbosity >= VerbosityDebug {
		elapsed := time.Since(l.startTime)
		fmt.Fprintf(l.writer, "[%s] %s\n", formatDuration(elapsed), fmt.Sprintf(format, args...))
	}
}

// Warning logs a warning — always shown.
func (l *Logger) Warning(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// Error logs an error — always shown.
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Error: %s\n", fmt.Sprintf(format, args...))
}

// StartTiming begins timing a named stage; call the returned func when done.
func (l *Logger) StartTiming(name string) func() {
	start := time.Now()
	return func() {
		l.timings[name] = time.Since(start)
	}
}

// GetTiming returns the recorded duration for a named stage.
func (l *Logger) GetTiming(name string) time.Duration {
	return l.timings[name]
}

// PrintTimingSummary prints every recorded stage duration — verbose mode only.
func (l *Logger) PrintTimingSummary() {
	if l.verbosity < VerbosityVerbose {
		return
	}
	fmt.Fprintln(l.writer, "\nTiming Summary:")
	for name, duration := range l.timings {
		fmt.Fprintf(l.writer, "  %s: %s\n", name, duration.Round(time.Millisecond))
	}
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

// Verbosity returns the logger's configured level.
func (l *Logger) Verbosity() VerbosityLevel { return l.verbosity }

// IsVerbose reports whether verbose or debug output is enabled.
func (l *Logger) IsVerbose() bool { return l.verbosity >= VerbosityVerbose }

// IsDebug reports whether debug output is enabled.
func (l *Logger) IsDebug() bool { return l.verbosity >= VerbosityDebug }

// IsTTY reports whether the logger's writer is a terminal.
func (l *Logger) IsTTY() bool { return l.isTTY }

// GetWriter returns the underlying writer.
func (l *Logger) GetWriter() io.Writer { return l.writer }

// StartProgress starts a progress bar for a named stage. total < 0
// renders an indeterminate spinner; total >= 0 renders a percentage bar.
func (l *Logger) StartProgress(description string, total int) {
	if !l.showProgress {
		l.Progress("%s...", description)
		return
	}

	if l.progressBar != nil {
		_ = l.progressBar.Finish()
	}

	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(l.writer),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65 * time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintf(l.writer, "\n") }),
	}
	if total < 0 {
		opts = append(opts, progressbar.OptionSpinnerType(14))
	} else {
		opts = append(opts, progressbar.OptionShowCount(), progressbar.OptionSetRenderBlankState(true))
	}
	l.progressBar = progressbar.NewOptions(total, opts...)
}

// UpdateProgress increments the active progress bar by delta.
func (l *Logger) UpdateProgress(delta int) {
	if l.progressBar == nil {
		return
	}
	_ = l.progressBar.Add(delta)
}

// FinishProgress completes and clears the active progress bar.
func (l *Logger) FinishProgress() {
	if l.progressBar == nil {
		return
	}
	_ = l.progressBar.Finish()
	l.progressBar = nil
}
