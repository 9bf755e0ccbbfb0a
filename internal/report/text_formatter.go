package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
)

// TextFormatter renders a ShakeResult as human-readable text.
type TextFormatter struct {
	writer  io.Writer
	options *OutputOptions
}

// NewTextFormatter creates a text formatter writing to stdout.
func NewTextFormatter(opts *OutputOptions) *TextFormatter {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	return &TextFormatter{writer: os.Stdout, options: opts}
}

// NewTextFormatterWithWriter creates a formatter with a custom writer, for tests.
func NewTextFormatterWithWriter(w io.Writer, opts *OutputOptions) *TextFormatter {
	tf := NewTextFormatter(opts)
	tf.writer = w
	return tf
}

// Format writes r as a short human-readable report.
func (f *TextFormatter) Format(r *ShakeResult) error {
	fmt.Fprintln(f.writer, "RoboVM Tree Shaker")
	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "Mode: %s\n", r.Mode)
	fmt.Fprintf(f.writer, "Classes kept: %s of %s\n",
		humanize.Comma(int64(len(r.ReachableClasses))), humanize.Comma(int64(r.TotalClasses)))
	fmt.Fprintf(f.writer, "Methods kept: %s of %s\n",
		humanize.Comma(int64(len(r.ReachableMethods))), humanize.Comma(int64(r.TotalMethods)))
	fmt.Fprintf(f.writer, "Elapsed: %s\n", r.Duration.Round(1_000_000))

	if f.options.Verbosity >= VerbosityVerbose {
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer, "Reachable classes:")
		classes := append([]string(nil), r.ReachableClasses...)
		sort.Strings(classes)
		for _, c := range classes {
			fmt.Fprintf(f.writer, "  %s\n", c)
		}
	}

	if f.options.ShowDropped {
		fmt.Fprintln(f.writer)
		fmt.Fprintf(f.writer, "Dropped classes (%s):\n", humanize.Comma(int64(r.DroppedClasses())))
		dropped := r.DroppedClassNames()
		sort.Strings(dropped)
		for _, c := range dropped {
			fmt.Fprintf(f.writer, "  %s\n", c)
		}
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer, "Errors:")
		for _, e := range r.Errors {
			fmt.Fprintf(f.writer, "  %s\n", e)
		}
	}

	return nil
}

// FormatStrip writes a StripResult as human-readable text.
func (f *TextFormatter) FormatStrip(r *StripResult) error {
	fmt.Fprintln(f.writer, "RoboVM Archive Strip")
	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "Archive: %s\n", r.ArchivePath)
	fmt.Fprintf(f.writer, "Entries kept: %s of %s\n",
		humanize.Comma(int64(len(r.IncludedEntries))), humanize.Comma(int64(r.TotalEntries)))
	fmt.Fprintf(f.writer, "Elapsed: %s\n", r.Duration.Round(1_000_000))

	if f.options.Verbosity >= VerbosityVerbose {
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer, "Excluded entries:")
		for _, e := range r.ExcludedEntries {
			fmt.Fprintf(f.writer, "  %s\n", e)
		}
	}

	return nil
}
