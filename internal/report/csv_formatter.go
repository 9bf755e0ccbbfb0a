package report

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
)

// CSVFormatter renders a ShakeResult's reachable methods as CSV.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a CSV formatter writing to stdout.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{writer: os.Stdout}
}

// NewCSVFormatterWithWriter creates a formatter with a custom writer, for tests.
func NewCSVFormatterWithWriter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// CSVHeaders returns the column headers written before any rows. kind
// distinguishes a "method" row (owner/name/desc populated) from a
// "class" row (owner populated with the class name, name/desc empty).
func CSVHeaders() []string {
	return []string{"kind", "owner", "name", "desc"}
}

// Format writes one row per reachable method followed by one trailing
// row per reachable class, each block sorted independently.
func (f *CSVFormatter) Format(r *ShakeResult) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	if err := w.Write(CSVHeaders()); err != nil {
		return err
	}

	var methods []struct{ Owner, Name, Desc string }
	for _, m := range r.ReachableMethods {
		methods = append(methods, struct{ Owner, Name, Desc string }{m.Owner, m.Name, m.Desc})
	}
	sort.Slice(methods, func(i, j int) bool {
		if methods[i].Owner != methods[j].Owner {
			return methods[i].Owner < methods[j].Owner
		}
		if methods[i].Name != methods[j].Name {
			return methods[i].Name < methods[j].Name
		}
		return methods[i].Desc < methods[j].Desc
	})

	for _, m := range methods {
		if err := w.Write([]string{"method", m.Owner, m.Name, m.Desc}); err != nil {
			return err
		}
	}

	classes := append([]string(nil), r.ReachableClasses...)
	sort.Strings(classes)
	for _, c := range classes {
		if err := w.Write([]string{"class", c, "", ""}); err != nil {
			return err
		}
	}

	return w.Error()
}
