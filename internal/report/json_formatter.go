package report

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"time"
)

// JSONFormatter renders a ShakeResult as JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to stdout.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{writer: os.Stdout}
}

// NewJSONFormatterWithWriter creates a formatter with a custom writer, for tests.
func NewJSONFormatterWithWriter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// JSONOutput is the top-level `robovm shake --format json` document.
type JSONOutput struct {
	Tool      JSONTool        `json:"tool"`
	Mode      string          `json:"mode"`
	Timestamp string          `json:"timestamp"`
	Duration  float64         `json:"duration_seconds"`
	Summary   JSONShakeSummary `json:"summary"`
	Classes   []string        `json:"reachable_classes"`
	Methods   []JSONMethod    `json:"reachable_methods"`
	Errors    []string        `json:"errors,omitempty"`
}

// JSONTool identifies this tool for downstream consumers.
type JSONTool struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// JSONShakeSummary carries the class/method retention counts.
type JSONShakeSummary struct {
	TotalClasses     int `json:"total_classes"`
	ReachableClasses int `json:"reachable_classes"`
	TotalMethods     int `json:"total_methods"`
	ReachableMethods int `json:"reachable_methods"`
}

// JSONMethod is one reachable method triple.
type JSONMethod struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
}

// Format writes r as indented JSON.
func (f *JSONFormatter) Format(r *ShakeResult, version string) error {
	classes := append([]string(nil), r.ReachableClasses...)
	sort.Strings(classes)

	methods := make([]JSONMethod, 0, len(r.ReachableMethods))
	for _, m := range r.ReachableMethods {
		methods = append(methods, JSONMethod{Owner: m.Owner, Name: m.Name, Desc: m.Desc})
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

	out := JSONOutput{
		Tool:      JSONTool{Name: "robovm-shaker", Version: version},
		Mode:      r.Mode.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Duration:  r.Duration.Seconds(),
		Summary: JSONShakeSummary{
			TotalClasses:     r.TotalClasses,
			ReachableClasses: len(r.ReachableClasses),
			TotalMethods:     r.TotalMethods,
			ReachableMethods: len(r.ReachableMethods),
		},
		Classes: classes,
		Methods: methods,
		Errors:  r.Errors,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// StripJSONFormatter renders a StripResult as JSON.
type StripJSONFormatter struct {
	writer io.Writer
}

// NewStripJSONFormatter creates a StripJSONFormatter writing to stdout.
func NewStripJSONFormatter() *StripJSONFormatter {
	return &StripJSONFormatter{writer: os.Stdout}
}

// NewStripJSONFormatterWithWriter creates a formatter with a custom writer, for tests.
func NewStripJSONFormatterWithWriter(w io.Writer) *StripJSONFormatter {
	return &StripJSONFormatter{writer: w}
}

// JSONStripOutput is the top-level `robovm strip --format json` document.
type JSONStripOutput struct {
	Archive  string   `json:"archive"`
	Duration float64  `json:"duration_seconds"`
	Total    int      `json:"total_entries"`
	Included []string `json:"included_entries"`
	Excluded []string `json:"excluded_entries"`
	Errors   []string `json:"errors,omitempty"`
}

// Format writes r as indented JSON.
func (f *StripJSONFormatter) Format(r *StripResult) error {
	out := JSONStripOutput{
		Archive:  r.ArchivePath,
		Duration: r.Duration.Seconds(),
		Total:    r.TotalEntries,
		Included: r.IncludedEntries,
		Excluded: r.ExcludedEntries,
		Errors:   r.Errors,
	}
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
