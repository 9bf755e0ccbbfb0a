package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sarif "github.com/owenrumney/go-sarif/v2/sarif"
)

// SARIFFormatter renders a ShakeResult as SARIF 2.1.0, one "note"-level
// result per class the engine kept — an informational trail of what
// tree-shaking retained rather than a list of findings to fix.
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a SARIF formatter writing to stdout.
func NewSARIFFormatter() *SARIFFormatter {
	return &SARIFFormatter{writer: os.Stdout}
}

// NewSARIFFormatterWithWriter creates a formatter with a custom writer, for tests.
func NewSARIFFormatterWithWriter(w io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: w}
}

// Format writes r as a SARIF log naming every class the engine retained.
func (f *SARIFFormatter) Format(r *ShakeResult, version string) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI("robovm-shaker", "https://robovm.mobidevelop.com")
	run.AddRule("tree-shaking/retained").
		WithDescription("Class retained by the reachability engine under the active tree-shaker mode").
		WithName("RetainedClass").
		WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel("note"))

	for _, c := range r.ReachableClasses {
		message := fmt.Sprintf("class %q retained under mode %s", c, r.Mode)
		result := run.CreateResultForRule("tree-shaking/retained").WithMessage(sarif.NewTextMessage(message))
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().WithArtifactLocation(sarif.NewArtifactLocation().WithUri(c)),
		)
		result.AddLocation(location)
	}

	report.AddRun(run)

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
