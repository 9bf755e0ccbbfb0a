package report

// VerbosityLevel controls how much a Logger writes.
type VerbosityLevel int

const (
	// VerbosityQuiet suppresses everything but warnings and errors.
	VerbosityQuiet VerbosityLevel = iota
	// VerbosityDefault shows the banner and top-level progress only.
	VerbosityDefault
	// VerbosityVerbose additionally shows per-stage progress and statistics.
	VerbosityVerbose
	// VerbosityDebug additionally shows timestamped debug diagnostics.
	VerbosityDebug
)

// OutputOptions configures a formatter's rendering. The zero value is
// not directly usable; construct with NewDefaultOptions.
type OutputOptions struct {
	// Verbosity controls how much per-class/per-method detail a text
	// formatter includes.
	Verbosity VerbosityLevel
	// ShowDropped includes the classes the engine discarded, not just
	// the ones it kept. Dropped methods are not listed.
	ShowDropped bool
}

// NewDefaultOptions returns the OutputOptions a formatter uses when the
// caller passes nil.
func NewDefaultOptions() *OutputOptions {
	return &OutputOptions{Verbosity: VerbosityDefault}
}
