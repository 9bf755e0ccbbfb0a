package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intrigus/robovm/internal/reach"
	"github.com/intrigus/robovm/internal/report"
)

func TestWriteShakeReportUnknownFormat(t *testing.T) {
	result := report.NewShakeResult(reach.New(reach.ModeNone), 0, time.Millisecond)
	err := writeShakeReport(result, "yaml", false)
	assert.Error(t, err)
}

func TestWriteShakeReportKnownFormats(t *testing.T) {
	e := reach.New(reach.ModeNone)
	e.Add(reach.Clazz{InternalName: "A"}, true)
	result := report.NewShakeResult(e, 0, time.Millisecond)

	for _, format := range []string{"text", "json", "csv", "sarif"} {
		t.Run(format, func(t *testing.T) {
			require.NoError(t, writeShakeReport(result, format, true))
		})
	}
}

func TestVerbosityFromFlag(t *testing.T) {
	verboseFlag = false
	assert.Equal(t, report.VerbosityDefault, verbosityFromFlag())

	verboseFlag = true
	defer func() { verboseFlag = false }()
	assert.Equal(t, report.VerbosityVerbose, verbosityFromFlag())
}

func TestWriteShakeReportToCustomWriterViaFormatter(t *testing.T) {
	e := reach.New(reach.ModeConservative)
	e.Add(reach.Clazz{InternalName: "Root"}, true)
	result := report.NewShakeResult(e, 0, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, report.NewJSONFormatterWithWriter(&buf).Format(result, "test"))
	assert.Contains(t, buf.String(), "\"mode\": \"conservative\"")
}
