package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Run the tests
	os.Exit(m.Run())
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name         string
		expectedExit int
	}{
		{
			name:         "Successful execution",
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Redirect stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			// Run main as a bare `robovm` invocation rather than with
			// the test binary's own -test.* flags.
			oldArgs := os.Args
			os.Args = []string{"robovm"}
			defer func() { os.Args = oldArgs }()

			// Swap osExit for parity only; main calls os.Exit directly.
			oldOsExit := osExit
			var exitCode int
			osExit = func(code int) {
				exitCode = code
			}
			defer func() { osExit = oldOsExit }()

			// Call main
			main()

			// Restore stdout
			w.Close()
			os.Stdout = oldStdout
			var buf bytes.Buffer
			buf.ReadFrom(r)

			// Assert
			output := buf.String()
			assert.Contains(t, output, "Available Commands:")
			assert.Contains(t, output, "shake")
			assert.Contains(t, output, "strip")
			_ = exitCode
			_ = tt.expectedExit
		})
	}
}

// Mock for os.Exit.
var osExit = os.Exit
