package detector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mountbar/internal/adapters/detector"
)

// fdWriter stands in for a file-backed stream such as os.Stdout.
type fdWriter struct {
	bytes.Buffer
}

func (*fdWriter) Fd() uintptr { return 1 }

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		ci       string
		terminal bool
		expected detector.OutputMode
	}{
		{name: "CI=true forces JSON", ci: "true", terminal: true, expected: detector.ModeJSON},
		{name: "CI=1 forces JSON", ci: "1", terminal: true, expected: detector.ModeJSON},
		{name: "CI=false on a terminal", ci: "false", terminal: true, expected: detector.ModeText},
		{name: "terminal without CI", terminal: true, expected: detector.ModeText},
		{name: "redirected stdout", terminal: false, expected: detector.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFD int
			d := detector.New(
				detector.WithEnv(env(map[string]string{"CI": tt.ci})),
				detector.WithTerminal(func(fd int) bool {
					gotFD = fd
					return tt.terminal
				}),
			)

			mode := d.Detect(new(fdWriter))

			assert.Equal(t, tt.expected, mode)
			if tt.ci != "true" && tt.ci != "1" {
				assert.Equal(t, 1, gotFD)
			}
		})
	}
}

func TestDetector_DetectInMemoryWriter(t *testing.T) {
	d := detector.New(
		detector.WithEnv(env(nil)),
		detector.WithTerminal(func(int) bool {
			t.Fatal("terminal check on a writer without a descriptor")
			return true
		}),
	)

	assert.Equal(t, detector.ModeJSON, d.Detect(new(bytes.Buffer)))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		expected detector.OutputMode
	}{
		{name: "auto keeps text", detected: detector.ModeText, flag: "auto", expected: detector.ModeText},
		{name: "auto keeps json", detected: detector.ModeJSON, flag: "auto", expected: detector.ModeJSON},
		{name: "empty keeps detection", detected: detector.ModeText, flag: "", expected: detector.ModeText},
		{name: "text overrides CI", detected: detector.ModeJSON, flag: "text", expected: detector.ModeText},
		{name: "json overrides terminal", detected: detector.ModeText, flag: "json", expected: detector.ModeJSON},
		{name: "unknown keeps detection", detected: detector.ModeJSON, flag: "yaml", expected: detector.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
