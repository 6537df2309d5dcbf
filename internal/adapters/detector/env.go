// Package detector picks text or JSON output from the environment mountbar runs in.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how results and diagnostics are rendered.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeText renders styled, human-readable output.
	ModeText
	// ModeJSON renders machine-readable JSON.
	ModeJSON
)

// Detector inspects the process environment and the output stream.
type Detector struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithEnv replaces the environment lookup.
func WithEnv(getenv func(string) string) Option {
	return func(d *Detector) {
		d.getenv = getenv
	}
}

// WithTerminal replaces the terminal check.
func WithTerminal(isTerminal func(fd int) bool) Option {
	return func(d *Detector) {
		d.isTerminal = isTerminal
	}
}

// New creates a Detector reading the real environment.
func New(opts ...Option) *Detector {
	d := &Detector{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns ModeJSON when CI is set or w is not a terminal.
// Writers without a file descriptor count as non-terminals.
func (d *Detector) Detect(w io.Writer) OutputMode {
	ci := d.getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeJSON
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !d.isTerminal(int(f.Fd())) {
		return ModeJSON
	}
	return ModeText
}

// ResolveMode applies the --output flag to the detected mode.
// flag should be one of: "auto", "text", "json", or empty.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "text":
		return ModeText
	case "json":
		return ModeJSON
	default:
		return detected
	}
}
