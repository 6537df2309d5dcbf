// Package output provides termenv outputs with consistent color handling and
// a small printer for command results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mountbar/internal/ui/style"
)

// ColorProfile returns the color profile for the current environment.
// NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output bound to w using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Printer writes command results either as styled lines or as JSON documents.
type Printer struct {
	out  *termenv.Output
	json bool
}

// NewPrinter creates a Printer writing to w. A nil writer means os.Stdout.
func NewPrinter(w io.Writer, jsonMode bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: New(w), json: jsonMode}
}

// JSONMode reports whether results should be rendered as JSON.
func (p *Printer) JSONMode() bool {
	return p.json
}

// JSON writes v as an indented JSON document.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Line writes a plain line.
func (p *Printer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Styled writes icon and msg in the given color.
func (p *Printer) Styled(icon, msg string, color lipgloss.Color) {
	text := msg
	if icon != "" {
		text = icon + " " + msg
	}
	styled := p.out.String(text).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}

// Success writes a green check line.
func (p *Printer) Success(msg string) {
	p.Styled(style.Check, msg, style.Green)
}

// Field writes an indented "label: value" line.
func (p *Printer) Field(label, value string) {
	p.Line("  %s: %s", label, value)
}
