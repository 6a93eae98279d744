// Package console colours driver output when it goes to a terminal.
package console

import (
	"os"

	"github.com/xyproto/env/v2"
)

// Color is an ANSI SGR escape sequence.
type Color string

const (
	Reset  Color = "\x1b[0m"
	Bold   Color = "\x1b[1m"
	Red    Color = "\x1b[31m"
	Green  Color = "\x1b[32m"
	Yellow Color = "\x1b[33m"
	Cyan   Color = "\x1b[36m"
)

// Palette paints strings, or leaves them alone when disabled.
type Palette struct {
	enabled bool
}

// New returns a Palette that colours only if enabled is true.
func New(enabled bool) Palette { return Palette{enabled: enabled} }

// For returns a Palette for output written to f: coloured when f is a
// terminal and NO_COLOR is not set.
func For(f *os.File) Palette {
	env.Load()
	return New(!env.Has("NO_COLOR") && IsTerminal(f.Fd()))
}

// Enabled reports whether p emits escape sequences.
func (p Palette) Enabled() bool { return p.enabled }

func (p Palette) Paint(c Color, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return string(c) + s + string(Reset)
}

func (p Palette) Red(s string) string    { return p.Paint(Red, s) }
func (p Palette) Green(s string) string  { return p.Paint(Green, s) }
func (p Palette) Yellow(s string) string { return p.Paint(Yellow, s) }
func (p Palette) Cyan(s string) string   { return p.Paint(Cyan, s) }
func (p Palette) Bold(s string) string   { return p.Paint(Bold, s) }
