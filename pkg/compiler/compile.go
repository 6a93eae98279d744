package compiler

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"zc/pkg/asm"
	"zc/pkg/config"
)

// Compile reads Z source from r and writes its bytecode to w, returning the
// number of bytes written. With FlagDebug set every stage is printed to
// trace; with FlagProfile each stage's duration is. A nil trace disables
// both.
func Compile(r io.Reader, w io.Writer, flags config.Flags, trace io.Writer) (int, error) {
	if trace == nil {
		trace = io.Discard
		flags = 0
	}
	debug := flags.Has(config.FlagDebug)
	prof := newProfiler(trace, flags.Has(config.FlagProfile))

	lexer, err := newLexerFrom(r)
	if err != nil {
		return 0, err
	}
	if debug {
		fmt.Fprintln(trace, "== tokens ==")
		lexer.SetTrace(trace)
	}
	ts, err := lexer.Tokenize()
	if err != nil {
		return 0, err
	}
	prof.mark("lex")

	nodes, err := Parse(ts)
	if err != nil {
		return 0, err
	}
	prof.mark("parse")
	if debug {
		fmt.Fprintln(trace, "== ast ==")
		PrintAST(trace, nodes)
	}

	var listing bytes.Buffer
	out := w
	if debug {
		out = io.MultiWriter(w, &listing)
	}
	regs := NewRegisterAllocator()
	em := NewEmitter(out, regs)
	if err := em.EmitProgram(nodes); err != nil {
		return em.Len(), err
	}
	prof.mark("emit")

	if debug {
		fmt.Fprintln(trace, "== bytecode ==")
		text, err := asm.Format(listing.Bytes())
		if err != nil {
			return em.Len(), fmt.Errorf("disassemble: %w", err)
		}
		io.WriteString(trace, text)
	}
	prof.total()
	return em.Len(), nil
}

// CompileString compiles src with no tracing.
func CompileString(src string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compile(strings.NewReader(src), &buf, 0, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// profiler prints the time spent in each stage since the previous one.
type profiler struct {
	w     io.Writer
	on    bool
	start time.Time
	last  time.Time
}

func newProfiler(w io.Writer, on bool) *profiler {
	now := time.Now()
	return &profiler{w: w, on: on, start: now, last: now}
}

func (p *profiler) mark(stage string) {
	if !p.on {
		return
	}
	now := time.Now()
	fmt.Fprintf(p.w, "profile: %-6s %v\n", stage, now.Sub(p.last))
	p.last = now
}

func (p *profiler) total() {
	if p.on {
		fmt.Fprintf(p.w, "profile: %-6s %v\n", "total", time.Since(p.start))
	}
}
