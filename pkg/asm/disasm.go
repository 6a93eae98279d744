package asm

import (
	"fmt"
	"strings"

	"zc/pkg/opcode"
)

// Line is one decoded instruction and its byte offset in the stream.
type Line struct {
	Offset int
	Instr  opcode.Instruction
}

// Disassemble decodes a complete instruction stream.
func Disassemble(code []byte) ([]Line, error) {
	var lines []Line
	for off := 0; off < len(code); {
		in, n, err := opcode.Decode(code[off:])
		if err != nil {
			return lines, fmt.Errorf("offset %d: %w", off, err)
		}
		lines = append(lines, Line{Offset: off, Instr: in})
		off += n
	}
	return lines, nil
}

// Format renders code as assembler text, one instruction per line, prefixed
// by its byte offset. The output assembles back to the same bytes.
func Format(code []byte) (string, error) {
	lines, err := Disassemble(code)
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "%-16s ; %04d\n", l.Instr, l.Offset)
	}
	return sb.String(), err
}
