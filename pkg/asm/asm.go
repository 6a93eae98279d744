// Package asm converts between the Z instruction stream and a line-oriented
// text form:
//
//	MOVW W0, 2     ; comment
//	MOVF W1, 2.5
//	ADDF W1, W0
//
// The text form is what the compiler's debug trace prints, and what tests use
// to spell out expected bytecode.
package asm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"zc/pkg/opcode"
)

type parsedLine struct {
	lineNo   int
	mnemonic string
	operands []string
}

// Assemble encodes assembler text into the binary instruction stream.
func Assemble(code string) ([]byte, error) {
	program := make([]byte, 0)

	for i, raw := range strings.Split(code, "\n") {
		lineNo := i + 1
		p, err := parseLine(raw, lineNo)
		if err != nil {
			return nil, err
		}
		if p.mnemonic == "" {
			continue
		}

		in, err := p.instruction()
		if err != nil {
			return nil, err
		}
		program = opcode.Encode(program, in)
	}

	return program, nil
}

func (p parsedLine) instruction() (opcode.Instruction, error) {
	op, ok := opcode.Lookup(p.mnemonic)
	if !ok {
		return opcode.Instruction{}, fmt.Errorf("unknown instruction on line %d: %s", p.lineNo, p.mnemonic)
	}

	want := operandCount(op.Shape())
	if len(p.operands) != want {
		return opcode.Instruction{}, fmt.Errorf("%s expects %d operands on line %d", p.mnemonic, want, p.lineNo)
	}

	in := opcode.Instruction{Op: op}
	if want == 0 {
		return in, nil
	}

	regA, err := parseRegister(p.operands[0], p.lineNo)
	if err != nil {
		return in, err
	}
	in.A = regA

	switch op.Shape() {
	case opcode.ShapeRegReg:
		regB, err := parseRegister(p.operands[1], p.lineNo)
		if err != nil {
			return in, err
		}
		in.B = regB
	case opcode.ShapeRegImm32:
		imm, err := parseImmediate32(op, p.operands[1], p.lineNo)
		if err != nil {
			return in, err
		}
		in.Imm = imm
	case opcode.ShapeRegImm8:
		v, err := strconv.ParseUint(p.operands[1], 0, 8)
		if err != nil {
			return in, fmt.Errorf("invalid byte immediate '%s' on line %d", p.operands[1], p.lineNo)
		}
		in.Imm = uint32(v)
	}
	return in, nil
}

func operandCount(s opcode.Shape) int {
	switch s {
	case opcode.ShapeReg:
		return 1
	case opcode.ShapeRegReg, opcode.ShapeRegImm32, opcode.ShapeRegImm8:
		return 2
	}
	return 0
}

func parseLine(raw string, lineNo int) (parsedLine, error) {
	p := parsedLine{lineNo: lineNo}

	line := strings.TrimSpace(stripComments(raw))
	if line == "" {
		return p, nil
	}

	line = normalizeInstructionText(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return p, nil
	}

	p.mnemonic = strings.ToUpper(fields[0])
	if len(fields) > 1 {
		p.operands = fields[1:]
	}
	return p, nil
}

func stripComments(line string) string {
	semicolon := strings.Index(line, ";")
	doubleSlash := strings.Index(line, "//")

	cut := -1
	if semicolon >= 0 {
		cut = semicolon
	}
	if doubleSlash >= 0 && (cut == -1 || doubleSlash < cut) {
		cut = doubleSlash
	}
	if cut >= 0 {
		return line[:cut]
	}
	return line
}

func normalizeInstructionText(line string) string {
	return strings.ReplaceAll(line, ",", " ")
}

func parseRegister(token string, lineNo int) (opcode.Register, error) {
	r, err := opcode.ParseRegister(token)
	if err != nil {
		return 0, fmt.Errorf("invalid register '%s' on line %d", token, lineNo)
	}
	return r, nil
}

// parseImmediate32 reads a signed or unsigned 32-bit integer for MOVW and a
// float for MOVF.
func parseImmediate32(op opcode.Op, token string, lineNo int) (uint32, error) {
	if op == opcode.MOVF {
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid float immediate '%s' on line %d", token, lineNo)
		}
		return math.Float32bits(float32(f)), nil
	}
	if v, err := strconv.ParseInt(token, 0, 32); err == nil {
		return uint32(int32(v)), nil
	}
	if v, err := strconv.ParseUint(token, 0, 32); err == nil {
		return uint32(v), nil
	}
	return 0, fmt.Errorf("invalid immediate '%s' on line %d", token, lineNo)
}
