package opcode

import (
	"fmt"
	"math"
)

// Instruction is one decoded instruction. Fields not used by the opcode's
// shape are zero.
type Instruction struct {
	Op  Op
	A   Register
	B   Register
	Imm uint32
}

// Len is the encoded size of in.
func (in Instruction) Len() int {
	return in.Op.Shape().Len()
}

func (in Instruction) String() string {
	switch in.Op.Shape() {
	case ShapeReg:
		return fmt.Sprintf("%-4s %s", in.Op, in.A)
	case ShapeRegReg:
		return fmt.Sprintf("%-4s %s, %s", in.Op, in.A, in.B)
	case ShapeRegImm32:
		if in.Op == MOVF {
			return fmt.Sprintf("%-4s %s, %g", in.Op, in.A, math.Float32frombits(in.Imm))
		}
		return fmt.Sprintf("%-4s %s, %d", in.Op, in.A, int32(in.Imm))
	case ShapeRegImm8:
		return fmt.Sprintf("%-4s %s, %d", in.Op, in.A, byte(in.Imm))
	}
	return in.Op.String()
}

// Encode appends the byte form of in to dst.
func Encode(dst []byte, in Instruction) []byte {
	dst = append(dst, byte(in.Op))
	switch in.Op.Shape() {
	case ShapeReg:
		dst = append(dst, byte(in.A))
	case ShapeRegReg:
		dst = append(dst, byte(in.A), byte(in.B))
	case ShapeRegImm32:
		dst = append(dst, byte(in.A))
		dst = ByteOrder.AppendUint32(dst, in.Imm)
	case ShapeRegImm8:
		dst = append(dst, byte(in.A), byte(in.Imm))
	}
	return dst
}

// Decode reads one instruction from the start of code and returns it with
// its encoded length.
func Decode(code []byte) (Instruction, int, error) {
	if len(code) == 0 {
		return Instruction{}, 0, fmt.Errorf("decode: empty input")
	}
	op := Op(code[0])
	if !op.Valid() {
		return Instruction{}, 0, fmt.Errorf("decode: unknown opcode 0x%02X", code[0])
	}
	n := op.Shape().Len()
	if len(code) < n {
		return Instruction{}, 0, fmt.Errorf("decode: %s needs %d bytes, have %d", op, n, len(code))
	}

	in := Instruction{Op: op}
	switch op.Shape() {
	case ShapeReg:
		in.A = Register(code[1])
	case ShapeRegReg:
		in.A = Register(code[1])
		in.B = Register(code[2])
	case ShapeRegImm32:
		in.A = Register(code[1])
		in.Imm = ByteOrder.Uint32(code[2:6])
	case ShapeRegImm8:
		in.A = Register(code[1])
		in.Imm = uint32(code[2])
	}
	return in, n, nil
}
