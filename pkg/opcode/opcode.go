// Package opcode defines the instruction contract between the compiler and
// the Z virtual machine: opcode numbers, register ids and the byte layout of
// every instruction shape.
//
// An instruction is a 1-byte opcode followed by its operands, packed with no
// padding. Register ids are single bytes; immediate words are 4 bytes in the
// host's native byte order.
package opcode

import (
	"encoding/binary"
	"fmt"
)

// Op is a 1-byte instruction tag.
type Op byte

const (
	HLT Op = 0x00

	// Literal moves
	MOVW Op = 0x01 // MOVW Wd, imm32   integer word
	MOVF Op = 0x02 // MOVF Wd, imm32   IEEE-754 single
	MOVB Op = 0x03 // MOVB Bd, imm8    bool or char

	// Conversions
	ITOF Op = 0x04 // ITOF Wd          int word -> float word, in place
	BTOW Op = 0x05 // BTOW Wd, Bs      zero-extend byte -> int word
	BTOF Op = 0x06 // BTOF Wd, Bs      byte -> float word

	// Integer word arithmetic: Wd = Wd op Ws
	ADDW Op = 0x10
	SUBW Op = 0x11
	MULW Op = 0x12
	DIVW Op = 0x13

	// Float word arithmetic: Wd = Wd op Ws
	ADDF Op = 0x14
	SUBF Op = 0x15
	MULF Op = 0x16
	DIVF Op = 0x17

	// Byte arithmetic: Bd = Bd op Bs
	ADDB Op = 0x18
	SUBB Op = 0x19
	MULB Op = 0x1A
	DIVB Op = 0x1B
)

// Shape describes which operands follow an opcode.
type Shape int

const (
	ShapeNone     Shape = iota // op
	ShapeReg                   // op reg
	ShapeRegReg                // op reg reg
	ShapeRegImm32              // op reg imm32
	ShapeRegImm8               // op reg imm8
)

// Len is the encoded size in bytes of an instruction with this shape.
func (s Shape) Len() int {
	switch s {
	case ShapeNone:
		return 1
	case ShapeReg:
		return 2
	case ShapeRegReg:
		return 3
	case ShapeRegImm32:
		return 6
	case ShapeRegImm8:
		return 3
	}
	return 0
}

type info struct {
	name  string
	shape Shape
}

var ops = map[Op]info{
	HLT:  {"HLT", ShapeNone},
	MOVW: {"MOVW", ShapeRegImm32},
	MOVF: {"MOVF", ShapeRegImm32},
	MOVB: {"MOVB", ShapeRegImm8},
	ITOF: {"ITOF", ShapeReg},
	BTOW: {"BTOW", ShapeRegReg},
	BTOF: {"BTOF", ShapeRegReg},
	ADDW: {"ADDW", ShapeRegReg},
	SUBW: {"SUBW", ShapeRegReg},
	MULW: {"MULW", ShapeRegReg},
	DIVW: {"DIVW", ShapeRegReg},
	ADDF: {"ADDF", ShapeRegReg},
	SUBF: {"SUBF", ShapeRegReg},
	MULF: {"MULF", ShapeRegReg},
	DIVF: {"DIVF", ShapeRegReg},
	ADDB: {"ADDB", ShapeRegReg},
	SUBB: {"SUBB", ShapeRegReg},
	MULB: {"MULB", ShapeRegReg},
	DIVB: {"DIVB", ShapeRegReg},
}

var byName = func() map[string]Op {
	m := make(map[string]Op, len(ops))
	for op, in := range ops {
		m[in.name] = op
	}
	return m
}()

// Valid reports whether op is part of the instruction set.
func (op Op) Valid() bool {
	_, ok := ops[op]
	return ok
}

func (op Op) String() string {
	if in, ok := ops[op]; ok {
		return in.name
	}
	return fmt.Sprintf("Op(0x%02X)", byte(op))
}

// Shape returns the operand layout of op. Unknown opcodes report ShapeNone.
func (op Op) Shape() Shape {
	return ops[op].shape
}

// Lookup maps an upper-case mnemonic to its opcode.
func Lookup(mnemonic string) (Op, bool) {
	op, ok := byName[mnemonic]
	return op, ok
}

// ByteOrder is the layout of immediate words in the instruction stream.
var ByteOrder = binary.NativeEndian
