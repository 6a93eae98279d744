package compiler

import (
	"errors"
	"fmt"
	"io"
	"math"

	"zc/pkg/opcode"
)

// Emitter writes bytecode for expression trees. Ints and floats live in
// word registers, bools and chars in byte registers.
type Emitter struct {
	w    io.Writer
	regs *RegisterAllocator
	n    int // bytes written so far
	buf  []byte
}

// NewEmitter returns an Emitter writing to w. The allocator is shared with
// the caller, who sees every register the emitter still holds.
func NewEmitter(w io.Writer, regs *RegisterAllocator) *Emitter {
	return &Emitter{w: w, regs: regs, buf: make([]byte, 0, 8)}
}

// Len is the number of bytes written so far.
func (e *Emitter) Len() int { return e.n }

// EmitProgram emits every top-level expression in order. Each result is
// released as soon as it has been computed.
func (e *Emitter) EmitProgram(nodes []Node) error {
	for _, n := range nodes {
		r, err := e.Emit(n)
		if err != nil {
			return err
		}
		if err := e.regs.Free(r); err != nil {
			return err
		}
	}
	return nil
}

// Emit writes the code for n in post-order and returns the register that
// holds its value. The caller owns that register.
func (e *Emitter) Emit(n Node) (opcode.Register, error) {
	r, err := e.emit(n)
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) && ce.Pos == (Pos{}) {
			ce.Pos = n.Pos()
		}
		return 0, err
	}
	return r, nil
}

func (e *Emitter) emit(n Node) (opcode.Register, error) {
	switch n := n.(type) {
	case *IntLiteral:
		return e.load(e.regs.GetWord, opcode.MOVW, uint32(n.Value))
	case *FloatLiteral:
		return e.load(e.regs.GetWord, opcode.MOVF, math.Float32bits(n.Value))
	case *BoolLiteral:
		var v uint32
		if n.Value {
			v = 1
		}
		return e.load(e.regs.GetByte, opcode.MOVB, v)
	case *CharLiteral:
		return e.load(e.regs.GetByte, opcode.MOVB, uint32(n.Value))
	case *Cast:
		return e.emitCast(n)
	case *Binop:
		return e.emitBinop(n)
	}
	return 0, errorf(ErrUnsupportedNode, n.Pos(), "%s", n)
}

func (e *Emitter) load(get func() (opcode.Register, error), op opcode.Op, imm uint32) (opcode.Register, error) {
	r, err := get()
	if err != nil {
		return 0, err
	}
	return r, e.write(opcode.Instruction{Op: op, A: r, Imm: imm})
}

func (e *Emitter) emitCast(c *Cast) (opcode.Register, error) {
	src, err := e.Emit(c.X)
	if err != nil {
		return 0, err
	}
	from := c.From()
	switch {
	case from == c.To:
		return src, nil
	case from == TypeInt && c.To == TypeFloat:
		return src, e.write(opcode.Instruction{Op: opcode.ITOF, A: src})
	case (from == TypeChar || from == TypeBool) && c.To == TypeInt:
		return e.widen(opcode.BTOW, src)
	case (from == TypeChar || from == TypeBool) && c.To == TypeFloat:
		return e.widen(opcode.BTOF, src)
	case from == TypeBool && c.To == TypeChar:
		return src, nil
	}
	return 0, errorf(ErrUnknown, c.Pos(), "no conversion from %s to %s", from, c.To)
}

// widen moves byte register src into a new word register with op.
func (e *Emitter) widen(op opcode.Op, src opcode.Register) (opcode.Register, error) {
	dst, err := e.regs.GetWord()
	if err != nil {
		return 0, err
	}
	if err := e.write(opcode.Instruction{Op: op, A: dst, B: src}); err != nil {
		return 0, err
	}
	return dst, e.regs.FreeByte(src)
}

var arithOps = map[ExprType][4]opcode.Op{
	TypeInt:   {opcode.ADDW, opcode.SUBW, opcode.MULW, opcode.DIVW},
	TypeFloat: {opcode.ADDF, opcode.SUBF, opcode.MULF, opcode.DIVF},
	TypeChar:  {opcode.ADDB, opcode.SUBB, opcode.MULB, opcode.DIVB},
}

// emitBinop computes the result into the left operand's register.
func (e *Emitter) emitBinop(b *Binop) (opcode.Register, error) {
	ops, ok := arithOps[b.T]
	if !ok {
		return 0, errorf(ErrUnknown, b.Pos(), "no %s instruction for type %s", b.Op, b.T)
	}
	left, err := e.Emit(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.Emit(b.Right)
	if err != nil {
		return 0, err
	}
	if err := e.write(opcode.Instruction{Op: ops[b.Op], A: left, B: right}); err != nil {
		return 0, err
	}
	return left, e.regs.Free(right)
}

func (e *Emitter) write(in opcode.Instruction) error {
	e.buf = opcode.Encode(e.buf[:0], in)
	n, err := e.w.Write(e.buf)
	e.n += n
	if err != nil {
		return fmt.Errorf("write %s: %w", in.Op, err)
	}
	return nil
}
