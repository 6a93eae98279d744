package compiler

import (
	"bytes"
	"errors"
	"testing"

	"zc/pkg/asm"
	"zc/pkg/opcode"
)

func mustAssemble(t *testing.T, text string) []byte {
	t.Helper()
	code, err := asm.Assemble(text)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return code
}

func emitSource(t *testing.T, src string) ([]byte, *RegisterAllocator, error) {
	t.Helper()
	nodes, err := parse(t, src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	var buf bytes.Buffer
	regs := NewRegisterAllocator()
	em := NewEmitter(&buf, regs)
	err = em.EmitProgram(nodes)
	if em.Len() != buf.Len() {
		t.Errorf("Len() = %d, wrote %d bytes", em.Len(), buf.Len())
	}
	return buf.Bytes(), regs, err
}

func TestEmitSingleIntLiteral(t *testing.T) {
	var buf bytes.Buffer
	regs := NewRegisterAllocator()
	em := NewEmitter(&buf, regs)

	r, err := em.Emit(&IntLiteral{Value: 42, At: Pos{1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if r != opcode.W0 {
		t.Errorf("result register = %v, want W0", r)
	}
	code := buf.Bytes()
	if len(code) != 6 || em.Len() != 6 {
		t.Fatalf("emitted %d bytes (Len %d), want one 6-byte instruction", len(code), em.Len())
	}
	in, _, err := opcode.Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	if in.Op != opcode.MOVW || in.A != r || int32(in.Imm) != 42 {
		t.Errorf("instruction = %v, want MOVW W0, 42", in)
	}
	if got := int32(opcode.ByteOrder.Uint32(code[2:])); got != 42 {
		t.Errorf("immediate bytes decode to %d", got)
	}
	// The caller still owns the result register.
	if regs.ActiveWords() != 1 {
		t.Errorf("ActiveWords = %d, want 1", regs.ActiveWords())
	}
}

func TestEmitProgram(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"int", "42", "MOVW W0, 42"},
		{"negative hex", "0xFFFFFFFF", "MOVW W0, -1"},
		{"precedence", "2 + 3 * 4", `
			MOVW W0, 2
			MOVW W1, 3
			MOVW W2, 4
			MULW W1, W2
			ADDW W0, W1`},
		{"left associative", "8 - 4 - 2", `
			MOVW W0, 8
			MOVW W1, 4
			SUBW W0, W1
			MOVW W1, 2
			SUBW W0, W1`},
		{"int to float", "1 + 2.5", `
			MOVW W0, 1
			ITOF W0
			MOVF W1, 2.5
			ADDF W0, W1`},
		{"char to int", "'a' + 1", `
			MOVB B0, 97
			BTOW W0, B0
			MOVW W1, 1
			ADDW W0, W1`},
		{"bool to float", "true * 2.5", `
			MOVB B0, 1
			BTOF W0, B0
			MOVF W1, 2.5
			MULF W0, W1`},
		{"bool to char", "'a' + true", `
			MOVB B0, 97
			MOVB B1, 1
			ADDB B0, B1`},
		{"bools add as ints", "true + false", `
			MOVB B0, 1
			BTOW W0, B0
			MOVB B0, 0
			BTOW W1, B0
			ADDW W0, W1`},
		{"float division", "1.5 / 0.5", `
			MOVF W0, 1.5
			MOVF W1, 0.5
			DIVF W0, W1`},
		{"results are released", "1 2", `
			MOVW W0, 1
			MOVW W0, 2`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, regs, err := emitSource(t, tc.src)
			if err != nil {
				t.Fatalf("EmitProgram(%q) error = %v", tc.src, err)
			}
			want := mustAssemble(t, tc.want)
			if !bytes.Equal(got, want) {
				gotText, _ := asm.Format(got)
				t.Errorf("EmitProgram(%q) =\n%s\nwant\n%s", tc.src, gotText, tc.want)
			}
			if regs.ActiveWords() != 0 || regs.ActiveBytes() != 0 {
				t.Errorf("registers left active: %d words, %d bytes", regs.ActiveWords(), regs.ActiveBytes())
			}
		})
	}
}

func TestEmitRegisterPressure(t *testing.T) {
	// Each nested right operand holds one more word register.
	fits := "1 + (2 + (3 + (4 + (5 + (6 + (7 + 8))))))"
	if _, _, err := emitSource(t, fits); err != nil {
		t.Fatalf("%d registers should be enough: %v", opcode.NumWordRegisters, err)
	}

	_, _, err := emitSource(t, "1 + (2 + (3 + (4 + (5 + (6 + (7 + (8 + 9)))))))")
	wantError(t, err, ErrOutOfRegisters, Pos{1, 40})
}

func TestEmitUnsupported(t *testing.T) {
	tests := []struct {
		src string
		pos Pos
	}{
		{"x", Pos{1, 1}},
		{"1 [2]", Pos{1, 3}},
		{"1 ;", Pos{1, 3}},
		{`"str"`, Pos{1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			_, _, err := emitSource(t, tc.src)
			wantError(t, err, ErrUnsupportedNode, tc.pos)
		})
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestEmitWriteError(t *testing.T) {
	em := NewEmitter(failingWriter{}, NewRegisterAllocator())
	_, err := em.Emit(&IntLiteral{Value: 1})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("error = %v, want it to wrap %v", err, errDiskFull)
	}
	var ce *Error
	if errors.As(err, &ce) {
		t.Errorf("write failure reported as compiler error %v", ce)
	}
}
