package opcode

import (
	"math"
	"reflect"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		in   Instruction
		len  int
	}{
		{"halt", Instruction{Op: HLT}, 1},
		{"in place", Instruction{Op: ITOF, A: Word(3)}, 2},
		{"two registers", Instruction{Op: ADDB, A: Byte(0), B: Byte(1)}, 3},
		{"word immediate", Instruction{Op: MOVW, A: Word(0), Imm: uint32(0xDEADBEEF)}, 6},
		{"float immediate", Instruction{Op: MOVF, A: Word(7), Imm: math.Float32bits(2.5)}, 6},
		{"byte immediate", Instruction{Op: MOVB, A: Byte(2), Imm: 'z'}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code := Encode(nil, tc.in)
			if len(code) != tc.len || tc.in.Len() != tc.len {
				t.Fatalf("encoded length = %d (Len %d), want %d", len(code), tc.in.Len(), tc.len)
			}
			if code[0] != byte(tc.in.Op) {
				t.Errorf("first byte = 0x%02X, want opcode 0x%02X", code[0], byte(tc.in.Op))
			}
			got, n, err := Decode(code)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if n != tc.len || !reflect.DeepEqual(got, tc.in) {
				t.Errorf("Decode = %+v (%d bytes), want %+v (%d bytes)", got, n, tc.in, tc.len)
			}
		})
	}
}

func TestMOVWImmediateUsesNativeOrder(t *testing.T) {
	code := Encode(nil, Instruction{Op: MOVW, A: Word(1), Imm: 42})
	if got := int32(ByteOrder.Uint32(code[2:])); got != 42 {
		t.Errorf("immediate = %d, want 42", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := Decode(nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := Decode([]byte{0xFF}); err == nil {
		t.Error("expected error for unknown opcode")
	}
	if _, _, err := Decode([]byte{byte(MOVW), 0x00, 0x01}); err == nil {
		t.Error("expected error for truncated immediate")
	}
}

func TestRegisters(t *testing.T) {
	if B0 != Register(NumWordRegisters) {
		t.Fatalf("B0 = %d, want %d", B0, NumWordRegisters)
	}
	for i := 0; i < NumWordRegisters; i++ {
		r := Word(i)
		if !r.IsWord() || r.IsByte() {
			t.Errorf("Word(%d) = %v classified wrongly", i, r)
		}
		back, err := ParseRegister(r.String())
		if err != nil || back != r {
			t.Errorf("ParseRegister(%q) = %v, %v", r.String(), back, err)
		}
	}
	for i := 0; i < NumByteRegisters; i++ {
		r := Byte(i)
		if !r.IsByte() || r.IsWord() {
			t.Errorf("Byte(%d) = %v classified wrongly", i, r)
		}
		back, err := ParseRegister(r.String())
		if err != nil || back != r {
			t.Errorf("ParseRegister(%q) = %v, %v", r.String(), back, err)
		}
	}
	for _, bad := range []string{"", "R0", "W8", "B9", "Wx"} {
		if _, err := ParseRegister(bad); err == nil {
			t.Errorf("ParseRegister(%q) succeeded, want error", bad)
		}
	}
}

func TestLookup(t *testing.T) {
	op, ok := Lookup("MULF")
	if !ok || op != MULF {
		t.Errorf("Lookup(MULF) = %v, %v", op, ok)
	}
	if _, ok := Lookup("JMP"); ok {
		t.Error("Lookup(JMP) should fail")
	}
	if Op(0xEE).Valid() {
		t.Error("0xEE should not be a valid opcode")
	}
}
