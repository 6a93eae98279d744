package compiler

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text string
		want Number
	}{
		{"0x1A", Number{Int: 26}},
		{"0xff", Number{Int: 255}},
		{"0b101", Number{Int: 5}},
		{"0d19", Number{Int: 19}},
		{"12", Number{Int: 12}},
		{"0", Number{Int: 0}},
		{"07", Number{Int: 7}},
		{"0xFFFFFFFF", Number{Int: -1}},
		{"3.14", Number{IsFloat: true, Float: 3.14}},
		{"0.5", Number{IsFloat: true, Float: 0.5}},
		{"1.", Number{IsFloat: true, Float: 1}},
		{"0x1.8", Number{IsFloat: true, Float: 1.5}},
		{"0b0.01", Number{IsFloat: true, Float: 0.25}},
		{"5000000000.5", Number{IsFloat: true, Float: 5000000000.5}},
		{"0x100000000.8", Number{IsFloat: true, Float: 4294967296.5}},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := ParseNumber(tc.text)
			if err != nil {
				t.Fatalf("ParseNumber(%q) error = %v", tc.text, err)
			}
			if got.IsFloat != tc.want.IsFloat || got.Int != tc.want.Int {
				t.Fatalf("ParseNumber(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
			if math.Abs(float64(got.Float-tc.want.Float)) > 1e-6 {
				t.Errorf("ParseNumber(%q).Float = %v, want %v", tc.text, got.Float, tc.want.Float)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, text := range []string{"", "0b12", "0x", "0b", "0q1", "1a", "9.9a", "4294967296", "99999999999999999999999", "0x1G"} {
		if n, err := ParseNumber(text); err == nil {
			t.Errorf("ParseNumber(%q) = %+v, want error", text, n)
		}
	}
}

func TestCompileWideFloat(t *testing.T) {
	code, err := CompileString("5000000000.5")
	if err != nil {
		t.Fatalf("CompileString error = %v", err)
	}
	want := mustAssemble(t, "MOVF W0, 5000000000.5")
	if string(code) != string(want) {
		t.Errorf("CompileString = % X, want % X", code, want)
	}
}
