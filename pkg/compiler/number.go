package compiler

import (
	"fmt"
	"math"
)

// Number is the parsed value of a numeric literal.
type Number struct {
	IsFloat bool
	Int     int32
	Float   float32
}

// ParseNumber converts the raw text of a numeric literal. The base is 10
// unless the text starts with 0x (16), 0b (2) or 0d (10). Digits above 9 are
// letters, case-insensitive. A '.' switches to fractional mode.
//
// Integers may use the full 32 bits, so 0xFFFFFFFF parses to -1.
func ParseNumber(text string) (Number, error) {
	if text == "" {
		return Number{}, fmt.Errorf("empty number")
	}

	base := uint64(10)
	digits := text
	if text[0] == '0' && len(text) > 1 && !isDecimalDigit(text[1]) {
		switch text[1] {
		case 'x':
			base, digits = 16, text[2:]
		case 'b':
			base, digits = 2, text[2:]
		case 'd':
			digits = text[2:]
		case '.':
			digits = text[1:]
		default:
			return Number{}, fmt.Errorf("unknown base prefix %q", text[:2])
		}
		if digits == "" {
			return Number{}, fmt.Errorf("%q has no digits after its prefix", text)
		}
	}

	// The integer part is kept as a float too, since a fraction may follow
	// a value too wide for 32 bits.
	var whole uint64
	var wholeF float64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '.' {
			return parseFraction(wholeF, digits[i+1:], base)
		}
		d, err := digitValue(c, base)
		if err != nil {
			return Number{}, err
		}
		wholeF = wholeF*float64(base) + float64(d)
		if whole <= math.MaxUint32 {
			whole = whole*base + d
		}
	}
	if whole > math.MaxUint32 {
		return Number{}, fmt.Errorf("%q does not fit in 32 bits", text)
	}
	return Number{Int: int32(uint32(whole))}, nil
}

func parseFraction(total float64, digits string, base uint64) (Number, error) {
	factor := 1.0
	for i := 0; i < len(digits); i++ {
		d, err := digitValue(digits[i], base)
		if err != nil {
			return Number{}, err
		}
		factor *= float64(base)
		total += float64(d) / factor
	}
	return Number{IsFloat: true, Float: float32(total)}, nil
}

func digitValue(c byte, base uint64) (uint64, error) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'A' <= c && c <= 'Z':
		d = uint64(c-'A') + 10
	case 'a' <= c && c <= 'z':
		d = uint64(c-'a') + 10
	default:
		return 0, fmt.Errorf("invalid digit %q", c)
	}
	if d >= base {
		return 0, fmt.Errorf("digit %q out of range for base %d", c, base)
	}
	return d, nil
}

func isDecimalDigit(c byte) bool { return '0' <= c && c <= '9' }
