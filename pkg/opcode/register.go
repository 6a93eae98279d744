package opcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a 1-byte register id as it appears in the instruction stream.
type Register byte

const (
	NumWordRegisters = 8
	NumByteRegisters = 8

	// W0 is the id of the first word register; word ids are contiguous.
	W0 Register = 0x00
	// B0 is the id of the first byte register; byte ids follow the words.
	B0 Register = W0 + NumWordRegisters
)

// Word returns the id of word register i.
func Word(i int) Register { return W0 + Register(i) }

// Byte returns the id of byte register i.
func Byte(i int) Register { return B0 + Register(i) }

// IsWord reports whether r names a 32-bit word register.
func (r Register) IsWord() bool {
	return r >= W0 && r < W0+NumWordRegisters
}

// IsByte reports whether r names an 8-bit byte register.
func (r Register) IsByte() bool {
	return r >= B0 && r < B0+NumByteRegisters
}

func (r Register) String() string {
	switch {
	case r.IsWord():
		return fmt.Sprintf("W%d", r-W0)
	case r.IsByte():
		return fmt.Sprintf("B%d", r-B0)
	}
	return fmt.Sprintf("R?0x%02X", byte(r))
}

// ParseRegister accepts the names produced by Register.String, case-insensitively.
func ParseRegister(s string) (Register, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid register %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid register %q", s)
	}
	switch s[0] {
	case 'W':
		if n >= 0 && n < NumWordRegisters {
			return Word(n), nil
		}
	case 'B':
		if n >= 0 && n < NumByteRegisters {
			return Byte(n), nil
		}
	}
	return 0, fmt.Errorf("invalid register %q", s)
}
