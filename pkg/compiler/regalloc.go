package compiler

import "zc/pkg/opcode"

// RegisterAllocator hands out word and byte registers, lowest free index
// first. There is no spilling: running out is an error.
type RegisterAllocator struct {
	words [opcode.NumWordRegisters]bool
	bytes [opcode.NumByteRegisters]bool
}

func NewRegisterAllocator() *RegisterAllocator {
	return &RegisterAllocator{}
}

func (ra *RegisterAllocator) GetWord() (opcode.Register, error) {
	i, err := claim(ra.words[:])
	if err != nil {
		return 0, err
	}
	return opcode.Word(i), nil
}

func (ra *RegisterAllocator) GetByte() (opcode.Register, error) {
	i, err := claim(ra.bytes[:])
	if err != nil {
		return 0, err
	}
	return opcode.Byte(i), nil
}

// FreeWord releases r. Releasing a register that is not an active word
// register is an internal error.
func (ra *RegisterAllocator) FreeWord(r opcode.Register) error {
	if !r.IsWord() {
		return errorf(ErrUnknown, Pos{}, "free word: %s is not a word register", r)
	}
	return release(ra.words[:], int(r-opcode.W0), r)
}

// FreeByte releases r. Releasing a register that is not an active byte
// register is an internal error.
func (ra *RegisterAllocator) FreeByte(r opcode.Register) error {
	if !r.IsByte() {
		return errorf(ErrUnknown, Pos{}, "free byte: %s is not a byte register", r)
	}
	return release(ra.bytes[:], int(r-opcode.B0), r)
}

// Free releases r from whichever pool it belongs to.
func (ra *RegisterAllocator) Free(r opcode.Register) error {
	if r.IsByte() {
		return ra.FreeByte(r)
	}
	return ra.FreeWord(r)
}

// ActiveWords returns the number of word registers in use.
func (ra *RegisterAllocator) ActiveWords() int { return count(ra.words[:]) }

// ActiveBytes returns the number of byte registers in use.
func (ra *RegisterAllocator) ActiveBytes() int { return count(ra.bytes[:]) }

func claim(pool []bool) (int, error) {
	for i, active := range pool {
		if !active {
			pool[i] = true
			return i, nil
		}
	}
	return 0, errorf(ErrOutOfRegisters, Pos{}, "all %d registers are active", len(pool))
}

func release(pool []bool, i int, r opcode.Register) error {
	if !pool[i] {
		return errorf(ErrUnknown, Pos{}, "register %s freed while not active", r)
	}
	pool[i] = false
	return nil
}

func count(pool []bool) int {
	n := 0
	for _, active := range pool {
		if active {
			n++
		}
	}
	return n
}
