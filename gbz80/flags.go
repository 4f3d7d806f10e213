package gbz80

import (
	"github.com/ezrec/vcpu/core"
	"github.com/ezrec/vcpu/i8080"
)

// Bit positions of the flags in the F register.
const (
	FLAG_CARRY    = uint8(1 << 4) // C
	FLAG_HALF     = uint8(1 << 5) // H
	FLAG_SUBTRACT = uint8(1 << 6) // N
	FLAG_ZERO     = uint8(1 << 7) // Z
)

// Flags views the shared flag record in the F register layout
// Z N H C 0 0 0 0. Half carry is the 8080 auxiliary carry. Subtract is not
// tracked and always reads as zero; sign and parity have no bits and are
// left alone by Deserialize.
type Flags struct {
	*i8080.Flags
}

var _ core.Flags = Flags{}

func (fl Flags) Serialize() (value uint8) {
	if fl.Zero {
		value |= FLAG_ZERO
	}
	if fl.AuxCarry {
		value |= FLAG_HALF
	}
	if fl.Carry {
		value |= FLAG_CARRY
	}
	return
}

func (fl Flags) Deserialize(value uint8) {
	fl.Zero = (value & FLAG_ZERO) != 0
	fl.AuxCarry = (value & FLAG_HALF) != 0
	fl.Carry = (value & FLAG_CARRY) != 0
}

// GetAF assembles the accumulator and the F register.
func GetAF(s *i8080.State) uint16 {
	return core.AssembleWord(s.Registers.A, Flags{&s.Registers.Flags}.Serialize())
}

// SetAF splits value into the accumulator and the F register.
func SetAF(s *i8080.State, value uint16) {
	high, low := core.SplitWord(value)
	s.Registers.A = high
	Flags{&s.Registers.Flags}.Deserialize(low)
}
