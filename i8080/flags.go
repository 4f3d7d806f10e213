package i8080

import (
	"math/bits"

	"github.com/ezrec/vcpu/core"
)

// Bit positions of the flags in the processor status word.
const (
	FLAG_CARRY  = uint8(1 << 0) // CY
	FLAG_ONE    = uint8(1 << 1) // Always set in the PSW.
	FLAG_PARITY = uint8(1 << 2) // P
	FLAG_AUX    = uint8(1 << 4) // AC
	FLAG_ZERO   = uint8(1 << 6) // Z
	FLAG_SIGN   = uint8(1 << 7) // S
)

// Flags is the 8080 condition code record.
type Flags struct {
	Zero     bool // Result was zero.
	Sign     bool // Bit 7 of the result was set.
	Parity   bool // Result had an even number of set bits.
	Carry    bool // Carry out of (or borrow into) bit 7.
	AuxCarry bool // Carry out of bit 3.
}

var _ core.Flags = (*Flags)(nil)

// SetZeroSignParity derives the zero, sign and parity flags from an 8-bit
// result. Carry and auxiliary carry are left alone.
func (fl *Flags) SetZeroSignParity(result uint8) {
	fl.Zero = result == 0
	fl.Sign = (result & 0x80) != 0
	fl.Parity = (bits.OnesCount8(result) & 1) == 0
}

// Serialize packs the flags into the PSW layout S Z 0 AC 0 P 1 CY.
func (fl *Flags) Serialize() (value uint8) {
	value = FLAG_ONE
	if fl.Sign {
		value |= FLAG_SIGN
	}
	if fl.Zero {
		value |= FLAG_ZERO
	}
	if fl.AuxCarry {
		value |= FLAG_AUX
	}
	if fl.Parity {
		value |= FLAG_PARITY
	}
	if fl.Carry {
		value |= FLAG_CARRY
	}
	return
}

// Deserialize restores the flags from a PSW byte. Unused bits are ignored.
func (fl *Flags) Deserialize(value uint8) {
	fl.Sign = (value & FLAG_SIGN) != 0
	fl.Zero = (value & FLAG_ZERO) != 0
	fl.AuxCarry = (value & FLAG_AUX) != 0
	fl.Parity = (value & FLAG_PARITY) != 0
	fl.Carry = (value & FLAG_CARRY) != 0
}

// Test evaluates a branch condition against the flags.
func (fl *Flags) Test(cond Cond) bool {
	switch cond {
	case COND_NZ:
		return !fl.Zero
	case COND_Z:
		return fl.Zero
	case COND_NC:
		return !fl.Carry
	case COND_C:
		return fl.Carry
	case COND_PO:
		return !fl.Parity
	case COND_PE:
		return fl.Parity
	case COND_P:
		return !fl.Sign
	case COND_M:
		return fl.Sign
	}
	panic(ErrCond(cond))
}

// String returns the flags as "SZ-A-P-C", with clear flags in lower case.
func (fl *Flags) String() string {
	text := []byte("sz-a-p-c")
	for n, set := range [...]bool{fl.Sign, fl.Zero, false, fl.AuxCarry, false, fl.Parity, false, fl.Carry} {
		if set {
			text[n] -= 'a' - 'A'
		}
	}
	return string(text)
}

// Cond is a branch condition, encoded in bits 5..3 of conditional
// jump, call and return opcodes.
type Cond int

const (
	COND_NZ = Cond(0) // nz
	COND_Z  = Cond(1) // z
	COND_NC = Cond(2) // nc
	COND_C  = Cond(3) // c
	COND_PO = Cond(4) // po
	COND_PE = Cond(5) // pe
	COND_P  = Cond(6) // p
	COND_M  = Cond(7) // m
)

var condNames = [...]string{"nz", "z", "nc", "c", "po", "pe", "p", "m"}

func (cond Cond) String() string {
	if cond < 0 || int(cond) >= len(condNames) {
		return f("cond(%v)", int(cond))
	}
	return condNames[cond]
}
