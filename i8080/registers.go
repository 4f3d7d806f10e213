package i8080

import (
	"iter"

	"github.com/ezrec/vcpu/core"
)

// Reg8 names an 8-bit register. The values match the 3-bit register
// field of the opcodes; field value 6 is the (HL) memory operand and has no
// register.
type Reg8 int

const (
	REG_B = Reg8(0) // b
	REG_C = Reg8(1) // c
	REG_D = Reg8(2) // d
	REG_E = Reg8(3) // e
	REG_H = Reg8(4) // h
	REG_L = Reg8(5) // l
	REG_A = Reg8(7) // a
)

var reg8Names = map[Reg8]string{
	REG_B: "b", REG_C: "c", REG_D: "d", REG_E: "e",
	REG_H: "h", REG_L: "l", REG_A: "a",
}

func (reg Reg8) String() string {
	name, ok := reg8Names[reg]
	if !ok {
		return f("reg8(%v)", int(reg))
	}
	return name
}

// Reg16 names a register pair.
type Reg16 int

const (
	PAIR_BC  = Reg16(0) // bc
	PAIR_DE  = Reg16(1) // de
	PAIR_HL  = Reg16(2) // hl
	PAIR_PSW = Reg16(3) // psw (accumulator and flags)
)

var reg16Names = [...]string{"bc", "de", "hl", "psw"}

func (reg Reg16) String() string {
	if reg < 0 || int(reg) >= len(reg16Names) {
		return f("reg16(%v)", int(reg))
	}
	return reg16Names[reg]
}

// Registers is the 8080 register file. Pairs are assembled from the 8-bit
// cells on every access and have no storage of their own.
type Registers struct {
	A, B, C, D, E, H, L uint8
	Flags               Flags
}

var _ core.Registers8[Reg8] = (*Registers)(nil)
var _ core.Registers16[Reg16] = (*Registers)(nil)

func (r *Registers) cell(reg Reg8) *uint8 {
	switch reg {
	case REG_A:
		return &r.A
	case REG_B:
		return &r.B
	case REG_C:
		return &r.C
	case REG_D:
		return &r.D
	case REG_E:
		return &r.E
	case REG_H:
		return &r.H
	case REG_L:
		return &r.L
	}
	panic(ErrRegister(reg))
}

// Get8 returns an 8-bit register.
func (r *Registers) Get8(reg Reg8) uint8 {
	return *r.cell(reg)
}

// Set8 sets an 8-bit register.
func (r *Registers) Set8(reg Reg8, value uint8) {
	*r.cell(reg) = value
}

// Update8 replaces an 8-bit register with fn applied to its value.
func (r *Registers) Update8(reg Reg8, fn func(uint8) uint8) {
	cell := r.cell(reg)
	*cell = fn(*cell)
}

func (r *Registers) halves(reg Reg16) (high, low *uint8) {
	switch reg {
	case PAIR_BC:
		return &r.B, &r.C
	case PAIR_DE:
		return &r.D, &r.E
	case PAIR_HL:
		return &r.H, &r.L
	}
	panic(ErrPair(reg))
}

// Get16 assembles a register pair. PAIR_PSW is the accumulator in the high
// byte and the serialized flags in the low byte.
func (r *Registers) Get16(reg Reg16) uint16 {
	if reg == PAIR_PSW {
		return core.AssembleWord(r.A, r.Flags.Serialize())
	}
	high, low := r.halves(reg)
	return core.AssembleWord(*high, *low)
}

// Set16 splits value into the two halves of a register pair.
func (r *Registers) Set16(reg Reg16, value uint16) {
	if reg == PAIR_PSW {
		r.A = core.HighByte(value)
		r.Flags.Deserialize(core.LowByte(value))
		return
	}
	high, low := r.halves(reg)
	*high, *low = core.SplitWord(value)
}

// Update16 replaces a register pair with fn applied to its value.
func (r *Registers) Update16(reg Reg16, fn func(uint16) uint16) {
	r.Set16(reg, fn(r.Get16(reg)))
}

// All iterates over the 8-bit registers in encoding order.
func (r *Registers) All() iter.Seq2[Reg8, uint8] {
	return func(yield func(reg Reg8, value uint8) bool) {
		for _, reg := range []Reg8{REG_B, REG_C, REG_D, REG_E, REG_H, REG_L, REG_A} {
			if !yield(reg, r.Get8(reg)) {
				return
			}
		}
	}
}
