package gbz80

import (
	"github.com/ezrec/vcpu/i8080"
	"github.com/ezrec/vcpu/translate"
)

// ShiftOp is the 3-bit rotate and shift selector of the 0xcb prefix.
type ShiftOp int

const (
	SHIFT_RLC  = ShiftOp(0) // rlc
	SHIFT_RRC  = ShiftOp(1) // rrc
	SHIFT_RL   = ShiftOp(2) // rl
	SHIFT_RR   = ShiftOp(3) // rr
	SHIFT_SLA  = ShiftOp(4) // sla
	SHIFT_SRA  = ShiftOp(5) // sra
	SHIFT_SWAP = ShiftOp(6) // swap
	SHIFT_SRL  = ShiftOp(7) // srl
)

var shiftNames = [...]string{"rlc", "rrc", "rl", "rr", "sla", "sra", "swap", "srl"}

func (op ShiftOp) String() string {
	if op < 0 || int(op) >= len(shiftNames) {
		return translate.From("shift(%v)", int(op))
	}
	return shiftNames[op]
}

// Shift applies a rotate or shift to value with the given carry in, and
// returns the result and the carry out.
func Shift(op ShiftOp, value uint8, carry bool) (result uint8, carryOut bool) {
	var cin uint8
	if carry {
		cin = 1
	}

	switch op {
	case SHIFT_RLC:
		return value<<1 | value>>7, (value & 0x80) != 0
	case SHIFT_RRC:
		return value>>1 | value<<7, (value & 0x01) != 0
	case SHIFT_RL:
		return value<<1 | cin, (value & 0x80) != 0
	case SHIFT_RR:
		return value>>1 | cin<<7, (value & 0x01) != 0
	case SHIFT_SLA:
		return value << 1, (value & 0x80) != 0
	case SHIFT_SRA:
		return value>>1 | value&0x80, (value & 0x01) != 0
	case SHIFT_SWAP:
		return value<<4 | value>>4, false
	default:
		return value >> 1, (value & 0x01) != 0
	}
}

// store writes the register or (HL) selected by the low three bits of op.
func store(s *i8080.State, op uint8, value uint8) {
	code := i8080.FieldZ(op)
	if code == i8080.REG_M {
		s.MovPI8(i8080.PAIR_HL, value)
		return
	}
	s.MovRI8(s.RegisterFor(op, code), value)
}

// prefix executes the opcode following 0xcb. The top two bits select
// rotate/shift, BIT, RES or SET; bits 5..3 the operation or bit number.
func prefix(s *i8080.State, op uint8) {
	fl := &s.Registers.Flags
	value := s.Operand(op)
	bit := uint8(1) << i8080.FieldY(op)

	switch i8080.FieldX(op) {
	case 0:
		result, carry := Shift(ShiftOp(i8080.FieldY(op)), value, fl.Carry)
		fl.SetZeroSignParity(result)
		fl.AuxCarry = false
		fl.Carry = carry
		store(s, op, result)
	case 1: // BIT
		fl.Zero = (value & bit) == 0
		fl.AuxCarry = true
	case 2: // RES
		store(s, op, value&^bit)
	case 3: // SET
		store(s, op, value|bit)
	}
}
