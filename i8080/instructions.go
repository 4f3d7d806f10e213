package i8080

import (
	"github.com/ezrec/vcpu/core"
)

// Opcode bit-fields, using the usual x/y/z/p/q split:
//
//	7 6 | 5 4 3 | 2 1 0
//	 x  |   y   |   z
//	    | p   q |
const REG_M = 6 // Register field value for the (HL) memory operand.

func FieldX(opcode uint8) uint8 { return opcode >> 6 }
func FieldY(opcode uint8) uint8 { return (opcode >> 3) & 0x07 }
func FieldZ(opcode uint8) uint8 { return opcode & 0x07 }
func FieldP(opcode uint8) uint8 { return (opcode >> 4) & 0x03 }
func FieldQ(opcode uint8) uint8 { return (opcode >> 3) & 0x01 }

// RegisterFor maps a 3-bit register field to a register. The (HL) code
// must be handled by the caller; reaching here with it aborts emulation.
func (s *State) RegisterFor(opcode uint8, code uint8) Reg8 {
	code &= 0x07
	if code == REG_M {
		s.Abort(ErrDecode, opcode)
	}
	return Reg8(code)
}

// Operand reads the 8-bit source selected by the low three bits of opcode,
// either a register or the byte at (HL).
func (s *State) Operand(opcode uint8) uint8 {
	code := FieldZ(opcode)
	if code == REG_M {
		return s.GetIndirect8(PAIR_HL)
	}
	return s.Registers.Get8(s.RegisterFor(opcode, code))
}

// CondFor returns the branch condition encoded in bits 5..3.
func CondFor(opcode uint8) Cond {
	return Cond(FieldY(opcode))
}

// AluFor returns the accumulator operation encoded in bits 5..3.
func AluFor(opcode uint8) AluOp {
	return AluOp(FieldY(opcode))
}

// PairFor returns the register pair in bits 5..4 for the push and pop
// encodings, where the last pair is PSW.
func PairFor(opcode uint8) Reg16 {
	return Reg16(FieldP(opcode))
}

// WordArg returns the little-endian operand of a 3-byte instruction.
func WordArg(instruction []byte) uint16 {
	return core.AssembleWord(instruction[2], instruction[1])
}

// ByteArg returns the operand of a 2-byte instruction.
func ByteArg(instruction []byte) uint8 {
	return instruction[1]
}

// ApplyOffset adds a signed 8-bit displacement to an address.
func ApplyOffset(base uint16, offset uint8) uint16 {
	return base + uint16(int16(int8(offset)))
}
