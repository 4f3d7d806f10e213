package gbz80

import (
	"github.com/ezrec/vcpu/i8080"
)

// The shared primitives compute the 8080 auxiliary carry. The handheld's
// half carry differs for subtraction, AND, DEC, ADD HL and the accumulator
// rotates, so those are corrected here after the shared operation runs.

// alu applies an accumulator operation with handheld half carry.
func alu(s *i8080.State, op i8080.AluOp, value uint8) {
	fl := &s.Registers.Flags
	a := s.Registers.A
	var borrow uint8
	if fl.Carry {
		borrow = 1
	}

	s.Alu(op, value)

	switch op {
	case i8080.ALU_SUB, i8080.ALU_CMP:
		fl.AuxCarry = (a & 0x0f) < (value & 0x0f)
	case i8080.ALU_SBB:
		fl.AuxCarry = (a & 0x0f) < (value&0x0f)+borrow
	case i8080.ALU_AND:
		fl.AuxCarry = true
	}
}

// operand8 reads the register or (HL) named by a 3-bit field.
func operand8(s *i8080.State, code uint8) uint8 {
	if code == i8080.REG_M {
		return s.GetIndirect8(i8080.PAIR_HL)
	}
	return s.Registers.Get8(i8080.Reg8(code))
}

// addHL adds a register pair, or SP, to HL. Half carry is the carry out
// of bit 11; zero is left alone.
func addHL(s *i8080.State, opcode uint8) {
	var value uint16
	p := i8080.FieldP(opcode)
	if p == 3 {
		value = s.Stack.GetSP()
	} else {
		value = s.Registers.Get16(i8080.Reg16(p))
	}

	hl := s.Registers.Get16(i8080.PAIR_HL)
	s.Registers.Flags.AuxCarry = (hl&0x0fff)+(value&0x0fff) > 0x0fff
	s.DadValue(value)
}

// shared runs the group 0 encodings common with the 8080, then corrects
// the flags that the handheld defines differently.
func shared(s *i8080.State, instruction []byte) {
	opcode := instruction[0]
	y := i8080.FieldY(opcode)
	fl := &s.Registers.Flags

	if i8080.FieldZ(opcode) == 1 && i8080.FieldQ(opcode) == 1 {
		addHL(s, opcode) // ADD HL,rr
		return
	}

	s.Group0(instruction)

	switch i8080.FieldZ(opcode) {
	case 5: // DEC r
		fl.AuxCarry = (operand8(s, y) & 0x0f) == 0x0f
	case 7:
		switch y {
		case 0, 1, 2, 3: // RLCA, RRCA, RLA, RRA
			fl.Zero = false
			fl.AuxCarry = false
		case 4, 6, 7: // DAA, SCF, CCF
			fl.AuxCarry = false
		case 5: // CPL
			fl.AuxCarry = true
		}
	}
}
