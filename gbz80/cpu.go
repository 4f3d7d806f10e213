package gbz80

import (
	"github.com/ezrec/vcpu/core"
	"github.com/ezrec/vcpu/i8080"
)

// HIGH_PAGE is the base of the I/O and high RAM page addressed by LDH.
const HIGH_PAGE = uint16(0xff00)

// NewState creates a zeroed processor state decoding with this package's
// instruction lengths.
func NewState() *i8080.State {
	return i8080.NewStateWith(i8080.NewMemory(), &i8080.Stack{}, i8080.NewProgram(&INSTRUCTION_LENGTH))
}

// Cpu is the instruction dispatcher. It holds no state of its own.
type Cpu struct{}

// Execute runs one instruction and returns its cost in clock states.
// The CPU has no port instructions; its I/O is memory mapped, so ports
// is never used.
func (Cpu) Execute(s *i8080.State, ports core.Ports) int {
	return Execute(s)
}

// Execute runs one instruction against a state created by NewState and
// returns its cost in clock states.
func Execute(s *i8080.State) int {
	instruction := s.Program.Instruction(s.Memory)
	opcode := instruction[0]
	cycles := int(OPCODE_CYCLES[opcode])

	switch i8080.FieldX(opcode) {
	case 0:
		group0(s, instruction)
	case 1:
		if opcode == 0x76 {
			s.Abort(i8080.ErrUnimplemented, opcode) // HALT
		}
		s.Group1(opcode)
	case 2:
		alu(s, i8080.AluFor(opcode), s.Operand(opcode))
	case 3:
		if opcode == 0xcb {
			op := i8080.ByteArg(instruction)
			prefix(s, op)
			cycles += prefixCycles(op)
		} else {
			group3(s, instruction)
		}
	}

	s.Program.Advance()

	return cycles
}

// relative returns the target of a relative jump, measured from the
// instruction following it.
func relative(s *i8080.State, instruction []byte) uint16 {
	next := s.Program.GetPC() + uint16(len(instruction))
	return i8080.ApplyOffset(next, i8080.ByteArg(instruction))
}

// group0 decodes 0x00..0x3f. Relative jumps and the HL post-increment
// loads replace the 8080 encodings; the rest is shared, with flag fixes.
func group0(s *i8080.State, instruction []byte) {
	opcode := instruction[0]
	y := i8080.FieldY(opcode)

	switch i8080.FieldZ(opcode) {
	case 0:
		switch y {
		case 0: // NOP
		case 1:
			s.Memory.SetWord(i8080.WordArg(instruction), s.Stack.GetSP()) // LD (nn),SP
		case 2:
			s.Abort(i8080.ErrUnimplemented, opcode) // STOP
		case 3:
			s.JumpA(relative(s, instruction)) // JR d
		default:
			s.JumpIf(i8080.Cond(y-4), relative(s, instruction)) // JR cc,d
		}
	case 2:
		p := i8080.FieldP(opcode)
		load := i8080.FieldQ(opcode) == 1
		switch {
		case p < 2 && load:
			s.MovRP8(i8080.REG_A, i8080.Reg16(p)) // LD A,(BC/DE)
		case p < 2:
			s.MovPR8(i8080.Reg16(p), i8080.REG_A) // LD (BC/DE),A
		case load:
			s.MovRP8(i8080.REG_A, i8080.PAIR_HL) // LDI/LDD A,(HL)
		default:
			s.MovPR8(i8080.PAIR_HL, i8080.REG_A) // LDI/LDD (HL),A
		}
		switch p {
		case 2:
			s.Inx(i8080.PAIR_HL)
		case 3:
			s.Dcx(i8080.PAIR_HL)
		}
	default:
		shared(s, instruction)
	}
}

// offsetSP adds a signed displacement to SP. Half carry and carry come
// from the unsigned addition of the low byte; zero is cleared.
func offsetSP(s *i8080.State, d uint8) uint16 {
	sp := s.Stack.GetSP()
	fl := &s.Registers.Flags
	fl.Zero = false
	fl.AuxCarry = (sp&0x0f)+uint16(d&0x0f) > 0x0f
	fl.Carry = (sp&0xff)+uint16(d) > 0xff
	return i8080.ApplyOffset(sp, d)
}

// group3 decodes 0xc0..0xff. The 8080 port, exchange and parity
// encodings are replaced by high page loads and stack pointer arithmetic,
// and some are left undefined.
func group3(s *i8080.State, instruction []byte) {
	opcode := instruction[0]
	y := i8080.FieldY(opcode)
	p := i8080.FieldP(opcode)
	q := i8080.FieldQ(opcode)

	switch i8080.FieldZ(opcode) {
	case 0:
		switch y {
		case 4:
			s.MovAR8(HIGH_PAGE|uint16(i8080.ByteArg(instruction)), i8080.REG_A) // LDH (n),A
		case 5:
			s.Stack.SetSP(offsetSP(s, i8080.ByteArg(instruction))) // ADD SP,d
		case 6:
			s.MovRA8(i8080.REG_A, HIGH_PAGE|uint16(i8080.ByteArg(instruction))) // LDH A,(n)
		case 7:
			s.Registers.Set16(i8080.PAIR_HL, offsetSP(s, i8080.ByteArg(instruction))) // LD HL,SP+d
		default:
			s.RetIf(i8080.CondFor(opcode)) // RET cc
		}
	case 1:
		switch {
		case q == 0 && p == 3:
			SetAF(s, s.PopWord()) // POP AF
		case q == 0:
			s.PopR16(i8080.PairFor(opcode)) // POP rr
		case p == 0:
			s.Ret()
		case p == 1:
			s.Ret() // RETI
			s.SetInterruptEnable(true)
		case p == 2:
			s.JumpA(s.Registers.Get16(i8080.PAIR_HL)) // JP (HL)
		default:
			s.Stack.SetSP(s.Registers.Get16(i8080.PAIR_HL)) // LD SP,HL
		}
	case 2:
		switch y {
		case 4:
			s.MovAR8(HIGH_PAGE|uint16(s.Registers.C), i8080.REG_A) // LD (C),A
		case 5:
			s.MovAR8(i8080.WordArg(instruction), i8080.REG_A) // LD (nn),A
		case 6:
			s.MovRA8(i8080.REG_A, HIGH_PAGE|uint16(s.Registers.C)) // LD A,(C)
		case 7:
			s.MovRA8(i8080.REG_A, i8080.WordArg(instruction)) // LD A,(nn)
		default:
			s.JumpIf(i8080.CondFor(opcode), i8080.WordArg(instruction)) // JP cc,nn
		}
	case 3:
		switch y {
		case 0:
			s.JumpA(i8080.WordArg(instruction)) // JP nn
		case 6:
			s.SetInterruptEnable(false) // DI
		case 7:
			s.SetInterruptEnable(true) // EI
		default:
			s.Abort(i8080.ErrUnimplemented, opcode)
		}
	case 4:
		if y >= 4 {
			s.Abort(i8080.ErrUnimplemented, opcode)
		}
		s.CallIf(i8080.CondFor(opcode), i8080.WordArg(instruction)) // CALL cc,nn
	case 5:
		switch {
		case q == 0 && p == 3:
			s.PushWord(GetAF(s)) // PUSH AF
		case q == 0:
			s.PushR16(i8080.PairFor(opcode)) // PUSH rr
		case p == 0:
			s.CallA(i8080.WordArg(instruction)) // CALL nn
		default:
			s.Abort(i8080.ErrUnimplemented, opcode)
		}
	case 6:
		alu(s, i8080.AluFor(opcode), i8080.ByteArg(instruction))
	case 7:
		s.CallA(uint16(opcode & 0x38)) // RST n
	}
}
