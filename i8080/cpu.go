package i8080

import (
	"github.com/ezrec/vcpu/core"
)

// Cpu is the 8080 instruction dispatcher. It holds no state of its own.
type Cpu struct{}

// Execute adapts the package level Execute to the emulator's Arch
// interface.
func (Cpu) Execute(s *State, ports core.Ports) int {
	return Execute(s, ports)
}

// Execute runs one instruction against the state, using the supplied port
// capability for IN and OUT, and returns its cost in clock states.
func Execute(s *State, ports core.Ports) int {
	instruction := s.Program.Instruction(s.Memory)
	opcode := instruction[0]

	switch FieldX(opcode) {
	case 0:
		s.Group0(instruction)
	case 1:
		s.Group1(opcode)
	case 2:
		s.Alu(AluFor(opcode), s.Operand(opcode))
	case 3:
		s.group3(instruction, ports)
	}

	s.Program.Advance()

	return int(OPCODE_CYCLES[opcode])
}

// rp16 returns the value of the register pair in bits 5..4 where the last
// pair is SP.
func (s *State) rp16(opcode uint8) uint16 {
	p := FieldP(opcode)
	if p == 3 {
		return s.Stack.GetSP()
	}
	return s.Registers.Get16(Reg16(p))
}

// setRp16 is the mirror of rp16.
func (s *State) setRp16(opcode uint8, value uint16) {
	p := FieldP(opcode)
	if p == 3 {
		s.Stack.SetSP(value)
		return
	}
	s.Registers.Set16(Reg16(p), value)
}

// unary applies fn to the register or (HL) selected by bits 5..3.
func (s *State) unary(opcode uint8, reg func(Reg8), mem func(Reg16)) {
	code := FieldY(opcode)
	if code == REG_M {
		mem(PAIR_HL)
		return
	}
	reg(s.RegisterFor(opcode, code))
}

// Group0 decodes 0x00..0x3f: immediates, indirect loads and stores,
// increments, rotates and carry control.
func (s *State) Group0(instruction []byte) {
	opcode := instruction[0]
	p := FieldP(opcode)
	q := FieldQ(opcode)

	switch FieldZ(opcode) {
	case 0: // NOP, and its undocumented aliases
	case 1:
		if q == 0 {
			s.setRp16(opcode, WordArg(instruction)) // LXI rp,word
		} else {
			s.DadValue(s.rp16(opcode)) // DAD rp
		}
	case 2:
		switch {
		case p < 2 && q == 0:
			s.MovPR8(Reg16(p), REG_A) // STAX B/D
		case p < 2 && q == 1:
			s.MovRP8(REG_A, Reg16(p)) // LDAX B/D
		case p == 2 && q == 0:
			s.MovAR16(WordArg(instruction), PAIR_HL) // SHLD a16
		case p == 2 && q == 1:
			s.MovRA16(PAIR_HL, WordArg(instruction)) // LHLD a16
		case q == 0:
			s.MovAR8(WordArg(instruction), REG_A) // STA a16
		default:
			s.MovRA8(REG_A, WordArg(instruction)) // LDA a16
		}
	case 3:
		if q == 0 {
			s.setRp16(opcode, s.rp16(opcode)+1) // INX rp
		} else {
			s.setRp16(opcode, s.rp16(opcode)-1) // DCX rp
		}
	case 4:
		s.unary(opcode, s.Inr, s.InrP) // INR r
	case 5:
		s.unary(opcode, s.Dcr, s.DcrP) // DCR r
	case 6:
		value := ByteArg(instruction)
		s.unary(opcode,
			func(reg Reg8) { s.MovRI8(reg, value) },    // MVI r,byte
			func(pair Reg16) { s.MovPI8(pair, value) }) // MVI M,byte
	case 7:
		switch FieldY(opcode) {
		case 0:
			s.Rlc()
		case 1:
			s.Rrc()
		case 2:
			s.Ral()
		case 3:
			s.Rar()
		case 4:
			s.Daa()
		case 5:
			s.Cma()
		case 6:
			s.Stc()
		case 7:
			s.Cmc()
		}
	}
}

// Group1 decodes 0x40..0x7f: register and memory moves. The memory to
// memory encoding is HLT.
func (s *State) Group1(opcode uint8) {
	dst := FieldY(opcode)
	src := FieldZ(opcode)

	switch {
	case dst == REG_M && src == REG_M:
		s.Halt()
	case src == REG_M:
		s.MovRP8(s.RegisterFor(opcode, dst), PAIR_HL)
	case dst == REG_M:
		s.MovPR8(PAIR_HL, s.RegisterFor(opcode, src))
	default:
		s.MovRR8(s.RegisterFor(opcode, dst), s.RegisterFor(opcode, src))
	}
}

// group3 decodes 0xc0..0xff: stack, branches, port I/O, interrupt
// control, immediate arithmetic and restarts.
func (s *State) group3(instruction []byte, ports core.Ports) {
	opcode := instruction[0]
	y := FieldY(opcode)
	p := FieldP(opcode)

	switch FieldZ(opcode) {
	case 0:
		s.RetIf(CondFor(opcode)) // Rcc
	case 1:
		switch {
		case FieldQ(opcode) == 0:
			s.PopR16(PairFor(opcode)) // POP rp
		case p < 2:
			s.Ret() // RET, and 0xd9
		case p == 2:
			s.JumpA(s.Registers.Get16(PAIR_HL)) // PCHL
		default:
			s.Stack.SetSP(s.Registers.Get16(PAIR_HL)) // SPHL
		}
	case 2:
		s.JumpIf(CondFor(opcode), WordArg(instruction)) // Jcc a16
	case 3:
		switch y {
		case 0, 1:
			s.JumpA(WordArg(instruction)) // JMP a16, and 0xcb
		case 2:
			ports.Output(ByteArg(instruction), s.Registers.A) // OUT byte
		case 3:
			s.MovRI8(REG_A, ports.Input(ByteArg(instruction))) // IN byte
		case 4:
			s.Xthl()
		case 5:
			s.Xchg()
		case 6:
			s.SetInterruptEnable(false) // DI
		case 7:
			s.SetInterruptEnable(true) // EI
		}
	case 4:
		s.CallIf(CondFor(opcode), WordArg(instruction)) // Ccc a16
	case 5:
		if FieldQ(opcode) == 0 {
			s.PushR16(PairFor(opcode)) // PUSH rp
		} else {
			s.CallA(WordArg(instruction)) // CALL a16, and 0xdd/0xed/0xfd
		}
	case 6:
		s.Alu(AluFor(opcode), ByteArg(instruction)) // ADI..CPI byte
	case 7:
		s.CallA(uint16(opcode & 0x38)) // RST n
	}
}
