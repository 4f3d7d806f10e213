package i8080

import (
	"github.com/ezrec/vcpu/core"
)

// Program is the program counter plus the length of the instruction being
// decoded. Lengths come from a per-architecture table indexed by opcode.
type Program struct {
	PC     uint16 // Address of the current instruction.
	Length uint16 // Length of the fetched instruction, zero once consumed.

	lengths *[256]uint8
}

var _ core.Program = (*Program)(nil)

// NewProgram creates a program counter using the given instruction
// length table.
func NewProgram(lengths *[256]uint8) *Program {
	return &Program{lengths: lengths}
}

func (p *Program) GetPC() uint16 {
	return p.PC
}

// Instruction fetches the opcode and its operands at the program counter.
func (p *Program) Instruction(m core.Memory) []byte {
	opcode := m.GetByte(p.PC)
	p.Length = uint16(p.lengths[opcode])
	return m.View(p.PC, p.PC+p.Length-1)
}

// Advance moves past the fetched instruction. After a jump the length is
// already zero and this does nothing.
func (p *Program) Advance() {
	p.PC += p.Length
	p.Length = 0
}

func (p *Program) Jump(addr uint16) {
	p.PC = addr
	p.Length = 0
}

// Call pushes the address of the next instruction and jumps to addr.
func (p *Program) Call(m core.Memory, s core.Stack, addr uint16) {
	s.PushWord(m, p.PC+p.Length)
	p.Jump(addr)
}

func (p *Program) Return(m core.Memory, s core.Stack) {
	p.Jump(s.PopWord(m))
}
