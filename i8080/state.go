package i8080

import (
	"fmt"
	"iter"

	"github.com/ezrec/vcpu/core"
)

// State is the complete processor state. It is the only mutable context an
// instruction touches.
type State struct {
	Memory    core.Memory  // Address space.
	Stack     core.Stack   // Stack pointer.
	Program   core.Program // Program counter.
	Registers Registers    // Register file and flags.

	InterruptEnable bool // Set by EI, cleared by DI and interrupt delivery.
	Halted          bool // Set by HLT, cleared by interrupt delivery.
}

// NewState creates a zeroed 8080 processor state.
func NewState() *State {
	return NewStateWith(NewMemory(), &Stack{}, NewProgram(&INSTRUCTION_LENGTH))
}

// NewStateWith creates a processor state from the given capabilities.
func NewStateWith(m core.Memory, stack core.Stack, prog core.Program) *State {
	return &State{
		Memory:  m,
		Stack:   stack,
		Program: prog,
	}
}

// Values iterates over the registers, flags and pointers by name.
func (s *State) Values() iter.Seq2[string, uint16] {
	return func(yield func(name string, value uint16) bool) {
		for reg, value := range s.Registers.All() {
			if !yield(reg.String(), uint16(value)) {
				return
			}
		}
		pointers := []struct {
			name  string
			value uint16
		}{
			{"f", uint16(s.Registers.Flags.Serialize())},
			{"sp", s.Stack.GetSP()},
			{"pc", s.Program.GetPC()},
		}
		for _, ptr := range pointers {
			if !yield(ptr.name, ptr.value) {
				return
			}
		}
	}
}

// String returns the processor state as a string.
func (s *State) String() (text string) {
	for name, value := range s.Values() {
		text += fmt.Sprintf("% 5s: %04X\n", name, value)
	}
	text += fmt.Sprintf("% 5s: %v\n", "flags", s.Registers.Flags.String())
	text += fmt.Sprintf("% 5s: %v\n", "ie", s.InterruptEnable)
	text += fmt.Sprintf("% 5s: %v\n", "halt", s.Halted)
	return
}

// Register transfers. The suffix names the destination then the source:
// r register, i immediate, p indirect through a pair, a direct address.

func (s *State) MovRR8(dst Reg8, src Reg8) {
	s.Registers.Set8(dst, s.Registers.Get8(src))
}

func (s *State) MovRI8(dst Reg8, value uint8) {
	s.Registers.Set8(dst, value)
}

func (s *State) MovRP8(dst Reg8, src Reg16) {
	s.Registers.Set8(dst, s.GetIndirect8(src))
}

func (s *State) MovRA8(dst Reg8, addr uint16) {
	s.Registers.Set8(dst, s.Memory.GetByte(addr))
}

func (s *State) MovPR8(dst Reg16, src Reg8) {
	s.Memory.SetByte(s.Registers.Get16(dst), s.Registers.Get8(src))
}

func (s *State) MovPI8(dst Reg16, value uint8) {
	s.Memory.SetByte(s.Registers.Get16(dst), value)
}

func (s *State) MovAR8(addr uint16, src Reg8) {
	s.Memory.SetByte(addr, s.Registers.Get8(src))
}

func (s *State) MovRR16(dst Reg16, src Reg16) {
	s.Registers.Set16(dst, s.Registers.Get16(src))
}

func (s *State) MovRI16(dst Reg16, value uint16) {
	s.Registers.Set16(dst, value)
}

func (s *State) MovRP16(dst Reg16, src Reg16) {
	s.Registers.Set16(dst, s.Memory.GetWord(s.Registers.Get16(src)))
}

func (s *State) MovRA16(dst Reg16, addr uint16) {
	s.Registers.Set16(dst, s.Memory.GetWord(addr))
}

func (s *State) MovPR16(dst Reg16, src Reg16) {
	s.Memory.SetWord(s.Registers.Get16(dst), s.Registers.Get16(src))
}

func (s *State) MovAR16(addr uint16, src Reg16) {
	s.Memory.SetWord(addr, s.Registers.Get16(src))
}

// GetIndirect8 reads the memory byte addressed by a register pair.
func (s *State) GetIndirect8(src Reg16) uint8 {
	return s.Memory.GetByte(s.Registers.Get16(src))
}

// Exchanges

// Xchg swaps DE and HL.
func (s *State) Xchg() {
	r := &s.Registers
	r.D, r.H = r.H, r.D
	r.E, r.L = r.L, r.E
}

// Xthl swaps HL with the word on top of the stack.
func (s *State) Xthl() {
	top := s.PopWord()
	s.PushWord(s.Registers.Get16(PAIR_HL))
	s.Registers.Set16(PAIR_HL, top)
}

// Stack

func (s *State) PushWord(value uint16) {
	s.Stack.PushWord(s.Memory, value)
}

func (s *State) PopWord() uint16 {
	return s.Stack.PopWord(s.Memory)
}

func (s *State) PushR16(src Reg16) {
	s.PushWord(s.Registers.Get16(src))
}

func (s *State) PopR16(dst Reg16) {
	s.Registers.Set16(dst, s.PopWord())
}

// Control flow

// Test evaluates a branch condition.
func (s *State) Test(cond Cond) bool {
	return s.Registers.Flags.Test(cond)
}

func (s *State) JumpA(addr uint16) {
	s.Program.Jump(addr)
}

func (s *State) JumpIf(cond Cond, addr uint16) {
	if s.Test(cond) {
		s.JumpA(addr)
	}
}

func (s *State) CallA(addr uint16) {
	s.Program.Call(s.Memory, s.Stack, addr)
}

func (s *State) CallIf(cond Cond, addr uint16) {
	if s.Test(cond) {
		s.CallA(addr)
	}
}

func (s *State) Ret() {
	s.Program.Return(s.Memory, s.Stack)
}

func (s *State) RetIf(cond Cond) {
	if s.Test(cond) {
		s.Ret()
	}
}

// Interrupts

func (s *State) SetInterruptEnable(enable bool) {
	s.InterruptEnable = enable
}

// Interrupt calls restart vector 8*n and disables further interrupts.
// The handler has to re-enable them itself. Only the low three bits of n
// are used.
func (s *State) Interrupt(n int) {
	s.CallA(uint16(n&0x7) * 8)
	s.InterruptEnable = false
	s.Halted = false
}

// Halt stops instruction execution until the next interrupt.
func (s *State) Halt() {
	s.Halted = true
}
