package i8080

import (
	"github.com/ezrec/vcpu/core"
)

// Stack is the 8080 stack pointer. The stack grows down; a push decrements
// before writing and a pop reads before incrementing.
type Stack struct {
	SP uint16
}

var _ core.Stack = (*Stack)(nil)

func (s *Stack) GetSP() uint16 {
	return s.SP
}

func (s *Stack) SetSP(value uint16) {
	s.SP = value
}

func (s *Stack) PushByte(m core.Memory, value uint8) {
	s.SP--
	m.SetByte(s.SP, value)
}

func (s *Stack) PopByte(m core.Memory) (value uint8) {
	value = m.GetByte(s.SP)
	s.SP++
	return
}

// PushWord pushes the high byte first, leaving the low byte at the lower
// address.
func (s *Stack) PushWord(m core.Memory, value uint16) {
	high, low := core.SplitWord(value)
	s.PushByte(m, high)
	s.PushByte(m, low)
}

// PopWord is the mirror of PushWord.
func (s *Stack) PopWord(m core.Memory) uint16 {
	low := s.PopByte(m)
	high := s.PopByte(m)
	return core.AssembleWord(high, low)
}
