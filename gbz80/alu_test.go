package gbz80

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vcpu/i8080"
)

func TestExecute_HalfCarry(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		code  []byte
		setup func(s *i8080.State)
		f     uint8 // F register pushed after the instruction
	}){
		{"sub b", []byte{0x90}, func(s *i8080.State) { s.Registers.A, s.Registers.B = 0x10, 0x01 }, 0x20},
		{"sub b no half", []byte{0x90}, func(s *i8080.State) { s.Registers.A, s.Registers.B = 0x1f, 0x01 }, 0x00},
		{"cp n", []byte{0xfe, 0x10}, func(s *i8080.State) { s.Registers.A = 0x10 }, 0x80},
		{"sbc a,b", []byte{0x98}, func(s *i8080.State) {
			s.Registers.A, s.Registers.B = 0x10, 0x00
			s.Registers.Flags.Carry = true
		}, 0x20},
		{"sbc a,n", []byte{0xde, 0x0f}, func(s *i8080.State) {
			s.Registers.A = 0x20
			s.Registers.Flags.Carry = true
		}, 0x20},
		{"add a,b", []byte{0x80}, func(s *i8080.State) { s.Registers.A, s.Registers.B = 0x0f, 0x01 }, 0x20},
		{"and b", []byte{0xa0}, func(s *i8080.State) { s.Registers.A, s.Registers.B = 0xf0, 0x0f }, 0xa0},
		{"and n", []byte{0xe6, 0xff}, func(s *i8080.State) { s.Registers.A = 0x01 }, 0x20},
		{"or b", []byte{0xb0}, func(s *i8080.State) { s.Registers.Flags.AuxCarry = true }, 0x80},
		{"inc b", []byte{0x04}, func(s *i8080.State) { s.Registers.B = 0x0f }, 0x20},
		{"dec b", []byte{0x05}, func(s *i8080.State) { s.Registers.B = 0x10 }, 0x20},
		{"dec b no half", []byte{0x05}, func(s *i8080.State) { s.Registers.B = 0x11 }, 0x00},
		{"dec (hl)", []byte{0x35}, func(s *i8080.State) {
			s.Registers.Set16(i8080.PAIR_HL, 0xc000)
			s.Memory.SetByte(0xc000, 0x01)
		}, 0x80},
		{"add hl,bc", []byte{0x09}, func(s *i8080.State) {
			s.Registers.Set16(i8080.PAIR_HL, 0x0fff)
			s.Registers.Set16(i8080.PAIR_BC, 0x0001)
		}, 0x20},
		{"add hl,sp", []byte{0x39}, func(s *i8080.State) {
			s.Registers.Set16(i8080.PAIR_HL, 0x8000)
			s.Stack.SetSP(0x8000)
			s.Registers.Flags.Zero = true
		}, 0x90},
		{"rlca", []byte{0x07}, func(s *i8080.State) {
			s.Registers.A = 0x80
			s.Registers.Flags.Zero = true
			s.Registers.Flags.AuxCarry = true
		}, 0x10},
		{"rra", []byte{0x1f}, func(s *i8080.State) {
			s.Registers.A = 0x01
			s.Registers.Flags.Zero = true
		}, 0x10},
		{"scf", []byte{0x37}, func(s *i8080.State) { s.Registers.Flags.AuxCarry = true }, 0x10},
		{"ccf", []byte{0x3f}, func(s *i8080.State) {
			s.Registers.Flags.Carry = true
			s.Registers.Flags.AuxCarry = true
		}, 0x00},
		{"cpl", []byte{0x2f}, func(s *i8080.State) {}, 0x20},
	}

	for _, entry := range table {
		s := newTestState(append(entry.code, 0xf5)...) // PUSH AF
		entry.setup(s)

		Execute(s)
		Execute(s)

		assert.Equal(entry.f, s.Memory.GetByte(s.Stack.GetSP()), entry.name)
	}
}
