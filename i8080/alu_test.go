package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Add(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     AluOp
		a      uint8
		value  uint8
		carry  bool
		result uint8
		flags  Flags
	}){
		{"add_wrap", ALU_ADD, 0xff, 0x01, false, 0x00, Flags{Zero: true, Carry: true, AuxCarry: true, Parity: true}},
		{"add_plain", ALU_ADD, 0x12, 0x21, false, 0x33, Flags{Parity: true}},
		{"add_aux", ALU_ADD, 0x0f, 0x01, false, 0x10, Flags{AuxCarry: true}},
		{"adc_carry", ALU_ADC, 0x10, 0x10, true, 0x21, Flags{Parity: true}},
		{"adc_wrap", ALU_ADC, 0xfe, 0x01, true, 0x00, Flags{Zero: true, Carry: true, AuxCarry: true, Parity: true}},
		{"sub_borrow", ALU_SUB, 0x00, 0x01, false, 0xff, Flags{Sign: true, Carry: true, Parity: true}},
		{"sub_plain", ALU_SUB, 0x05, 0x03, false, 0x02, Flags{AuxCarry: true}},
		{"sub_zero", ALU_SUB, 0x3e, 0x3e, false, 0x00, Flags{Zero: true, Parity: true, AuxCarry: true}},
		{"sbb_borrow", ALU_SBB, 0x05, 0x04, true, 0x00, Flags{Zero: true, Parity: true, AuxCarry: true}},
		{"sbb_wrap", ALU_SBB, 0x00, 0x00, true, 0xff, Flags{Sign: true, Carry: true, Parity: true}},
		{"and", ALU_AND, 0xfc, 0x0f, true, 0x0c, Flags{Parity: true, AuxCarry: true}},
		{"xor", ALU_XOR, 0xff, 0x0f, true, 0xf0, Flags{Sign: true, Parity: true}},
		{"or", ALU_OR, 0x30, 0x01, true, 0x31, Flags{Parity: false}},
	}

	for _, entry := range table {
		s := NewState()
		s.Registers.A = entry.a
		s.Registers.Flags.Carry = entry.carry
		s.Alu(entry.op, entry.value)

		assert.Equal(entry.result, s.Registers.A, entry.name)
		assert.Equal(entry.flags, s.Registers.Flags, entry.name)
	}
}

func TestAlu_Cmp(t *testing.T) {
	assert := assert.New(t)

	s := NewState()
	s.Registers.A = 0x0a
	s.Cmp(0x05)
	assert.Equal(uint8(0x0a), s.Registers.A)
	assert.False(s.Registers.Flags.Carry)
	assert.False(s.Registers.Flags.Zero)

	s.Cmp(0x0a)
	assert.True(s.Registers.Flags.Zero)
	assert.False(s.Registers.Flags.Carry)

	s.Cmp(0x0b)
	assert.True(s.Registers.Flags.Carry)
	assert.True(s.Registers.Flags.Sign)
	assert.Equal(uint8(0x0a), s.Registers.A)
}

func TestAlu_LogicalClearsCarry(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []AluOp{ALU_AND, ALU_XOR, ALU_OR} {
		s := NewState()
		s.Registers.A = 0xff
		s.Add(0x01)
		assert.True(s.Registers.Flags.Carry, op.String())

		s.Registers.A = 0x5a
		s.Alu(op, 0x3c)
		assert.False(s.Registers.Flags.Carry, op.String())
	}
}

func TestAlu_IncDecKeepCarry(t *testing.T) {
	assert := assert.New(t)

	for _, carry := range []bool{false, true} {
		s := NewState()
		s.Registers.Flags.Carry = carry

		s.Registers.B = 0xff
		s.Inr(REG_B)
		assert.Equal(uint8(0x00), s.Registers.B)
		assert.True(s.Registers.Flags.Zero)
		assert.True(s.Registers.Flags.AuxCarry)
		assert.Equal(carry, s.Registers.Flags.Carry)

		s.Dcr(REG_B)
		assert.Equal(uint8(0xff), s.Registers.B)
		assert.True(s.Registers.Flags.Sign)
		assert.False(s.Registers.Flags.AuxCarry)
		assert.Equal(carry, s.Registers.Flags.Carry)

		s.Registers.Set16(PAIR_HL, 0x4000)
		s.Memory.SetByte(0x4000, 0x7f)
		s.InrP(PAIR_HL)
		assert.Equal(uint8(0x80), s.Memory.GetByte(0x4000))
		assert.True(s.Registers.Flags.Sign)
		assert.Equal(carry, s.Registers.Flags.Carry)

		s.DcrP(PAIR_HL)
		assert.Equal(uint8(0x7f), s.Memory.GetByte(0x4000))
		assert.Equal(carry, s.Registers.Flags.Carry)
	}
}

func TestAlu_Dad(t *testing.T) {
	assert := assert.New(t)

	s := NewState()
	s.Registers.Flags.Zero = true
	s.Registers.Set16(PAIR_HL, 0xffff)
	s.Registers.Set16(PAIR_BC, 0x0001)
	s.Dad(PAIR_BC)
	assert.Equal(uint16(0x0000), s.Registers.Get16(PAIR_HL))
	assert.True(s.Registers.Flags.Carry)
	assert.True(s.Registers.Flags.Zero)

	s.DadValue(0x1234)
	assert.Equal(uint16(0x1234), s.Registers.Get16(PAIR_HL))
	assert.False(s.Registers.Flags.Carry)
}

func TestAlu_Daa(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a      uint8
		carry  bool
		aux    bool
		result uint8
		cy     bool
		ac     bool
	}){
		{0x9b, false, false, 0x01, true, true},
		{0x15, false, false, 0x15, false, false},
		{0x0a, false, false, 0x10, false, true},
		{0x12, false, true, 0x18, false, false},
		{0xa0, false, false, 0x00, true, false},
		{0x15, true, false, 0x75, true, false},
		{0xfa, false, false, 0x60, true, true},
	}

	for _, entry := range table {
		s := NewState()
		s.Registers.A = entry.a
		s.Registers.Flags.Carry = entry.carry
		s.Registers.Flags.AuxCarry = entry.aux
		s.Daa()

		assert.Equal(entry.result, s.Registers.A, "daa %02x", entry.a)
		assert.Equal(entry.cy, s.Registers.Flags.Carry, "daa %02x carry", entry.a)
		assert.Equal(entry.ac, s.Registers.Flags.AuxCarry, "daa %02x aux", entry.a)
		assert.Equal(entry.result == 0, s.Registers.Flags.Zero, "daa %02x zero", entry.a)
	}
}

func TestAlu_Rotate(t *testing.T) {
	assert := assert.New(t)

	s := NewState()

	s.Registers.A = 0x81
	s.Rlc()
	assert.Equal(uint8(0x03), s.Registers.A)
	assert.True(s.Registers.Flags.Carry)

	s.Registers.A = 0x81
	s.Rrc()
	assert.Equal(uint8(0xc0), s.Registers.A)
	assert.True(s.Registers.Flags.Carry)

	s.Registers.A = 0x40
	s.Registers.Flags.Carry = true
	s.Ral()
	assert.Equal(uint8(0x81), s.Registers.A)
	assert.False(s.Registers.Flags.Carry)

	s.Registers.A = 0x02
	s.Registers.Flags.Carry = true
	s.Rar()
	assert.Equal(uint8(0x81), s.Registers.A)
	assert.False(s.Registers.Flags.Carry)

	s.Cma()
	assert.Equal(uint8(0x7e), s.Registers.A)

	s.Stc()
	assert.True(s.Registers.Flags.Carry)
	s.Cmc()
	assert.False(s.Registers.Flags.Carry)
}
