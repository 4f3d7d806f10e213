package gbz80

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vcpu/i8080"
)

func TestFlags_Serialize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		flags i8080.Flags
		value uint8
	}){
		{i8080.Flags{}, 0x00},
		{i8080.Flags{Zero: true}, 0x80},
		{i8080.Flags{AuxCarry: true}, 0x20},
		{i8080.Flags{Carry: true}, 0x10},
		{i8080.Flags{Zero: true, AuxCarry: true, Carry: true}, 0xb0},
		{i8080.Flags{Sign: true, Parity: true}, 0x00},
	}

	for _, entry := range table {
		flags := entry.flags
		assert.Equal(entry.value, Flags{&flags}.Serialize(), "%+v", entry.flags)
	}
}

func TestFlags_Deserialize(t *testing.T) {
	assert := assert.New(t)

	flags := i8080.Flags{Sign: true}
	Flags{&flags}.Deserialize(0xff)
	assert.Equal(i8080.Flags{Sign: true, Zero: true, AuxCarry: true, Carry: true}, flags)

	Flags{&flags}.Deserialize(0x4f)
	assert.Equal(i8080.Flags{Sign: true}, flags)
}

func TestAF(t *testing.T) {
	assert := assert.New(t)

	s := NewState()
	SetAF(s, 0x12b0)
	assert.Equal(uint8(0x12), s.Registers.A)
	assert.True(s.Registers.Flags.Zero)
	assert.True(s.Registers.Flags.AuxCarry)
	assert.True(s.Registers.Flags.Carry)
	assert.Equal(uint16(0x12b0), GetAF(s))

	// Subtract and the low nibble do not survive.
	SetAF(s, 0x3451)
	assert.Equal(uint16(0x3410), GetAF(s))
}

func FuzzFlags(f *testing.F) {
	f.Add(uint8(0x00))
	f.Add(uint8(0xf0))
	f.Add(uint8(0x0f))

	f.Fuzz(func(t *testing.T, value uint8) {
		var flags i8080.Flags
		fl := Flags{&flags}
		fl.Deserialize(value)
		assert.Equal(t, value&(FLAG_ZERO|FLAG_HALF|FLAG_CARRY), fl.Serialize())
	})
}
