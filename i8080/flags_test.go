package i8080

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_SetZeroSignParity(t *testing.T) {
	assert := assert.New(t)

	for n := range 256 {
		result := uint8(n)
		fl := &Flags{Carry: true, AuxCarry: true}
		fl.SetZeroSignParity(result)

		assert.Equal(result == 0, fl.Zero, "zero %02x", result)
		assert.Equal(result&0x80 != 0, fl.Sign, "sign %02x", result)
		assert.Equal(bits.OnesCount8(result)%2 == 0, fl.Parity, "parity %02x", result)
		assert.True(fl.Carry, "carry %02x", result)
		assert.True(fl.AuxCarry, "aux %02x", result)
	}

	fl := &Flags{}
	fl.SetZeroSignParity(0xf0)
	assert.False(fl.Zero)
	assert.True(fl.Sign)
	assert.True(fl.Parity)
}

func TestFlags_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range 32 {
		fl := Flags{
			Zero:     n&0x01 != 0,
			Sign:     n&0x02 != 0,
			Parity:   n&0x04 != 0,
			Carry:    n&0x08 != 0,
			AuxCarry: n&0x10 != 0,
		}
		var back Flags
		back.Deserialize(fl.Serialize())
		assert.Equal(fl, back)
	}
}

func TestFlags_Serialize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x02), (&Flags{}).Serialize())
	assert.Equal(uint8(0xd7), (&Flags{Zero: true, Sign: true, Parity: true, Carry: true, AuxCarry: true}).Serialize())
	assert.Equal(uint8(0x43), (&Flags{Zero: true, Carry: true}).Serialize())
}

func TestFlags_Test(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cond  Cond
		flags Flags
		want  bool
	}){
		{COND_NZ, Flags{}, true},
		{COND_NZ, Flags{Zero: true}, false},
		{COND_Z, Flags{Zero: true}, true},
		{COND_NC, Flags{Carry: true}, false},
		{COND_C, Flags{Carry: true}, true},
		{COND_PO, Flags{Parity: true}, false},
		{COND_PE, Flags{Parity: true}, true},
		{COND_P, Flags{Sign: true}, false},
		{COND_M, Flags{Sign: true}, true},
	}

	for _, entry := range table {
		assert.Equal(entry.want, entry.flags.Test(entry.cond), entry.cond.String())
	}

	assert.Panics(func() { (&Flags{}).Test(Cond(8)) })
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("sz-a-p-c", (&Flags{}).String())
	assert.Equal("SZ-a-P-C", (&Flags{Sign: true, Zero: true, Parity: true, Carry: true}).String())
	assert.Equal("sz-A-p-c", (&Flags{AuxCarry: true}).String())
}

func FuzzFlags(f *testing.F) {
	f.Add(uint8(0x00))
	f.Add(uint8(0xff))
	f.Add(uint8(0x55))

	f.Fuzz(func(t *testing.T, value uint8) {
		var fl, back Flags
		fl.Deserialize(value)
		back.Deserialize(fl.Serialize())
		assert.Equal(t, fl, back)
		mask := FLAG_SIGN | FLAG_ZERO | FLAG_AUX | FLAG_PARITY | FLAG_CARRY
		assert.Equal(t, (value&mask)|FLAG_ONE, fl.Serialize())
	})
}
