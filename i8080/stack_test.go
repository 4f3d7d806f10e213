package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Byte(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	s := &Stack{SP: 0x1000}

	s.PushByte(m, 0xaa)
	assert.Equal(uint16(0x0fff), s.GetSP())
	assert.Equal(uint8(0xaa), m.GetByte(0x0fff))

	assert.Equal(uint8(0xaa), s.PopByte(m))
	assert.Equal(uint16(0x1000), s.GetSP())
}

func TestStack_Word(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	s := &Stack{SP: 0x1000}

	s.PushWord(m, 0x1234)
	assert.Equal(uint16(0x0ffe), s.GetSP())
	assert.Equal(uint8(0x34), m.GetByte(0x0ffe))
	assert.Equal(uint8(0x12), m.GetByte(0x0fff))

	assert.Equal(uint16(0x1234), s.PopWord(m))
	assert.Equal(uint16(0x1000), s.GetSP())
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	s := &Stack{}

	s.PushWord(m, 0xabcd)
	assert.Equal(uint16(0xfffe), s.GetSP())
	assert.Equal(uint16(0xabcd), s.PopWord(m))
	assert.Equal(uint16(0x0000), s.GetSP())
}

func FuzzStack(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(1), uint16(0xffff))
	f.Add(uint16(0xffff), uint16(0x8000))

	f.Fuzz(func(t *testing.T, sp uint16, value uint16) {
		assert := assert.New(t)

		m := NewMemory()
		s := &Stack{SP: sp}

		s.PushWord(m, value)
		assert.Equal(sp-2, s.GetSP())
		assert.Equal(value, s.PopWord(m))
		assert.Equal(sp, s.GetSP())
	})
}
