package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	assert.Equal(uint8(0), m.GetByte(0xffff))

	m.SetWord(0x2000, 0xbeef)
	assert.Equal(uint8(0xef), m.GetByte(0x2000))
	assert.Equal(uint8(0xbe), m.GetByte(0x2001))
	assert.Equal(uint16(0xbeef), m.GetWord(0x2000))
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	m.Load(0x100, []byte{1, 2, 3})
	assert.Equal([]byte{1, 2, 3}, m.View(0x100, 0x102))

	// Data past the top of memory is dropped.
	m.Load(0xfffe, []byte{0xaa, 0xbb, 0xcc})
	assert.Equal([]byte{0xaa, 0xbb}, m.View(0xfffe, 0xffff))
	assert.Equal(uint8(0), m.GetByte(0x0000))
}

func TestMemory_View(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	m.Load(0x10, []byte{0xc3, 0x00, 0x20})

	view := m.View(0x10, 0x12)
	assert.Len(view, 3)
	m.SetByte(0x11, 0x55)
	assert.Equal(uint8(0x55), view[1])

	assert.Len(m.View(0x10, 0x10), 1)

	m.SetByte(0xffff, 0xcd)
	m.SetByte(0x0000, 0x34)
	m.SetByte(0x0001, 0x12)
	assert.Equal([]byte{0xcd, 0x34, 0x12}, m.View(0xffff, 0x0001))
}
