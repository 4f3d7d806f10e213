package i8080

import (
	"slices"

	"github.com/ezrec/vcpu/core"
)

const MEMORY_SIZE = 0x10000 // Full 16-bit address space.

// Memory is the flat 64KiB address space.
type Memory struct {
	data [MEMORY_SIZE]uint8
}

var _ core.Memory = (*Memory)(nil)

// NewMemory creates a zeroed address space.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetByte(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Memory) SetByte(addr uint16, value uint8) {
	m.data[addr] = value
}

func (m *Memory) GetWord(addr uint16) uint16 {
	return core.ReadWord(m, addr)
}

func (m *Memory) SetWord(addr uint16, value uint16) {
	core.WriteWord(m, addr, value)
}

// Load copies data into memory at base. Anything past the top of the
// address space is dropped.
func (m *Memory) Load(base uint16, data []byte) {
	copy(m.data[base:], data)
}

// View returns the inclusive range [start, end]. A range that wraps past
// 0xffff is returned as a copy, since it is not contiguous.
func (m *Memory) View(start, end uint16) []byte {
	if end < start {
		return slices.Concat(m.data[start:], m.data[:int(end)+1])
	}
	return m.data[start : int(end)+1]
}
