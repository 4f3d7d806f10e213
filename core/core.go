package core

// ByteMemory is the minimal byte-addressed store.
type ByteMemory interface {
	GetByte(addr uint16) uint8
	SetByte(addr uint16, value uint8)
}

// Memory is a flat, linearly addressed byte store covering the full 16-bit
// address space. Every address is valid.
type Memory interface {
	ByteMemory
	// GetWord reads a little-endian word at addr.
	GetWord(addr uint16) uint16
	// SetWord writes a little-endian word at addr.
	SetWord(addr uint16, value uint16)
	// Load copies data into memory starting at base.
	Load(base uint16, data []byte)
	// View returns the inclusive range [start, end] without copying.
	View(start, end uint16) []byte
}

// ReadWord composes a little-endian word from two byte reads.
// The high byte address wraps at the top of the address space.
func ReadWord(m ByteMemory, addr uint16) uint16 {
	return AssembleWord(m.GetByte(addr+1), m.GetByte(addr))
}

// WriteWord decomposes a word into two byte writes, low byte first.
func WriteWord(m ByteMemory, addr uint16, value uint16) {
	m.SetByte(addr, LowByte(value))
	m.SetByte(addr+1, HighByte(value))
}

// Registers8 is a bank of named 8-bit registers.
type Registers8[N any] interface {
	Get8(name N) uint8
	Set8(name N, value uint8)
	Update8(name N, fn func(uint8) uint8)
}

// Registers16 is a bank of named 16-bit register pairs.
type Registers16[N any] interface {
	Get16(name N) uint16
	Set16(name N, value uint16)
	Update16(name N, fn func(uint16) uint16)
}

// Flags is a condition code record that can be saved to and restored from
// a single byte.
type Flags interface {
	Serialize() uint8
	Deserialize(value uint8)
}

// Stack is a stack pointer operating against a Memory.
type Stack interface {
	GetSP() uint16
	SetSP(value uint16)
	PushByte(m Memory, value uint8)
	PopByte(m Memory) uint8
	PushWord(m Memory, value uint16)
	PopWord(m Memory) uint16
}

// Program is the program counter together with the length of the
// instruction currently being decoded.
type Program interface {
	GetPC() uint16
	// Instruction fetches the whole instruction at the program counter
	// and records its length.
	Instruction(m Memory) []byte
	// Advance moves past the fetched instruction.
	Advance()
	Jump(addr uint16)
	Call(m Memory, s Stack, addr uint16)
	Return(m Memory, s Stack)
}

// Ports is the host I/O capability used by the IN and OUT instructions.
// Implementations must not touch processor state.
type Ports interface {
	Input(port uint8) uint8
	Output(port uint8, value uint8)
}
