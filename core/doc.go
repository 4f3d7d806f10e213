// Package core holds the capability interfaces shared by every CPU in the
// 8080 register family, plus the byte/word helpers they are built on.
//
// An architecture supplies one concrete implementation of each capability
// (memory, registers, stack, program counter, flags). The processor state and
// its primitives are written against these contracts, so a second instruction
// set only needs to bring its own opcode, length and cycle tables.
package core
