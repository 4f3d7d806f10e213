// Package i8080 implements the Intel 8080 processor state, its primitive
// operations, and the instruction dispatcher.
//
// The processor state (State) composes the capabilities defined in package
// core: a 64KiB Memory, a Stack, a Program counter and the register file with
// its condition flags. Every instruction is a short sequence of State
// primitives selected by the bit-fields of its opcode. Other members of the
// register family (see package gbz80) reuse the same State and primitives
// with their own opcode decoding and tables.
//
// Opcodes the active architecture does not implement abort emulation with a
// panic carrying an *ErrFatal diagnostic; they are never skipped.
package i8080
