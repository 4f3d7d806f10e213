// Package gbz80 decodes the handheld console CPU (Sharp LR35902), an 8080
// derivative, on top of the 8080 processor state and primitives.
//
// The register file, memory, stack and flag record are shared with
// package i8080. This package supplies its own instruction length and
// cycle tables, the group 0 and group 3 decoders that differ from the 8080,
// and the 0xCB bit manipulation prefix.
package gbz80
