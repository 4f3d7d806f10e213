// Package port provides host devices for the IN and OUT instructions.
// A Bus maps port numbers to devices: a byte stream Tape, or a Script
// written in Starlark.
package port
