package i8080

import (
	"errors"
	"log"

	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

var (
	// Fatal abort kinds
	ErrUnimplemented = errors.New(f("unimplemented instruction"))
	ErrDecode        = errors.New(f("decode inconsistency"))
)

// ErrFatal is the panic value raised when emulation cannot continue.
// It carries enough context to diagnose the failure offline.
type ErrFatal struct {
	Kind   error  // ErrUnimplemented or ErrDecode.
	Opcode uint8  // Opcode being executed.
	Pc     uint16 // Address of the opcode.
	State  string // Register and flag dump.
}

func (err *ErrFatal) Error() string {
	return f("%v 0x%02x at 0x%04x\n%v", err.Kind, err.Opcode, err.Pc, err.State)
}

func (err *ErrFatal) Unwrap() error {
	return err.Kind
}

// Abort stops emulation of the current instruction. It logs the diagnostic
// and panics with an *ErrFatal; it never returns.
func (s *State) Abort(kind error, opcode uint8) {
	err := &ErrFatal{
		Kind:   kind,
		Opcode: opcode,
		Pc:     s.Program.GetPC(),
		State:  s.String(),
	}
	log.Printf("%v", err)
	panic(err)
}

// ErrRegister is raised for a register name with no 8-bit cell.
type ErrRegister Reg8

func (er ErrRegister) Error() string {
	return f("no register for code %v", int(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrDecode
}

// ErrPair is raised for a register pair that cannot be used where requested.
type ErrPair Reg16

func (ep ErrPair) Error() string {
	return f("no register pair for code %v", int(ep))
}

func (ep ErrPair) Is(err error) bool {
	return err == ErrDecode
}

// ErrCond is raised for an out of range branch condition.
type ErrCond Cond

func (ec ErrCond) Error() string {
	return f("no condition for code %v", int(ec))
}

func (ec ErrCond) Is(err error) bool {
	return err == ErrDecode
}

// ErrAlu is raised for an out of range accumulator operation.
type ErrAlu AluOp

func (ea ErrAlu) Error() string {
	return f("no alu operation for code %v", int(ea))
}

func (ea ErrAlu) Is(err error) bool {
	return err == ErrDecode
}
