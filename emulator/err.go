package emulator

import (
	"errors"

	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

var (
	// Run termination
	ErrHalted     = errors.New(f("processor halted with interrupts disabled"))
	ErrCycleLimit = errors.New(f("cycle limit reached"))
)

// ErrArch is returned for an unknown architecture name.
type ErrArch string

func (err ErrArch) Error() string {
	return f("unknown architecture %q", string(err))
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     uint16 // Address of the instruction being executed.
	Cycles int    // Clock states consumed before the error.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x, cycle %d: %v", err.Pc, err.Cycles, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
