package port

import (
	"errors"

	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

var (
	// Script errors
	ErrScriptResult = errors.New(f("script result not a byte"))
)

// ErrPortInUse is returned when attaching to a port that already has a
// device.
type ErrPortInUse uint8

func (err ErrPortInUse) Error() string {
	return f("port 0x%02x in use", uint8(err))
}

// ErrPortScript wraps a failure raised by a Starlark device.
type ErrPortScript struct {
	Name string // Script file name.
	Err  error  // Underlying failure.
}

func (err *ErrPortScript) Error() string {
	return f("port script %v: %v", err.Name, err.Err)
}

func (err *ErrPortScript) Unwrap() error {
	return err.Err
}
