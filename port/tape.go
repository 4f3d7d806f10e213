package port

import (
	"errors"
	"io"

	"github.com/ezrec/vcpu/core"
)

// Tape status bits, read from the status port.
const (
	TAPE_READY    = uint8(1 << 0) // A byte is waiting on the data port.
	TAPE_WRITABLE = uint8(1 << 1) // The data port accepts output.
)

// Tape is a sequential byte stream device. Reading the data port returns
// the next byte of Reader, or 0xff once it is exhausted. Writing the data
// port appends a byte to Writer. The status port reports TAPE_READY and
// TAPE_WRITABLE.
type Tape struct {
	Reader io.Reader // Source for the data port.
	Writer io.Writer // Sink for the data port.

	DataPort   uint8
	StatusPort uint8

	hasInput  bool
	lastInput byte
	eof       bool
	err       error
}

var _ core.Ports = (*Tape)(nil)
var _ Failer = (*Tape)(nil)

// fill reads ahead one byte, if there is none already.
func (tc *Tape) fill() {
	if tc.hasInput || tc.eof || tc.Reader == nil {
		return
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Reader, one[:])
	if err != nil {
		tc.eof = true
		if !errors.Is(err, io.EOF) {
			tc.fail(err)
		}
		return
	}

	tc.lastInput = one[0]
	tc.hasInput = true
}

func (tc *Tape) fail(err error) {
	if tc.err == nil {
		tc.err = err
	}
}

// Input reads the data or status port.
func (tc *Tape) Input(port uint8) (value uint8) {
	tc.fill()

	if port == tc.StatusPort && port != tc.DataPort {
		if tc.hasInput {
			value |= TAPE_READY
		}
		if tc.Writer != nil {
			value |= TAPE_WRITABLE
		}
		return
	}

	if !tc.hasInput {
		return FLOATING
	}

	tc.hasInput = false
	return tc.lastInput
}

// Output writes one byte to the data port. Writes to the status port are
// ignored.
func (tc *Tape) Output(port uint8, value uint8) {
	if port != tc.DataPort || tc.Writer == nil {
		return
	}

	_, err := tc.Writer.Write([]byte{value})
	if err != nil {
		tc.fail(err)
	}
}

// Err returns the first read or write failure other than end of input.
func (tc *Tape) Err() error {
	return tc.err
}
