package port

import (
	"errors"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/vcpu/core"
)

// FLOATING is the value read from a port with no device.
const FLOATING = uint8(0xff)

// Interrupter is implemented by devices that can request an interrupt.
type Interrupter interface {
	// Interrupt returns the restart number of a pending request.
	Interrupt() (n int, ok bool)
}

// Failer is implemented by devices that can fail outside of the byte
// transfer itself.
type Failer interface {
	// Err returns the first failure of the device, if any.
	Err() error
}

// Bus routes port I/O to attached devices. A device may be attached to
// more than one port; it is passed the port number on every access.
type Bus struct {
	Verbose bool // If set, log every transfer.

	devices map[uint8]core.Ports
}

var _ core.Ports = (*Bus)(nil)
var _ Interrupter = (*Bus)(nil)
var _ Failer = (*Bus)(nil)

// Attach connects a device to a port.
func (bus *Bus) Attach(port uint8, device core.Ports) (err error) {
	if bus.devices == nil {
		bus.devices = map[uint8]core.Ports{}
	}

	_, ok := bus.devices[port]
	if ok {
		err = ErrPortInUse(port)
		return
	}

	bus.devices[port] = device
	return
}

// Detach disconnects whatever device is on a port.
func (bus *Bus) Detach(port uint8) {
	delete(bus.devices, port)
}

// Attached iterates over the attached devices in port order.
func (bus *Bus) Attached() iter.Seq2[uint8, core.Ports] {
	return func(yield func(port uint8, device core.Ports) bool) {
		for _, port := range slices.Sorted(maps.Keys(bus.devices)) {
			if !yield(port, bus.devices[port]) {
				return
			}
		}
	}
}

// Input reads from the device on a port.
func (bus *Bus) Input(port uint8) (value uint8) {
	value = FLOATING
	device, ok := bus.devices[port]
	if ok {
		value = device.Input(port)
	}
	if bus.Verbose {
		log.Printf("in  %02x: %02x", port, value)
	}
	return
}

// Output writes to the device on a port. Writes to an empty port are
// dropped.
func (bus *Bus) Output(port uint8, value uint8) {
	if bus.Verbose {
		log.Printf("out %02x: %02x", port, value)
	}
	device, ok := bus.devices[port]
	if ok {
		device.Output(port, value)
	}
}

// Interrupt polls the attached devices in port order and returns the
// first pending request.
func (bus *Bus) Interrupt() (n int, ok bool) {
	for _, device := range bus.Attached() {
		irq, is := device.(Interrupter)
		if !is {
			continue
		}
		n, ok = irq.Interrupt()
		if ok {
			return
		}
	}
	return
}

// Err joins the failures reported by the attached devices.
func (bus *Bus) Err() error {
	var errs []error
	for _, device := range bus.Attached() {
		failer, is := device.(Failer)
		if !is {
			continue
		}
		errs = append(errs, failer.Err())
	}
	return errors.Join(errs...)
}
