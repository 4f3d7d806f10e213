// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/vcpu/core"
	"github.com/ezrec/vcpu/gbz80"
	"github.com/ezrec/vcpu/i8080"
	"github.com/ezrec/vcpu/port"
)

const (
	IDLE_COST      = 4  // Cost of a tick spent halted, waiting for an interrupt.
	INTERRUPT_COST = 11 // Cost of delivering an interrupt, as an RST.
)

// Arch is an instruction dispatcher for one member of the 8080 family.
type Arch interface {
	// Execute runs one instruction and returns its cost in clock states.
	Execute(s *i8080.State, ports core.Ports) int
}

// machine pairs a dispatcher with the state its tables expect.
type machine struct {
	arch     Arch
	newState func() *i8080.State
}

var _machines = map[string]machine{
	"8080":  {i8080.Cpu{}, i8080.NewState},
	"gbz80": {gbz80.Cpu{}, gbz80.NewState},
}

// Architectures iterates over the supported architecture names in order.
func Architectures() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(_machines)))
}

// Emulator state. CPU + memory + I/O ports.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Arch    Arch         // Instruction dispatcher.
	State   *i8080.State // Processor state.
	Ports   core.Ports   // Devices for IN and OUT.
	Cycles  int          // Clock states since the last reset.
	Steps   int          // Instructions executed since the last reset.

	// InterruptRequest carries restart numbers from other goroutines.
	// A request is only taken once the processor has interrupts enabled.
	InterruptRequest chan int

	newState func() *i8080.State
}

// NewEmulator creates a new emulator for the named architecture, with an
// empty port bus.
func NewEmulator(arch string) (emu *Emulator, err error) {
	mach, ok := _machines[arch]
	if !ok {
		err = ErrArch(arch)
		return
	}

	emu = &Emulator{
		Arch:             mach.arch,
		State:            mach.newState(),
		Ports:            &port.Bus{},
		InterruptRequest: make(chan int, 8),
		newState:         mach.newState,
	}

	return
}

// Reset replaces the processor state with a fresh one, loads image at base
// and starts execution at pc.
func (emu *Emulator) Reset(image []byte, base uint16, pc uint16) {
	emu.State = emu.newState()
	emu.State.Memory.Load(base, image)
	emu.State.Program.Jump(pc)
	emu.Cycles = 0
	emu.Steps = 0
}

// request returns a pending interrupt request, from the request channel
// or else from the ports.
func (emu *Emulator) request() (n int, ok bool) {
	select {
	case n = <-emu.InterruptRequest:
		ok = true
		return
	default:
	}

	irq, is := emu.Ports.(port.Interrupter)
	if is {
		n, ok = irq.Interrupt()
	}
	return
}

// Tick performs a single instruction of the emulator, after delivering a
// pending interrupt if interrupts are enabled.
func (emu *Emulator) Tick() (err error) {
	s := emu.State
	pc := s.Program.GetPC()

	defer func() {
		r := recover()
		if r != nil {
			fatal, ok := r.(*i8080.ErrFatal)
			if !ok {
				panic(r)
			}
			err = fatal
		}
		if err != nil {
			err = &ErrRuntime{Pc: pc, Cycles: emu.Cycles, Err: err}
		}
	}()

	if s.InterruptEnable {
		n, ok := emu.request()
		if ok {
			if emu.Verbose {
				log.Printf("%04X: interrupt %d", pc, n)
			}
			s.Interrupt(n)
			emu.Cycles += INTERRUPT_COST
			pc = s.Program.GetPC()
		}
	}

	if s.Halted {
		if !s.InterruptEnable {
			err = ErrHalted
			return
		}
		emu.Cycles += IDLE_COST
		return
	}

	if emu.Verbose {
		log.Printf("%04X: %02X", pc, s.Memory.GetByte(pc))
	}

	emu.Cycles += emu.Arch.Execute(s, emu.Ports)
	emu.Steps++

	if emu.Verbose {
		log.Printf("%v", s)
	}

	failer, ok := emu.Ports.(port.Failer)
	if ok {
		err = failer.Err()
	}

	return
}

// Run ticks until the processor halts for good, an error occurs, or at
// least limit clock states have run. A limit of zero runs without bound.
func (emu *Emulator) Run(limit int) (err error) {
	for {
		if limit > 0 && emu.Cycles >= limit {
			err = &ErrRuntime{Pc: emu.State.Program.GetPC(), Cycles: emu.Cycles, Err: ErrCycleLimit}
			return
		}
		err = emu.Tick()
		if err != nil {
			return
		}
	}
}
