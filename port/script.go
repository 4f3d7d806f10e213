package port

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vcpu/core"
)

// Script is a device written in Starlark. The script may define any of:
//
//	def input(port): return value
//	def output(port, value): ...
//	def irq(): return restart number, or None
//
// Globals are frozen once the script has run, so a predeclared dict named
// state is provided for values that must persist between calls. A missing
// input reads as 0xff and a missing output drops the write.
type Script struct {
	Verbose bool   // If set, log every call into the script.
	Name    string // File name used in diagnostics.

	thread *starlark.Thread
	state  *starlark.Dict
	input  starlark.Callable
	output starlark.Callable
	irq    starlark.Callable
	err    error
}

var _ core.Ports = (*Script)(nil)
var _ Interrupter = (*Script)(nil)
var _ Failer = (*Script)(nil)

// NewScript compiles and runs a script. The source may be a string, a
// []byte, an io.Reader, or nil to read the named file.
func NewScript(name string, src any) (sc *Script, err error) {
	sc = &Script{
		Name:  name,
		state: starlark.NewDict(8),
	}
	sc.thread = &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"state": sc.state,
	}
	globals, err := starlark.ExecFileOptions(&opts, sc.thread, name, src, pred)
	if err != nil {
		sc = nil
		err = &ErrPortScript{Name: name, Err: err}
		return
	}

	for key, fn := range map[string]*starlark.Callable{
		"input":  &sc.input,
		"output": &sc.output,
		"irq":    &sc.irq,
	} {
		callable, ok := globals[key].(starlark.Callable)
		if ok {
			*fn = callable
		}
	}

	return
}

// State returns the persistent state dict shared with the script.
func (sc *Script) State() *starlark.Dict {
	return sc.state
}

// call invokes a script function and converts its result to an integer.
// None converts to ok == false.
func (sc *Script) call(fn starlark.Callable, args ...starlark.Value) (value int, ok bool) {
	if sc.Verbose {
		log.Printf("%v: %v%v", sc.Name, fn.Name(), starlark.Tuple(args))
	}

	rc, err := starlark.Call(sc.thread, fn, starlark.Tuple(args), nil)
	if err != nil {
		sc.fail(err)
		return
	}

	if rc == starlark.None {
		return
	}

	value, err = starlark.AsInt32(rc)
	if err != nil {
		sc.fail(ErrScriptResult)
		return
	}

	ok = true
	return
}

func (sc *Script) fail(err error) {
	if sc.err == nil {
		sc.err = &ErrPortScript{Name: sc.Name, Err: err}
	}
}

// Input calls input(port). Failures, and results outside 0..255, read as
// 0xff.
func (sc *Script) Input(port uint8) uint8 {
	if sc.input == nil || sc.err != nil {
		return FLOATING
	}

	value, ok := sc.call(sc.input, starlark.MakeInt(int(port)))
	if !ok {
		return FLOATING
	}

	if value < 0 || value > 0xff {
		sc.fail(ErrScriptResult)
		return FLOATING
	}

	return uint8(value)
}

// Output calls output(port, value).
func (sc *Script) Output(port uint8, value uint8) {
	if sc.output == nil || sc.err != nil {
		return
	}

	sc.call(sc.output, starlark.MakeInt(int(port)), starlark.MakeInt(int(value)))
}

// Interrupt calls irq(), if the script defines it.
func (sc *Script) Interrupt() (n int, ok bool) {
	if sc.irq == nil || sc.err != nil {
		return
	}

	return sc.call(sc.irq)
}

// Err returns the first failure raised by the script.
func (sc *Script) Err() error {
	return sc.err
}
