// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/vcpu/emulator"
	"github.com/ezrec/vcpu/port"
)

// scriptFlag collects -script PORT:FILE arguments.
type scriptFlag map[uint8]string

func (sf scriptFlag) String() string {
	return fmt.Sprintf("%v", map[uint8]string(sf))
}

func (sf scriptFlag) Set(value string) error {
	num, file, ok := strings.Cut(value, ":")
	if !ok || len(file) == 0 {
		return fmt.Errorf("expected PORT:FILE, not %q", value)
	}
	n, err := strconv.ParseUint(num, 0, 8)
	if err != nil {
		return err
	}
	sf[uint8(n)] = file
	return nil
}

func main() {
	var arch string
	var base uint
	var pc uint
	var sp uint
	var cycles int
	var tapePort uint
	var input string
	var output string
	var verbose bool
	scripts := scriptFlag{}

	archs := strings.Join(slices.Collect(emulator.Architectures()), ", ")

	flag.StringVar(&arch, "arch", "8080", "Architecture: "+archs)
	flag.UintVar(&base, "base", 0x0100, "Load address of the image")
	flag.UintVar(&pc, "pc", 0x0100, "Start address")
	flag.UintVar(&sp, "sp", 0x0000, "Initial stack pointer")
	flag.IntVar(&cycles, "cycles", 0, "Stop after this many clock states (0 is unlimited)")
	flag.UintVar(&tapePort, "port", 0x01, "Tape data port; the status port follows it")
	flag.Var(scripts, "script", "Starlark device as PORT:FILE (repeatable)")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one image file, not %v", os.Args[0], flag.Args())
	}

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	emu, err := emulator.NewEmulator(arch)
	if err != nil {
		log.Fatal(err)
	}
	emu.Verbose = verbose

	bus := &port.Bus{Verbose: verbose}
	emu.Ports = bus

	tape := &port.Tape{
		DataPort:   uint8(tapePort),
		StatusPort: uint8(tapePort + 1),
	}

	if input == "-" {
		tape.Reader = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		tape.Reader = inf
	}

	if output == "-" {
		tape.Writer = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		tape.Writer = ouf
	}

	for _, n := range []uint8{tape.DataPort, tape.StatusPort} {
		err = bus.Attach(n, tape)
		if err != nil {
			log.Fatal(err)
		}
	}

	for n, file := range scripts {
		sc, err := port.NewScript(file, nil)
		if err != nil {
			log.Fatal(err)
		}
		sc.Verbose = verbose
		err = bus.Attach(n, sc)
		if err != nil {
			log.Fatalf("%v: %v", file, err)
		}
	}

	emu.Reset(image, uint16(base), uint16(pc))
	emu.State.Stack.SetSP(uint16(sp))

	err = emu.Run(cycles)
	if verbose {
		log.Printf("%v instructions, %v cycles", emu.Steps, emu.Cycles)
	}
	if err != nil && !errors.Is(err, emulator.ErrHalted) {
		log.Fatal(err)
	}
}
