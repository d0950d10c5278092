// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	stdio "io"
	"log"

	"github.com/ezrec/octet/cpu"
	"github.com/ezrec/octet/io"
	"github.com/ezrec/octet/isa"
)

// Emulator state. CPU + ROM image + output tape.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Rom  io.Rom  // ROM image, copied to program space on reset.
	Tape io.Tape // Output port written by OUTA.

	setupName string
	setupSrc  []byte
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// Load reads a binary image into the ROM. At most isa.PROGRAM_SIZE bytes
// are read.
func (emu *Emulator) Load(r stdio.Reader) (err error) {
	_, err = emu.Rom.ReadFrom(r)
	return
}

// Reset the emulator state.
// - Clears the CPU registers and memory.
// - Copies the ROM into program space.
// - Runs the setup script.
// - Loads PC from the reset vector.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	emu.Rom.Rewind()
	addr := isa.PROGRAM_BASE
	for value := range emu.Rom.Receive() {
		emu.Cpu.Memory[addr] = value
		addr++
		if addr == isa.MEMORY_SIZE {
			break
		}
	}

	pc_set, err := emu.runSetup()
	if err != nil {
		return
	}

	if !pc_set {
		emu.Cpu.PC = emu.Cpu.Word(isa.RESET_VECTOR)
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %v bytes loaded, pc %04X", addr-isa.PROGRAM_BASE, emu.Cpu.PC)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.PC
	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run ticks the emulator until it halts, fails, or ctx is done.
// On halt, exit is the value of the A register.
func (emu *Emulator) Run(ctx context.Context) (exit int, err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	exit = int(emu.Cpu.A)

	if emu.Verbose {
		log.Printf("emulator: halted after %v ticks, exit %v", emu.Cpu.Ticks, exit)
	}

	return
}
