package emulator

import (
	"fmt"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/octet/isa"
)

// Setup installs a starlark script that presets the machine after every
// Reset(), once the ROM has been copied into program space.
//
// The script may call:
//
//	poke(addr, value...)   write bytes starting at addr
//	peek(addr)             read the byte at addr
//	word(addr, value)      write a little-endian word at addr
//	reg(name, value)       set register a, b, r, sp or pc
//
// and read the constants PROGRAM_BASE, RESET_VECTOR, NMI_VECTOR and
// MEMORY_SIZE. If the script sets pc, the reset vector is not used.
func (emu *Emulator) Setup(filename string, src []byte) {
	emu.setupName = filename
	emu.setupSrc = src
}

// runSetup executes the setup script, if any.
func (emu *Emulator) runSetup() (pc_set bool, err error) {
	if emu.setupSrc == nil {
		return
	}

	thread := starlark.Thread{
		Name: emu.setupName,
		Print: func(_ *starlark.Thread, msg string) {
			if emu.Verbose {
				log.Printf("%v: %v", emu.setupName, msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"PROGRAM_BASE": starlark.MakeInt(isa.PROGRAM_BASE),
		"RESET_VECTOR": starlark.MakeInt(isa.RESET_VECTOR),
		"NMI_VECTOR":   starlark.MakeInt(isa.NMI_VECTOR),
		"MEMORY_SIZE":  starlark.MakeInt(isa.MEMORY_SIZE),
	}

	pred["poke"] = starlark.NewBuiltin("poke", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) < 2 || len(kwargs) != 0 {
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupArgs)
		}
		addr, err := setupInt(args[0], isa.MEMORY_SIZE-1)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", fn.Name(), err)
		}
		for _, arg := range args[1:] {
			value, err := setupInt(arg, 0xff)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			emu.Cpu.Memory[uint16(addr)] = uint8(value)
			addr++
		}
		return starlark.None, nil
	})

	pred["peek"] = starlark.NewBuiltin("peek", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
		if err != nil {
			return nil, err
		}
		if addr < 0 || addr >= isa.MEMORY_SIZE {
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupRange(fmt.Sprint(addr)))
		}
		return starlark.MakeInt(int(emu.Cpu.Memory[addr])), nil
	})

	pred["word"] = starlark.NewBuiltin("word", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr, value int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &addr, &value)
		if err != nil {
			return nil, err
		}
		if addr < 0 || addr >= isa.MEMORY_SIZE {
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupRange(fmt.Sprint(addr)))
		}
		if value < 0 || value > 0xffff {
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupRange(fmt.Sprint(value)))
		}
		emu.Cpu.SetWord(uint16(addr), uint16(value))
		return starlark.None, nil
	})

	pred["reg"] = starlark.NewBuiltin("reg", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		var value int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &name, &value)
		if err != nil {
			return nil, err
		}

		limit := 0xff
		switch strings.ToLower(name) {
		case "pc", "sp":
			limit = 0xffff
		case "a", "b", "r":
		default:
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupRegister(name))
		}
		if value < 0 || value > limit {
			return nil, fmt.Errorf("%v: %w", fn.Name(), ErrSetupRange(fmt.Sprint(value)))
		}

		switch strings.ToLower(name) {
		case "a":
			emu.Cpu.A = uint8(value)
		case "b":
			emu.Cpu.B = uint8(value)
		case "r":
			emu.Cpu.R = uint8(value)
		case "sp":
			emu.Cpu.SP = uint16(value)
		case "pc":
			emu.Cpu.PC = uint16(value)
			pc_set = true
		}
		return starlark.None, nil
	})

	_, err = starlark.ExecFileOptions(&opts, &thread, emu.setupName, emu.setupSrc, pred)

	return
}

// setupInt converts a starlark value to an integer in [0, limit].
func setupInt(v starlark.Value, limit int) (value int, err error) {
	value, err = starlark.AsInt32(v)
	if err != nil {
		return
	}

	if value < 0 || value > limit {
		err = ErrSetupRange(v.String())
	}

	return
}
