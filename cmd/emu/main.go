// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/octet/emulator"
	"github.com/ezrec/octet/internal"
)

func main() {
	var setup string
	var verbose bool

	flag.StringVar(&setup, "setup", "", "Starlark machine setup script")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v <input.bin> [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}

	input, err := internal.ParseInput(flag.CommandLine, os.Args[1:])
	if errors.Is(err, internal.ErrInputMissing) {
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Tape.Output = os.Stdout

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if len(setup) != 0 {
		src, err := os.ReadFile(setup)
		if err != nil {
			log.Fatalf("%v: %v", setup, err)
		}
		emu.Setup(setup, src)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", setup, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exit, err := emu.Run(ctx)
	stop()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		log.Fatalf("%v: %v", input, err)
	}

	os.Exit(exit)
}
