// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/octet/assembler"
	"github.com/ezrec/octet/internal"
	"github.com/ezrec/octet/io"
)

func main() {
	var output string
	var quiet bool
	var strict bool
	var verbose bool

	flag.StringVar(&output, "o", "a.out", "Binary image output")
	flag.BoolVar(&quiet, "q", false, "Do not print the assembly trace")
	flag.BoolVar(&strict, "strict", false, "Treat warnings as errors")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v <input.asm> [flags]\n", os.Args[0])
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

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &assembler.Assembler{
		Verbose: verbose,
		Strict:  strict,
	}
	if !quiet {
		asm.Trace = func(em assembler.Emission) {
			fmt.Println(em)
		}
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	for _, warning := range prog.Warnings {
		log.Printf("%v: warning: %v", input, warning)
	}

	rom := &io.Rom{Data: prog.Binary()}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	_, err = rom.WriteTo(ouf)
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
