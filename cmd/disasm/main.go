package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/octet/disasm"
	"github.com/ezrec/octet/internal"
	"github.com/ezrec/octet/io"
)

func main() {
	var hex bool

	flag.BoolVar(&hex, "x", false, "Include instruction bytes in the listing")

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

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	rom := &io.Rom{}
	_, err = rom.ReadFrom(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	out := bufio.NewWriter(os.Stdout)
	err = disasm.Fprint(out, rom.Data, hex)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		log.Fatal(err)
	}
}
