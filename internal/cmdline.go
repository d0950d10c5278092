// Package internal holds helpers shared by the octet commands.
package internal

import (
	"errors"
	"flag"

	"github.com/ezrec/octet/translate"
)

var f = translate.From

var (
	ErrInputMissing = errors.New(f("input file missing"))
	ErrInputExtra   = errors.New(f("unexpected arguments"))
)

// ParseInput parses arguments into the flag set, accepting the single
// input file before or after the flags.
func ParseInput(flags *flag.FlagSet, arguments []string) (input string, err error) {
	err = flags.Parse(arguments)
	if err != nil {
		return
	}

	args := flags.Args()
	if len(args) > 0 {
		input = args[0]
		err = flags.Parse(args[1:])
		if err != nil {
			return
		}
		args = flags.Args()
	}

	switch {
	case len(input) == 0:
		err = ErrInputMissing
	case len(args) != 0:
		err = errors.Join(ErrInputExtra, errors.New(args[0]))
	}

	return
}
