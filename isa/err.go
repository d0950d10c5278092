package isa

import (
	"errors"

	"github.com/ezrec/octet/translate"
)

var f = translate.From

var (
	ErrDecodeEmpty = errors.New(f("nothing to decode"))
	ErrDecodeShort = errors.New(f("instruction truncated"))
)

// ErrOpcode is an opcode that is not part of the instruction set.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("undefined opcode 0x%02X", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
