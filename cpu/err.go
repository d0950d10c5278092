package cpu

import (
	"errors"

	"github.com/ezrec/octet/isa"
	"github.com/ezrec/octet/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt           = errors.New(f("halted"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
)

// ErrInstruction is the instruction that failed to execute.
type ErrInstruction isa.Instruction

func (ei ErrInstruction) Error() string {
	return f("executing %v", isa.Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
