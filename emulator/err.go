package emulator

import (
	"errors"

	"github.com/ezrec/octet/translate"
)

var f = translate.From

var (
	ErrSetupArgs = errors.New(f("setup argument invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %04X %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrSetupRange is a setup value that does not fit its destination.
type ErrSetupRange string

func (err ErrSetupRange) Error() string {
	return f("setup value %v out of range", string(err))
}

// ErrSetupRegister is an unknown register name in a setup script.
type ErrSetupRegister string

func (err ErrSetupRegister) Error() string {
	return f("setup register %v unknown", string(err))
}
