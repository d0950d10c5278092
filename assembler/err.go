package assembler

import (
	"errors"

	"github.com/ezrec/octet/translate"
)

var f = translate.From

var (
	// Hard errors
	ErrLineTooLong   = errors.New(f("line too long"))
	ErrLabelEmpty    = errors.New(f("label name empty"))
	ErrLabelTooLong  = errors.New(f("label name too long"))
	ErrOriginRange   = errors.New(f(".org outside program space"))
	ErrImageOverflow = errors.New(f("image overflows program space"))

	// Warnings
	ErrLabelDuplicate     = errors.New(f("label redefined"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrOperandRange string

func (err ErrOperandRange) Error() string {
	return f("'%v' out of range", string(err))
}

type ErrIgnored string

func (err ErrIgnored) Error() string {
	return f("'%v' ignored", string(err))
}

// ErrSyntax locates a diagnostic in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
