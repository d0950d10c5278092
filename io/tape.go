package io

import (
	"io"
	"iter"
)

// Tape is the output-only port written by OUTA. Every byte sent is written
// to Output immediately, so output order matches execution order.
type Tape struct {
	Output io.Writer

	written int
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive yields nothing; the tape has no input side.
func (tc *Tape) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {}
}

// Send writes a byte to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		return
	}

	tc.written++

	return
}

// Written returns the number of bytes sent to the tape.
func (tc *Tape) Written() int {
	return tc.written
}
