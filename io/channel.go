// Package io provides the byte channels attached to the octet machine:
// the ROM holding a binary program image, and the tape that receives the
// bytes written by the OUTA instruction.
package io

import (
	"iter"
)

// Channel defines the interface for the machine's byte channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[uint8]
	// Send writes a single byte to the channel.
	Send(value uint8) error
}
