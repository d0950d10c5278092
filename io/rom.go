package io

import (
	"io"
	"iter"

	"github.com/ezrec/octet/isa"
)

// Rom is a binary program image: the raw bytes of program space starting
// at isa.PROGRAM_BASE. The image has no header; its length is the file
// length, at most isa.PROGRAM_SIZE bytes.
type Rom struct {
	Data []uint8

	readIndex int
}

var _ Channel = (*Rom)(nil)

var _ io.ReaderFrom = (*Rom)(nil)
var _ io.WriterTo = (*Rom)(nil)

// Rewind restarts Receive() at the first byte of the image.
func (rc *Rom) Rewind() {
	rc.readIndex = 0
}

// Receive returns an iterator over the remaining bytes of the image.
func (rc *Rom) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for rc.readIndex < len(rc.Data) {
			value := rc.Data[rc.readIndex]
			rc.readIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send always fails; a ROM is read only.
func (rc *Rom) Send(value uint8) error {
	return ErrChannelFull
}

// ReadFrom replaces the image with at most isa.PROGRAM_SIZE bytes from r.
// Bytes past the end of program space are ignored.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(io.LimitReader(r, isa.PROGRAM_SIZE))
	n = int64(len(data))
	if err != nil {
		return
	}

	rc.Data = data
	rc.Rewind()

	return
}

// WriteTo writes the image to w.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	if len(rc.Data) > isa.PROGRAM_SIZE {
		err = ErrRomSize
		return
	}

	written, err := w.Write(rc.Data)
	n = int64(written)

	return
}
