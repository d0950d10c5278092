// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package disasm

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/octet/isa"
)

// Line is one decoded instruction of a listing.
type Line struct {
	Address     uint16          // Address of the opcode.
	Bytes       []uint8         // Encoded bytes, as present in the image.
	Instruction isa.Instruction // Decoded instruction.
	Known       bool            // False for undefined opcodes.
}

// String returns the listing text: `XXXX: MNEMONIC [operand]`.
func (line Line) String() string {
	return fmt.Sprintf("%04X: %v", line.Address, line.Instruction)
}

// Hex returns the listing text with the raw bytes column.
func (line Line) Hex() string {
	return fmt.Sprintf("%04X: %-9v %v", line.Address, fmt.Sprintf("% X", line.Bytes), line.Instruction)
}

// Lines returns an iterator over the instructions of a binary image.
// At most isa.PROGRAM_SIZE bytes are walked. Operand bytes missing at the
// end of the image are read as zero.
func Lines(image []uint8) iter.Seq[Line] {
	if len(image) > isa.PROGRAM_SIZE {
		image = image[:isa.PROGRAM_SIZE]
	}

	return func(yield func(line Line) bool) {
		for offset := 0; offset < len(image); {
			line := Line{
				Address: uint16(isa.PROGRAM_BASE + offset),
			}

			op := isa.Opcode(image[offset])
			info, ok := isa.Lookup(op)
			length := 1
			if ok {
				length = info.Length()
			}

			code := make([]uint8, length)
			copy(code, image[offset:])

			line.Known = ok
			line.Bytes = image[offset:min(offset+length, len(image))]
			if ok {
				line.Instruction, _ = isa.Decode(code)
			} else {
				line.Instruction = isa.Instruction{Opcode: op}
			}

			if !yield(line) {
				return
			}

			offset += length
		}
	}
}

// Fprint writes the listing of an image to w, one line per instruction.
// If hex is set, the raw bytes of each instruction are included.
func Fprint(w io.Writer, image []uint8, hex bool) (err error) {
	var sb strings.Builder
	for line := range Lines(image) {
		if hex {
			sb.WriteString(line.Hex())
		} else {
			sb.WriteString(line.String())
		}
		sb.WriteByte('\n')
	}

	_, err = io.WriteString(w, sb.String())

	return
}
