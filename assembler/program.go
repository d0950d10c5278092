package assembler

import (
	"fmt"
	"iter"

	"github.com/ezrec/octet/isa"
)

// Emission records the bytes produced by one source line.
type Emission struct {
	LineNo  int      // Source line number.
	Address uint16   // Address of the first byte.
	Words   []string // Source words.
	Bytes   []uint8  // Machine code or data.
	Text    string   // Canonical text of the emitted bytes.
}

// String renders the emission as an assembler trace line.
func (em Emission) String() string {
	return f("Assembled %v at %04X: %v", em.Text, em.Address, fmt.Sprintf("% X", em.Bytes))
}

// Program is the result of an assembly run.
type Program struct {
	Emissions []Emission  // Emissions in source order.
	End       int         // Write cursor after the last line.
	Labels    *LabelTable // Labels defined by the source.
	Warnings  []error     // Diagnostics that did not prevent encoding.
}

// Debug returns the emission covering an address. When output was
// overwritten after an .org, the latest emission wins.
func (prog *Program) Debug(addr uint16) (em *Emission, index int) {
	for n := len(prog.Emissions) - 1; n >= 0; n-- {
		candidate := &prog.Emissions[n]
		start := int(candidate.Address)
		if int(addr) >= start && int(addr) < start+len(candidate.Bytes) {
			em = candidate
			index = int(addr) - start
			return
		}
	}

	return
}

// Codes returns an iterator over every emitted byte and its address, in
// emission order.
func (prog *Program) Codes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, code uint8) bool) {
		for _, em := range prog.Emissions {
			for n, code := range em.Bytes {
				if !yield(em.Address+uint16(n), code) {
					return
				}
			}
		}
	}
}

// Binary returns the program image: the bytes of [isa.PROGRAM_BASE, End).
// Gaps left by .org are zero, and bytes emitted at or beyond End are
// dropped.
func (prog *Program) Binary() (bins []uint8) {
	size := prog.End - isa.PROGRAM_BASE
	if size <= 0 {
		return []uint8{}
	}

	bins = make([]uint8, size)
	for addr, code := range prog.Codes() {
		offset := int(addr) - isa.PROGRAM_BASE
		if offset >= 0 && offset < size {
			bins[offset] = code
		}
	}

	return
}
