package isa

import (
	"fmt"
)

// Word assembles a little-endian 16-bit value.
func Word(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Split returns the little-endian bytes of a 16-bit value.
func Split(value uint16) (lo, hi uint8) {
	return uint8(value & 0xff), uint8(value >> 8)
}

// Instruction is a decoded opcode with its operand.
// Operand is zero for instructions that take none.
type Instruction struct {
	Opcode  Opcode
	Operand uint16
}

// MakeInstruction creates an instruction, truncating the operand to the
// width the opcode encodes.
func MakeInstruction(op Opcode, operand uint16) (inst Instruction) {
	inst.Opcode = op
	info, _ := Lookup(op)
	switch info.Operand {
	case OPERAND_NONE:
	case OPERAND_IMM8:
		inst.Operand = operand & 0xff
	default:
		inst.Operand = operand
	}
	return
}

// Length returns the encoded length in bytes, or 1 for undefined opcodes.
func (inst Instruction) Length() int {
	info, ok := Lookup(inst.Opcode)
	if !ok {
		return 1
	}
	return info.Length()
}

// Encode returns the machine code of the instruction.
func (inst Instruction) Encode() (code []byte) {
	code = []byte{uint8(inst.Opcode)}

	info, _ := Lookup(inst.Opcode)
	switch info.Operand {
	case OPERAND_IMM8:
		code = append(code, uint8(inst.Operand))
	case OPERAND_ADDR16, OPERAND_REL16:
		lo, hi := Split(inst.Operand)
		code = append(code, lo, hi)
	}

	return
}

// Decode decodes the instruction at the start of code.
func Decode(code []byte) (inst Instruction, err error) {
	if len(code) == 0 {
		err = ErrDecodeEmpty
		return
	}

	inst.Opcode = Opcode(code[0])
	info, ok := Lookup(inst.Opcode)
	if !ok {
		err = ErrOpcode(inst.Opcode)
		return
	}

	if len(code) < info.Length() {
		err = ErrDecodeShort
		return
	}

	switch info.Operand {
	case OPERAND_IMM8:
		inst.Operand = uint16(code[1])
	case OPERAND_ADDR16, OPERAND_REL16:
		inst.Operand = Word(code[1], code[2])
	}

	return
}

// Target returns the destination of a relative jump located at addr.
func (inst Instruction) Target(addr uint16) uint16 {
	return addr + inst.Operand
}

// String returns the canonical assembly text of the instruction.
func (inst Instruction) String() string {
	info, ok := Lookup(inst.Opcode)
	if !ok {
		return fmt.Sprintf("UNKNOWN OPCODE: 0x%02X", uint8(inst.Opcode))
	}

	switch info.Operand {
	case OPERAND_IMM8:
		return fmt.Sprintf("%v #$%02X", info.Mnemonic, inst.Operand&0xff)
	case OPERAND_ADDR16, OPERAND_REL16:
		return fmt.Sprintf("%v $%04X", info.Mnemonic, inst.Operand)
	}

	return info.Mnemonic
}
