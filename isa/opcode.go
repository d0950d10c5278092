// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
)

const (
	MEMORY_SIZE  = 0x10000 // Size of the address space.
	PROGRAM_BASE = 0x8000  // First address of program space.
	PROGRAM_SIZE = 0x8000  // Size of program space.
	RESET_VECTOR = 0xfffc  // Little-endian PC loaded at reset.
	NMI_VECTOR   = 0xfffe  // Little-endian PC loaded on an undefined opcode.
)

// Opcode is the first byte of an encoded instruction.
type Opcode uint8

const (
	OP_NOP     = Opcode(0x00) // NOP
	OP_ADD     = Opcode(0x01) // ADD
	OP_OUTA    = Opcode(0x02) // OUTA
	OP_JMP     = Opcode(0x03) // JMP
	OP_JZ      = Opcode(0x04) // JZ
	OP_SUB     = Opcode(0x05) // SUB
	OP_JR      = Opcode(0x06) // JR
	OP_CALL    = Opcode(0x07) // CALL
	OP_SETSP   = Opcode(0x08) // SETSP
	OP_TBA     = Opcode(0x09) // TBA
	OP_TAB     = Opcode(0x0a) // TAB
	OP_LDA_IMM = Opcode(0x0b) // LDA #imm8
	OP_LDB_IMM = Opcode(0x0c) // LDB #imm8
	OP_LDA_MEM = Opcode(0x0d) // LDA addr16
	OP_LDB_MEM = Opcode(0x0e) // LDB addr16
	OP_HLT     = Opcode(0x0f) // HLT
	OP_STA     = Opcode(0x10) // STA
	OP_STB     = Opcode(0x11) // STB
	OP_PHA     = Opcode(0x12) // PHA
	OP_PLA     = Opcode(0x13) // PLA
	OP_RTS     = Opcode(0x14) // RTS
	OP_CMP     = Opcode(0x16) // CMP
)

// OperandKind is the interpretation of the bytes following an opcode.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE   = OperandKind(0) // none
	OPERAND_IMM8   = OperandKind(1) // imm8
	OPERAND_ADDR16 = OperandKind(2) // addr16
	OPERAND_REL16  = OperandKind(3) // rel16
)

// Size returns the number of operand bytes of the kind.
func (kind OperandKind) Size() int {
	switch kind {
	case OPERAND_IMM8:
		return 1
	case OPERAND_ADDR16, OPERAND_REL16:
		return 2
	}
	return 0
}

// Info describes a single opcode.
type Info struct {
	Mnemonic string      // Source mnemonic.
	Operand  OperandKind // Operand shape.
}

// Length returns the total encoded length of the instruction.
func (info Info) Length() int {
	return 1 + info.Operand.Size()
}

var table = map[Opcode]Info{
	OP_NOP:     {"NOP", OPERAND_NONE},
	OP_ADD:     {"ADD", OPERAND_IMM8},
	OP_OUTA:    {"OUTA", OPERAND_NONE},
	OP_JMP:     {"JMP", OPERAND_ADDR16},
	OP_JZ:      {"JZ", OPERAND_ADDR16},
	OP_SUB:     {"SUB", OPERAND_IMM8},
	OP_JR:      {"JR", OPERAND_REL16},
	OP_CALL:    {"CALL", OPERAND_ADDR16},
	OP_SETSP:   {"SETSP", OPERAND_ADDR16},
	OP_TBA:     {"TBA", OPERAND_NONE},
	OP_TAB:     {"TAB", OPERAND_NONE},
	OP_LDA_IMM: {"LDA", OPERAND_IMM8},
	OP_LDB_IMM: {"LDB", OPERAND_IMM8},
	OP_LDA_MEM: {"LDA", OPERAND_ADDR16},
	OP_LDB_MEM: {"LDB", OPERAND_ADDR16},
	OP_HLT:     {"HLT", OPERAND_NONE},
	OP_STA:     {"STA", OPERAND_ADDR16},
	OP_STB:     {"STB", OPERAND_ADDR16},
	OP_PHA:     {"PHA", OPERAND_NONE},
	OP_PLA:     {"PLA", OPERAND_NONE},
	OP_RTS:     {"RTS", OPERAND_NONE},
	OP_CMP:     {"CMP", OPERAND_IMM8},
}

// mnemonicMap maps source mnemonics to their encodings, immediate form first.
var mnemonicMap = map[string][]Opcode{}

func init() {
	for op := range 0x100 {
		info, ok := table[Opcode(op)]
		if !ok {
			continue
		}
		mnemonicMap[info.Mnemonic] = append(mnemonicMap[info.Mnemonic], Opcode(op))
	}
}

// Lookup returns the table entry for an opcode.
func Lookup(op Opcode) (info Info, ok bool) {
	info, ok = table[op]
	return
}

// Mnemonics returns the opcodes encoding a source mnemonic, in opcode order.
func Mnemonics(mnemonic string) []Opcode {
	return mnemonicMap[mnemonic]
}

// Defined returns true if the opcode is part of the instruction set.
func (op Opcode) Defined() bool {
	_, ok := table[op]
	return ok
}

// Info returns the table entry for the opcode.
func (op Opcode) Info() (info Info, ok bool) {
	return Lookup(op)
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info, ok := table[op]
	if !ok {
		return fmt.Sprintf("0x%02X", uint8(op))
	}
	return info.Mnemonic
}
