// Package assembler implements the single pass assembler for the octet
// instruction set.
//
// Source is read line by line. A ';' starts a comment. A line containing
// ':' defines the text before it as a label bound to the current address.
// The .org directive moves the write cursor, and .byte and .word place raw
// data. Any other line is a mnemonic followed by at most one operand.
//
// Immediates are hexadecimal ("#$2A", "#2A", "2A"). Address operands are
// either a label or a hexadecimal address ("$8000", "8000"). Labels only
// resolve once they have been defined on an earlier line; a forward
// reference is encoded as a zero operand and reported as a warning.
//
// Problems that do not prevent encoding are collected as warnings in the
// returned Program, and only become errors in Strict mode.
package assembler
