// Package isa defines the octet instruction set: the opcode table shared by
// the assembler, the disassembler and the emulator.
//
// The machine has two 8-bit general-purpose registers (A and B), a hidden
// 8-bit result register (R) written by ADD, SUB and CMP and tested by JZ, a
// 16-bit program counter and a 16-bit stack pointer. Memory is a flat 64KiB
// byte space. Programs live in program space, 0x8000-0xFFFF, and the last
// four bytes of memory hold the little-endian reset and NMI vectors.
//
// All 16-bit operands are encoded little-endian, low byte first.
package isa
