// Package cpu implements the octet microprocessor.
//
// The CPU has two 8-bit general registers (A and B), a hidden 8-bit result
// register (R) written by ADD, SUB and CMP and tested by JZ, a 16-bit program
// counter and a 16-bit stack pointer. Memory is a flat 64KiB byte array, and
// the stack lives in it at SP, growing upward.
//
// Execute returns the address of the next instruction; the program counter
// always holds the address of the opcode about to be fetched.
package cpu
