package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/octet/io"
	"github.com/ezrec/octet/isa"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// Cpu is the simulation context for the octet microprocessor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory [isa.MEMORY_SIZE]uint8 // Flat address space.

	A  uint8  // General register A.
	B  uint8  // General register B.
	R  uint8  // Result of the last ADD, SUB or CMP.
	PC uint16 // Address of the next opcode to fetch.
	SP uint16 // Next free stack byte.

	Halted bool // Set once HLT has executed.
	Ticks  int  // CPU ticks counter.

	Output Channel // Port written by OUTA.
}

// NewCpu creates a new CPU, with all memory and registers zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "sp", "a", "b", "r", "halt"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.PC)
		case "sp":
			strval = fmt.Sprintf("%04X", cpu.SP)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "b":
			strval = fmt.Sprintf("%02X", cpu.B)
		case "r":
			strval = fmt.Sprintf("%02X", cpu.R)
		case "halt":
			strval = "false"
			if cpu.Halted {
				strval = "true"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros statistics counters.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	cpu.A = 0
	cpu.B = 0
	cpu.R = 0
	cpu.PC = 0
	cpu.SP = 0
	cpu.Halted = false
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Word reads the little-endian word at addr.
func (cpu *Cpu) Word(addr uint16) uint16 {
	return isa.Word(cpu.Memory[addr], cpu.Memory[addr+1])
}

// SetWord writes a little-endian word at addr.
func (cpu *Cpu) SetWord(addr uint16, value uint16) {
	lo, hi := isa.Split(value)
	cpu.Memory[addr] = lo
	cpu.Memory[addr+1] = hi
}

// Fetch decodes the instruction at PC. Operand bytes wrap around the end
// of memory. Undefined opcodes decode with a zero operand.
func (cpu *Cpu) Fetch() (inst isa.Instruction) {
	code := [3]uint8{
		cpu.Memory[cpu.PC],
		cpu.Memory[cpu.PC+1],
		cpu.Memory[cpu.PC+2],
	}

	inst, err := isa.Decode(code[:])
	if err != nil {
		inst = isa.Instruction{Opcode: isa.Opcode(code[0])}
	}

	return
}

// Tick executes a single CPU instruction cycle.
// After HLT, Tick returns ErrHalt without executing anything.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalt
		return
	}

	inst := cpu.Fetch()

	next, err := cpu.Execute(inst)
	cpu.Ticks++
	if err != nil {
		return
	}

	cpu.PC = next

	return
}

// Execute executes a single decoded instruction located at PC, and returns
// the address of the next instruction to execute.
func (cpu *Cpu) Execute(inst isa.Instruction) (next uint16, err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04X: %v", cpu.PC, inst)
	}

	next = cpu.PC + uint16(inst.Length())

	switch inst.Opcode {
	case isa.OP_NOP:
		// pass
	case isa.OP_ADD:
		cpu.R = cpu.A + uint8(inst.Operand)
	case isa.OP_SUB, isa.OP_CMP:
		cpu.R = cpu.A - uint8(inst.Operand)
	case isa.OP_OUTA:
		if cpu.Output == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.Output.Send(cpu.A)
		if err != nil {
			return
		}
	case isa.OP_JMP:
		next = inst.Operand
	case isa.OP_JZ:
		if cpu.R == 0 {
			next = inst.Operand
		}
	case isa.OP_JR:
		next = inst.Target(cpu.PC)
	case isa.OP_CALL:
		cpu.PushAddress(next)
		next = inst.Operand
	case isa.OP_RTS:
		next = cpu.PullAddress()
	case isa.OP_SETSP:
		cpu.SP = inst.Operand
	case isa.OP_TBA:
		cpu.A = cpu.B
	case isa.OP_TAB:
		cpu.B = cpu.A
	case isa.OP_LDA_IMM:
		cpu.A = uint8(inst.Operand)
	case isa.OP_LDB_IMM:
		cpu.B = uint8(inst.Operand)
	case isa.OP_LDA_MEM:
		cpu.A = cpu.Memory[inst.Operand]
	case isa.OP_LDB_MEM:
		cpu.B = cpu.Memory[inst.Operand]
	case isa.OP_STA:
		cpu.Memory[inst.Operand] = cpu.A
	case isa.OP_STB:
		cpu.Memory[inst.Operand] = cpu.B
	case isa.OP_PHA:
		cpu.Push(cpu.A)
	case isa.OP_PLA:
		cpu.A = cpu.Pull()
	case isa.OP_HLT:
		cpu.Halted = true
		next = cpu.PC
		err = ErrHalt
	default:
		// Undefined opcodes take the NMI vector.
		next = cpu.Word(isa.NMI_VECTOR)
		if cpu.Verbose {
			log.Printf("%04X: NMI 0x%02X -> %04X", cpu.PC, uint8(inst.Opcode), next)
		}
	}

	return
}
