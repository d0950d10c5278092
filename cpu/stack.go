package cpu

import (
	"github.com/ezrec/octet/isa"
)

// Push writes a byte at SP, then increments SP.
func (cpu *Cpu) Push(value uint8) {
	cpu.Memory[cpu.SP] = value
	cpu.SP++
}

// Pull decrements SP, then reads the byte at SP.
func (cpu *Cpu) Pull() (value uint8) {
	cpu.SP--
	value = cpu.Memory[cpu.SP]
	return
}

// PushAddress pushes a return address, high byte first.
func (cpu *Cpu) PushAddress(addr uint16) {
	lo, hi := isa.Split(addr)
	cpu.Push(hi)
	cpu.Push(lo)
}

// PullAddress pulls a return address, low byte first.
func (cpu *Cpu) PullAddress() (addr uint16) {
	lo := cpu.Pull()
	hi := cpu.Pull()
	addr = isa.Word(lo, hi)
	return
}
