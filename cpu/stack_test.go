package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.SP = 0x4000

	cpu.Push(0x12)
	cpu.Push(0x34)
	assert.Equal(uint16(0x4002), cpu.SP)
	assert.Equal(uint8(0x12), cpu.Memory[0x4000])
	assert.Equal(uint8(0x34), cpu.Memory[0x4001])
}

func TestStack_Pull(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.SP = 0x4000
	cpu.Push(0x12)
	cpu.Push(0x34)

	assert.Equal(uint8(0x34), cpu.Pull())
	assert.Equal(uint8(0x12), cpu.Pull())
	assert.Equal(uint16(0x4000), cpu.SP)
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x5a)
	assert.Equal(uint16(0x0001), cpu.SP)

	cpu.SP = 0
	assert.Equal(uint8(0x00), cpu.Pull())
	assert.Equal(uint16(0xffff), cpu.SP)

	cpu.SP = 0xffff
	cpu.Push(0xa5)
	assert.Equal(uint16(0x0000), cpu.SP)
	assert.Equal(uint8(0xa5), cpu.Memory[0xffff])
}

func TestStack_Address(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.SP = 0x0100

	cpu.PushAddress(0x8006)
	assert.Equal([]uint8{0x80, 0x06}, cpu.Memory[0x0100:0x0102])
	assert.Equal(uint16(0x8006), cpu.PullAddress())
	assert.Equal(uint16(0x0100), cpu.SP)
}
