package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x8000), Word(0x00, 0x80))
	lo, hi := Split(0x1234)
	assert.Equal(uint8(0x34), lo)
	assert.Equal(uint8(0x12), hi)
}

func TestInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst Instruction
		code []byte
		text string
	}){
		{Instruction{OP_NOP, 0}, []byte{0x00}, "NOP"},
		{Instruction{OP_ADD, 0x02}, []byte{0x01, 0x02}, "ADD #$02"},
		{Instruction{OP_JMP, 0x8000}, []byte{0x03, 0x00, 0x80}, "JMP $8000"},
		{Instruction{OP_JR, 0xfffd}, []byte{0x06, 0xfd, 0xff}, "JR $FFFD"},
		{Instruction{OP_SETSP, 0x9000}, []byte{0x08, 0x00, 0x90}, "SETSP $9000"},
		{Instruction{OP_LDA_IMM, 0x7a}, []byte{0x0b, 0x7a}, "LDA #$7A"},
		{Instruction{OP_LDA_MEM, 0x0123}, []byte{0x0d, 0x23, 0x01}, "LDA $0123"},
		{Instruction{OP_CMP, 0xff}, []byte{0x16, 0xff}, "CMP #$FF"},
		{Instruction{OP_RTS, 0}, []byte{0x14}, "RTS"},
	}

	for _, entry := range table {
		assert.Equal(entry.code, entry.inst.Encode(), entry.text)
		assert.Equal(len(entry.code), entry.inst.Length(), entry.text)
		assert.Equal(entry.text, entry.inst.String())

		inst, err := Decode(entry.code)
		assert.NoError(err, entry.text)
		assert.Equal(entry.inst, inst)
	}
}

func TestMakeInstruction(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Instruction{OP_ADD, 0x34}, MakeInstruction(OP_ADD, 0x1234))
	assert.Equal(Instruction{OP_NOP, 0}, MakeInstruction(OP_NOP, 0x1234))
	assert.Equal(Instruction{OP_CALL, 0x1234}, MakeInstruction(OP_CALL, 0x1234))
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(nil)
	assert.ErrorIs(err, ErrDecodeEmpty)

	_, err = Decode([]byte{0x03, 0x00})
	assert.ErrorIs(err, ErrDecodeShort)

	inst, err := Decode([]byte{0x15})
	assert.ErrorIs(err, ErrOpcode(0))
	assert.Equal(Opcode(0x15), inst.Opcode)
	assert.Equal(1, inst.Length())
	assert.Equal("UNKNOWN OPCODE: 0x15", inst.String())
}

func TestTarget(t *testing.T) {
	assert := assert.New(t)

	back := Instruction{OP_JR, 0xfffd}
	assert.Equal(uint16(0x8002), back.Target(0x8005))

	ahead := Instruction{OP_JR, 0x0010}
	assert.Equal(uint16(0x0005), ahead.Target(0xfff5))
}
