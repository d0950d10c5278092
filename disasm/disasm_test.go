package disasm

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/octet/assembler"
	"github.com/ezrec/octet/isa"
)

func doList(image []uint8) (text []string) {
	for line := range Lines(image) {
		text = append(text, line.String())
	}
	return
}

func TestLines(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		image []uint8
		text  []string
	}){
		{[]uint8{}, nil},
		{[]uint8{0x00}, []string{"8000: NOP"}},
		{[]uint8{0x01, 0x02}, []string{"8000: ADD #$02"}},
		{[]uint8{0x03, 0x00, 0x80}, []string{"8000: JMP $8000"}},
		{[]uint8{0x0b, 0xff, 0x01, 0x02, 0x0f}, []string{
			"8000: LDA #$FF",
			"8002: ADD #$02",
			"8004: HLT",
		}},
		{[]uint8{0x0d, 0x34, 0x12, 0x0e, 0x00, 0x02}, []string{
			"8000: LDA $1234",
			"8003: LDB $0200",
		}},
		{[]uint8{0x06, 0xfd, 0xff}, []string{"8000: JR $FFFD"}},
		{[]uint8{0x15, 0xff, 0x00}, []string{
			"8000: UNKNOWN OPCODE: 0x15",
			"8001: UNKNOWN OPCODE: 0xFF",
			"8002: NOP",
		}},
		{[]uint8{0x16, 0x30}, []string{"8000: CMP #$30"}},
	}

	for _, entry := range table {
		assert.Equal(entry.text, doList(entry.image), "% X", entry.image)
	}
}

func TestLinesTruncated(t *testing.T) {
	assert := assert.New(t)

	var lines []Line
	for line := range Lines([]uint8{0x00, 0x03, 0x12}) {
		lines = append(lines, line)
	}

	assert.Len(lines, 2)
	assert.Equal("8001: JMP $0012", lines[1].String())
	assert.Equal([]uint8{0x03, 0x12}, lines[1].Bytes)
	assert.True(lines[1].Known)
}

func TestLinesUnknown(t *testing.T) {
	assert := assert.New(t)

	for line := range Lines([]uint8{0x17}) {
		assert.False(line.Known)
		assert.Equal(1, line.Instruction.Length())
		assert.Equal([]uint8{0x17}, line.Bytes)
	}
}

func TestLinesLimit(t *testing.T) {
	assert := assert.New(t)

	image := make([]uint8, isa.PROGRAM_SIZE+16)
	count := 0
	var last Line
	for line := range Lines(image) {
		count++
		last = line
	}

	assert.Equal(isa.PROGRAM_SIZE, count)
	assert.Equal(uint16(0xffff), last.Address)
}

func TestLinesEarlyStop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Lines([]uint8{0x00, 0x00, 0x00}) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestFprint(t *testing.T) {
	assert := assert.New(t)

	image := []uint8{0x0b, 0x2a, 0x02, 0x0f}

	var buff bytes.Buffer
	err := Fprint(&buff, image, false)
	assert.NoError(err)
	assert.Equal("8000: LDA #$2A\n8002: OUTA\n8003: HLT\n", buff.String())

	buff.Reset()
	err = Fprint(&buff, image, true)
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"8000: 0B 2A     LDA #$2A",
		"8002: 02        OUTA",
		"8003: 0F        HLT",
		"",
	}, "\n"), buff.String())
}

// Every defined opcode survives disassembly followed by assembly.
func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for op := range 0x100 {
		info, ok := isa.Lookup(isa.Opcode(op))
		if !ok {
			continue
		}

		code := make([]uint8, info.Length())
		code[0] = uint8(op)
		for n := 1; n < len(code); n++ {
			code[n] = uint8(0x5a + n)
		}

		doRoundTrip(t, assert, code)
	}
}

func doRoundTrip(t *testing.T, assert *assert.Assertions, image []uint8) {
	var source []string
	var expected []uint8
	for line := range Lines(image) {
		if !line.Known || len(line.Bytes) != line.Instruction.Length() {
			continue
		}
		source = append(source, line.Instruction.String())
		expected = append(expected, line.Bytes...)
	}

	asm := &assembler.Assembler{Strict: true}
	prog, err := asm.Parse(strings.NewReader(strings.Join(source, "\n")))
	if !assert.NoError(err, "%v", source) {
		return
	}

	if len(expected) == 0 {
		expected = []uint8{}
	}
	assert.Equal(expected, prog.Binary(), "%v", source)
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]uint8{0x00, 0x01, 0x02, 0x03, 0x00, 0x80})
	f.Add([]uint8{0x0b, 0x2a, 0x0d, 0x34, 0x12, 0x06, 0xfd, 0xff, 0x16, 0x01, 0x0f})
	f.Add(slices.Repeat([]uint8{0x15}, 8))

	f.Fuzz(func(t *testing.T, image []uint8) {
		if len(image) > 256 {
			image = image[:256]
		}
		doRoundTrip(t, assert.New(t), image)
	})
}
