// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/octet/isa"
)

const (
	LINE_LIMIT = 127 // Maximum length of a source line.
)

// Assembler is a single pass assembler for the octet instruction set.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Strict  bool           // If set, the first warning aborts the assembly.
	Trace   func(Emission) // If set, called for each emission as it is made.

	Labels LabelTable // Labels seen so far.

	cursor    int
	lineno    int
	line      string
	emissions []Emission
	warnings  []error
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: asm.lineno, Line: asm.line, Err: err}
		}
	}()

	asm.Labels.Reset()
	asm.cursor = isa.PROGRAM_BASE
	asm.lineno = 0
	asm.line = ""
	asm.emissions = nil
	asm.warnings = nil

	for scanner.Scan() {
		text := scanner.Text()
		asm.lineno += 1
		asm.line = text

		if asm.Verbose {
			log.Printf("%v: %v\n", asm.lineno, text)
		}

		if len(text) > LINE_LIMIT {
			err = ErrLineTooLong
			return
		}

		text_comment := strings.SplitN(text, ";", 2)
		line := strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		err = asm.parseLine(line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Emissions: slices.Clone(asm.emissions),
		End:       asm.cursor,
		Labels:    &LabelTable{},
		Warnings:  slices.Clone(asm.warnings),
	}
	for name, addr := range asm.Labels.All() {
		prog.Labels.Define(name, addr)
	}

	return
}

// warn records a diagnostic for the current line.
// In Strict mode the diagnostic is returned as an error instead.
func (asm *Assembler) warn(diag error) (err error) {
	if asm.Strict {
		err = diag
		return
	}

	if asm.Verbose {
		log.Printf("%v: warning: %v", asm.lineno, diag)
	}

	asm.warnings = append(asm.warnings, &ErrSyntax{LineNo: asm.lineno, Line: asm.line, Err: diag})

	return
}

// parseLine assembles one line with its comment removed.
func (asm *Assembler) parseLine(line string) (err error) {
	// LABEL:
	label, rest, is_label := strings.Cut(line, ":")
	if is_label {
		label = strings.TrimSpace(label)
		switch {
		case len(label) == 0:
			err = ErrLabelEmpty
			return
		case len(label) > LABEL_LIMIT:
			err = ErrLabelTooLong
			return
		case asm.cursor >= isa.MEMORY_SIZE:
			err = ErrImageOverflow
			return
		}

		if asm.Labels.Define(label, uint16(asm.cursor)) {
			err = asm.warn(ErrLabelDuplicate)
			if err != nil {
				return
			}
		}

		rest = strings.TrimSpace(rest)
		if len(rest) != 0 {
			err = asm.warn(ErrIgnored(rest))
		}
		return
	}

	words := strings.Fields(line)

	switch words[0] {
	case ".org":
		return asm.parseOrigin(words)
	case ".byte":
		return asm.parseData(words, DATA_BYTE)
	case ".word":
		return asm.parseData(words, DATA_WORD)
	}

	return asm.parseWords(words)
}

// parseOrigin handles `.org ADDR`.
func (asm *Assembler) parseOrigin(words []string) (err error) {
	if len(words) < 2 {
		return asm.warn(ErrOperandMissing)
	}
	if len(words) > 2 {
		err = asm.warn(ErrOpcodeExtraArgs)
		if err != nil {
			return
		}
	}

	value, ok := parseHex(words[1])
	if !ok {
		return asm.warn(ErrParseNumber(words[1]))
	}

	if value < isa.PROGRAM_BASE || value >= isa.MEMORY_SIZE {
		err = ErrOriginRange
		return
	}

	asm.cursor = int(value)

	return
}

// DataKind selects the width of a data directive.
type DataKind int

const (
	DATA_BYTE = DataKind(1) // .byte
	DATA_WORD = DataKind(2) // .word
)

// parseData handles `.byte XX...` and `.word XXXX...`.
func (asm *Assembler) parseData(words []string, kind DataKind) (err error) {
	if len(words) < 2 {
		return asm.warn(ErrOperandMissing)
	}

	var data []uint8
	var text []string
	for _, word := range words[1:] {
		switch kind {
		case DATA_BYTE:
			var value uint8
			value, err = asm.immediate(word)
			if err != nil {
				return
			}
			data = append(data, value)
			text = append(text, fmt.Sprintf("$%02X", value))
		case DATA_WORD:
			var value uint16
			value, err = asm.address(word)
			if err != nil {
				return
			}
			lo, hi := isa.Split(value)
			data = append(data, lo, hi)
			text = append(text, fmt.Sprintf("$%04X", value))
		}
	}

	return asm.emit(words, data, words[0]+" "+strings.Join(text, " "))
}

// parseWords assembles a mnemonic and its operand.
func (asm *Assembler) parseWords(words []string) (err error) {
	mnemonic := words[0]
	opcodes := isa.Mnemonics(mnemonic)
	if len(opcodes) == 0 {
		return asm.warn(ErrInstructionInvalid)
	}

	var operand string
	if len(words) > 1 {
		operand = words[1]
	}
	if len(words) > 2 {
		err = asm.warn(ErrOpcodeExtraArgs)
		if err != nil {
			return
		}
	}

	op := opcodes[0]
	info, _ := isa.Lookup(op)

	var value uint16
	switch {
	case len(opcodes) > 1:
		// LDA and LDB: immediate or memory form.
		op, value, err = asm.load(opcodes, operand)
	case info.Operand == isa.OPERAND_NONE:
		if len(words) == 2 {
			err = asm.warn(ErrOpcodeExtraArgs)
		}
	case info.Operand == isa.OPERAND_IMM8:
		var imm uint8
		imm, err = asm.immediate(operand)
		value = uint16(imm)
	case info.Operand == isa.OPERAND_ADDR16:
		value, err = asm.address(operand)
	case info.Operand == isa.OPERAND_REL16:
		value, err = asm.relative(operand)
	}
	if err != nil {
		return
	}

	inst := isa.MakeInstruction(op, value)

	return asm.emit(words, inst.Encode(), inst.String())
}

// emit places bytes at the write cursor.
func (asm *Assembler) emit(words []string, data []uint8, text string) (err error) {
	if asm.cursor+len(data) > isa.MEMORY_SIZE {
		err = ErrImageOverflow
		return
	}

	em := Emission{
		LineNo:  asm.lineno,
		Address: uint16(asm.cursor),
		Words:   slices.Clone(words),
		Bytes:   data,
		Text:    text,
	}
	asm.emissions = append(asm.emissions, em)
	asm.cursor += len(data)

	if asm.Verbose {
		log.Printf("%v", em)
	}

	if asm.Trace != nil {
		asm.Trace(em)
	}

	return
}

// load resolves the operand of LDA or LDB. A label or a '$' address selects
// the memory form, anything else the immediate form.
func (asm *Assembler) load(opcodes []isa.Opcode, word string) (op isa.Opcode, value uint16, err error) {
	op_imm, op_mem := opcodes[0], opcodes[1]

	addr, ok := asm.Labels.Lookup(word)
	switch {
	case ok:
		op = op_mem
		value = addr
	case strings.HasPrefix(word, "$"):
		op = op_mem
		value, err = asm.address(word)
	default:
		var imm uint8
		op = op_imm
		imm, err = asm.immediate(word)
		value = uint16(imm)
	}

	return
}

// immediate parses an 8-bit hexadecimal operand.
func (asm *Assembler) immediate(word string) (value uint8, err error) {
	if len(word) == 0 {
		err = asm.warn(ErrOperandMissing)
		return
	}

	v16, ok := parseHex(strings.TrimPrefix(word, "#"))
	if !ok {
		if isLabel(word) {
			err = asm.warn(ErrLabelMissing(word))
		} else {
			err = asm.warn(ErrParseNumber(word))
		}
		return
	}

	if v16 > 0xff {
		err = asm.warn(ErrOperandRange(word))
	}

	value = uint8(v16 & 0xff)

	return
}

// address resolves a 16-bit operand: a label defined on an earlier line,
// or a hexadecimal address.
func (asm *Assembler) address(word string) (value uint16, err error) {
	if len(word) == 0 {
		err = asm.warn(ErrOperandMissing)
		return
	}

	value, ok := asm.Labels.Lookup(word)
	if ok {
		return
	}

	v32, ok := parseHex(word)
	if !ok {
		if isLabel(word) {
			err = asm.warn(ErrLabelMissing(word))
		} else {
			err = asm.warn(ErrParseNumber(word))
		}
		return
	}

	if v32 >= isa.MEMORY_SIZE {
		err = asm.warn(ErrOperandRange(word))
	}

	value = uint16(v32)

	return
}

// relative resolves the JR offset: a label, a raw '$' offset, or a signed
// decimal offset. Offsets are relative to the address of the JR itself.
func (asm *Assembler) relative(word string) (value uint16, err error) {
	if len(word) == 0 {
		err = asm.warn(ErrOperandMissing)
		return
	}

	addr, ok := asm.Labels.Lookup(word)
	if ok {
		value = addr - uint16(asm.cursor)
		return
	}

	if strings.HasPrefix(word, "$") {
		var v32 uint32
		v32, ok = parseHex(word)
		if !ok || v32 > 0xffff {
			err = asm.warn(ErrParseNumber(word))
			return
		}
		value = uint16(v32)
		return
	}

	v64, perr := strconv.ParseInt(word, 10, 16)
	if perr != nil {
		if isLabel(word) {
			err = asm.warn(ErrLabelMissing(word))
		} else {
			err = asm.warn(ErrParseNumber(word))
		}
		return
	}

	value = uint16(int16(v64))

	return
}

// parseHex parses a hexadecimal number with an optional '$' or '0x' prefix.
func parseHex(word string) (value uint32, ok bool) {
	word = strings.TrimPrefix(word, "$")
	if len(word) > 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X') {
		word = word[2:]
	}

	v64, err := strconv.ParseUint(word, 16, 32)
	if err != nil {
		return
	}

	value = uint32(v64)
	ok = true

	return
}

// isLabel returns true if the word could only be a label name.
func isLabel(word string) bool {
	if len(word) == 0 {
		return false
	}
	switch word[0] {
	case '#', '$', '-', '+':
		return false
	}
	if strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X") {
		return false
	}
	return true
}
