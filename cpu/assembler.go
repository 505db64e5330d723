// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8/memory"
)

const (
	DIRECTIVE_PREFIX     = "#"  // Prefix of all directives.
	DIRECTIVE_DEFINITION = "#f" // Opens a subroutine definition.
	COMMENT_PREFIX       = "//" // Comment to end of line.
)

// Definition is a named subroutine body.
type Definition struct {
	Name    string   // Name of the subroutine.
	LineNo  int      // Line of the #f directive.
	Line    string   // Text of the #f directive.
	Opcodes []Opcode // Body, ending with RET once closed.
}

// Site is the location of an unlinked call.
type Site struct {
	Owner  string // Definition name, or empty for the program image.
	Index  int    // Index of the placeholder in the owner's opcodes.
	LineNo int    // Source line of the reference.
	Line   string // Source text of the reference.
}

// Assembler translates source lines into a linked Program.
//
// Calls to subroutines are emitted as CODE_UNLINKED placeholders, and
// patched when the references are resolved. Subroutine bodies are placed
// after the program image, in order of definition.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Origin  uint16 // Load address of the program image.

	Image      []Opcode               // Program image.
	Definition map[string]*Definition // Symbol table.
	Reference  map[string][]Site      // Relocation table.

	mnemonics MnemonicTable
	predefine map[string]string
	current   *Definition
	order     []string // Definition names, in source order.
	refs      []string // Reference names, in order of first use.
	lineno    int
	words     int // Words emitted to the image and all definitions.
}

// NewAssembler creates an assembler using a mnemonic table.
func NewAssembler(mnemonics MnemonicTable) (asm *Assembler) {
	asm = &Assembler{
		Origin:    memory.PROGRAM_START,
		mnemonics: mnemonics,
	}

	asm.Reset()

	return
}

// Predefine defines a constant available to $(...) expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Reset discards all assembled state, and restarts line numbering.
func (asm *Assembler) Reset() {
	asm.Image = nil
	asm.Definition = map[string]*Definition{}
	asm.Reference = map[string][]Site{}
	asm.current = nil
	asm.order = nil
	asm.refs = nil
	asm.lineno = 0
	asm.words = 0
}

// emit appends an opcode to the open definition, or to the image.
func (asm *Assembler) emit(op Opcode) (site Site, err error) {
	if 2*(asm.words+1) > memory.MEMORY_SIZE-int(asm.Origin) {
		err = ErrImageFull
		return
	}
	asm.words++

	if asm.current != nil {
		site = Site{Owner: asm.current.Name, Index: len(asm.current.Opcodes)}
		asm.current.Opcodes = append(asm.current.Opcodes, op)
	} else {
		site = Site{Index: len(asm.Image)}
		asm.Image = append(asm.Image, op)
	}

	return
}

// valueOf parses a hexadecimal operand, with optional 0x prefix.
// Register operands may also have a V prefix.
func (asm *Assembler) valueOf(word string, register bool) (value uint16, err error) {
	text := word
	if register && len(text) > 1 && (text[0] == 'V' || text[0] == 'v') {
		text = text[1:]
	}
	if len(text) > 2 && (text[:2] == "0x" || text[:2] == "0X") {
		text = text[2:]
	}

	v64, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOperandRange
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	value = uint16(v64)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string, lineno int) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range asm.predefine {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Only integer constants are visible.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var reParenEval = regexp.MustCompile(`\$\([^\$]*\)`)

// commentIndex returns the start of the comment in line, or -1.
// A COMMENT_PREFIX inside a $(...) span is not a comment.
func commentIndex(line string) int {
	spans := reParenEval.FindAllStringIndex(line, -1)
	for from := 0; from < len(line); {
		index := strings.Index(line[from:], COMMENT_PREFIX)
		if index < 0 {
			return -1
		}
		index += from
		inside := false
		for _, span := range spans {
			if index >= span[0] && index < span[1] {
				inside = true
				from = span[1]
				break
			}
		}
		if !inside {
			return index
		}
	}
	return -1
}

// parseLine strips comments, expands expressions, and splits a line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	index := commentIndex(line)
	if index >= 0 {
		line = line[:index]
	}

	line = reParenEval.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil && err == nil {
			err = errors.Join(ErrParseExpression(str[2:len(str)-1]), _err)
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	return
}

// InterpretLine assembles a single line of source.
// Every call counts as one line, even if blank.
func (asm *Assembler) InterpretLine(text string) (err error) {
	asm.lineno++
	lineno := asm.lineno

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	if asm.Verbose {
		log.Printf("asm: %v: %v", lineno, text)
	}

	words, err := asm.parseLine(text, lineno)
	if err != nil {
		return
	}

	if len(words) == 0 {
		return
	}

	if strings.HasPrefix(words[0], DIRECTIVE_PREFIX) {
		err = asm.directive(words, lineno, text)
		return
	}

	mn, ok := asm.mnemonics.Lookup(words[0])
	if !ok {
		err = asm.reference(words, lineno, text)
		return
	}

	switch {
	case len(words)-1 < mn.Shape.Operands():
		err = ErrOpcodeValueMissing
		return
	case len(words)-1 > mn.Shape.Operands():
		err = ErrOpcodeExtraArgs
		return
	}

	operands := make([]uint16, 0, len(words)-1)
	for n, word := range words[1:] {
		register := false
		switch mn.Shape {
		case SHAPE_X, SHAPE_XY:
			register = true
		case SHAPE_XKK:
			register = n == 0
		case SHAPE_XYD:
			register = n < 2
		}
		var value uint16
		value, err = asm.valueOf(word, register)
		if err != nil {
			return
		}
		operands = append(operands, value)
	}

	code, err := mn.Encode(operands...)
	if err != nil {
		return
	}

	_, err = asm.emit(Opcode{LineNo: lineno, Words: words, Code: code})
	if err != nil {
		return
	}

	if mn.Op == OP_RET && asm.current != nil {
		if asm.Verbose {
			log.Printf("asm: #f %v closed", asm.current.Name)
		}
		asm.current = nil
	}

	return
}

// directive handles a '#' directive line.
func (asm *Assembler) directive(words []string, lineno int, text string) (err error) {
	if words[0] != DIRECTIVE_DEFINITION {
		err = ErrDirectiveInvalid
		return
	}

	if len(words) != 2 {
		err = ErrDefinitionSyntax
		return
	}

	name := words[1]

	if asm.current != nil {
		err = ErrDefinitionNesting
		return
	}

	if _, ok := asm.mnemonics.Lookup(name); ok {
		err = ErrDefinitionReserved
		return
	}

	if _, ok := asm.Definition[name]; ok {
		err = ErrDefinitionDuplicate
		return
	}

	if asm.Verbose {
		log.Printf("asm: #f %v", name)
	}

	asm.current = &Definition{Name: name, LineNo: lineno, Line: text}
	asm.Definition[name] = asm.current
	asm.order = append(asm.order, name)

	return
}

// reference emits a placeholder for a call to a named subroutine.
func (asm *Assembler) reference(words []string, lineno int, text string) (err error) {
	if len(words) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	name := words[0]

	site, err := asm.emit(Opcode{LineNo: lineno, Words: words, Code: CODE_UNLINKED, Reference: name})
	if err != nil {
		return
	}

	site.LineNo = lineno
	site.Line = text

	if _, ok := asm.Reference[name]; !ok {
		asm.refs = append(asm.refs, name)
	}
	asm.Reference[name] = append(asm.Reference[name], site)

	return
}

// ResolveReferences places subroutine bodies after the program image,
// patches every call site, and returns the linked program.
// The assembler is reset afterwards.
func (asm *Assembler) ResolveReferences() (prog *Program, err error) {
	defer asm.Reset()

	if def := asm.current; def != nil {
		err = &ErrSyntax{LineNo: def.LineNo, Line: def.Line, Err: ErrDefinitionOpen(def.Name)}
		return
	}

	image := slices.Clone(asm.Image)
	base := map[string]int{"": 0}
	start := map[string]uint16{}

	for _, name := range asm.order {
		def := asm.Definition[name]
		base[name] = len(image)
		start[name] = asm.Origin + uint16(2*len(image))
		image = append(image, def.Opcodes...)
		if asm.Verbose {
			log.Printf("asm: #f %v at 0x%03x", name, start[name])
		}
	}

	for _, name := range asm.refs {
		sites := asm.Reference[name]
		addr, ok := start[name]
		if !ok {
			site := sites[0]
			err = &ErrSyntax{LineNo: site.LineNo, Line: site.Line, Err: ErrReferenceMissing(name)}
			return
		}
		for _, site := range sites {
			image[base[site.Owner]+site.Index].Code = MakeCodeNNN(GROUP_CALL, addr)
		}
	}

	for n := range image {
		image[n].Address = asm.Origin + uint16(2*n)
	}

	prog = &Program{
		Origin:  asm.Origin,
		Opcodes: image,
	}

	return
}

// Parse parses an input stream into a linked Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Reset()

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		err = asm.InterpretLine(scanner.Text())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog, err = asm.ResolveReferences()

	return
}
