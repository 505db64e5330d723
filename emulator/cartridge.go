// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	stdio "io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/memory"
)

// Cartridge file extensions.
const (
	EXT_BINARY  = ".ch8" // Raw big-endian instruction words.
	EXT_ROM     = ".rom" // Raw big-endian instruction words.
	EXT_LISTING = ".cmp" // Listing of hexadecimal words.
)

// Assembler returns an assembler with all of the emulator defines.
func (emu *Emulator) Assembler() (asm *cpu.Assembler) {
	asm = cpu.NewAssembler(cpu.NewMnemonicTable())
	asm.Verbose = emu.Verbose
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	return
}

// programOf wraps instruction words as a program at memory.PROGRAM_START.
func programOf(words []uint16) (prog *cpu.Program) {
	prog = &cpu.Program{
		Origin:  memory.PROGRAM_START,
		Opcodes: make([]cpu.Opcode, len(words)),
	}
	for n, word := range words {
		prog.Opcodes[n] = cpu.Opcode{
			Address: memory.PROGRAM_START + uint16(2*n),
			Code:    cpu.Code(word),
		}
	}
	return
}

// LoadCartridge reads a program, and makes it the emulator's program.
// The format is selected by the file extension of name: binary for
// EXT_BINARY and EXT_ROM, a listing for EXT_LISTING, and assembly
// source otherwise.
func (emu *Emulator) LoadCartridge(name string, in stdio.Reader) (err error) {
	var prog *cpu.Program

	switch strings.ToLower(filepath.Ext(name)) {
	case EXT_BINARY, EXT_ROM:
		var words []uint16
		words, err = io.ReadRom(in)
		if err != nil {
			return
		}
		prog = programOf(words)
	case EXT_LISTING:
		var words []uint16
		words, err = io.ReadListing(in)
		if err != nil {
			return
		}
		prog = programOf(words)
	default:
		prog, err = emu.Assembler().Parse(in)
		if err != nil {
			return
		}
	}

	if len(prog.Opcodes) == 0 {
		err = ErrCartridgeEmpty
		return
	}

	if emu.Verbose {
		log.Printf("emu: %v: %d words", name, len(prog.Opcodes))
	}

	emu.Program = prog

	return
}

// SaveCartridge writes the emulator's program. The format is selected by
// the file extension of name: binary for EXT_BINARY and EXT_ROM, and a
// listing otherwise.
func (emu *Emulator) SaveCartridge(name string, out stdio.Writer) (err error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case EXT_BINARY, EXT_ROM:
		err = io.WriteRom(out, emu.Program.Words())
	default:
		err = emu.Program.Listing(out)
	}
	return
}
