// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"iter"
	stdio "io"

	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/memory"
)

// Opcode is a single assembled instruction word.
type Opcode struct {
	LineNo    int      // Source line number.
	Address   uint16   // Address of the word, once linked.
	Words     []string // Source words.
	Code      Code     // Instruction word.
	Reference string   // Name of the subroutine called, if a reference.
}

// Program is a linked program image.
type Program struct {
	Origin  uint16   // Load address of the first opcode.
	Opcodes []Opcode // Opcodes, in address order.
}

// Debug returns the opcode at an address, or nil.
func (prog *Program) Debug(addr uint16) (op *Opcode) {
	if addr < prog.Origin || addr&1 != 0 {
		return
	}

	index := int(addr-prog.Origin) / 2
	if index >= len(prog.Opcodes) {
		return
	}

	op = &prog.Opcodes[index]

	return
}

// Codes iterates over the address and instruction word of every opcode.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Code) {
				return
			}
		}
	}
}

// Words returns the program as instruction words.
func (prog *Program) Words() (words []uint16) {
	words = make([]uint16, 0, len(prog.Opcodes))
	for _, code := range prog.Codes() {
		words = append(words, uint16(code))
	}
	return
}

// Binary returns the program as big-endian bytes.
func (prog *Program) Binary() (data []byte) {
	data = make([]byte, 0, 2*len(prog.Opcodes))
	for _, code := range prog.Codes() {
		data = binary.BigEndian.AppendUint16(data, uint16(code))
	}
	return
}

// Listing writes the program as a listing of hexadecimal words.
func (prog *Program) Listing(w stdio.Writer) (err error) {
	err = io.WriteListing(w, prog.Words())
	return
}

// Load copies the program into memory at its origin.
func (prog *Program) Load(mem *memory.Memory) (err error) {
	err = mem.SetRange(int(prog.Origin), prog.Binary())
	return
}
