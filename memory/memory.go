// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the byte addressable store of the machine.
//
// The low region of the address space holds the glyph font table, and the
// program image conventionally begins at PROGRAM_START.
package memory

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

const (
	MEMORY_SIZE   = 0x1000 // Size of the address space, in bytes.
	FONT_START    = 0x000  // Address of glyph 0.
	PROGRAM_START = 0x200  // Address of the first program instruction.
)

var _memory_defines = map[string]string{
	"MEMORY_SIZE":   fmt.Sprintf("0x%x", MEMORY_SIZE),
	"FONT_START":    fmt.Sprintf("0x%x", FONT_START),
	"PROGRAM_START": fmt.Sprintf("0x%x", PROGRAM_START),
	"GLYPH_SIZE":    fmt.Sprintf("0x%x", GLYPH_SIZE),
	"GLYPH_COUNT":   fmt.Sprintf("0x%x", GLYPH_COUNT),
}

// Memory is the 4KiB address space.
type Memory struct {
	Data [MEMORY_SIZE]byte
}

// NewMemory creates a new memory, with the font pre-loaded.
func NewMemory(font Font) (mem *Memory) {
	mem = &Memory{}
	mem.Reset(font)
	return
}

// Defines for the memory layout.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// Reset clears the memory and re-installs the font.
func (mem *Memory) Reset(font Font) {
	clear(mem.Data[:])
	copy(mem.Data[FONT_START:], font.Bytes())
}

func (mem *Memory) check(addr int, size int) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
		return
	}
	if end := addr + size - 1; size > 0 && end >= MEMORY_SIZE {
		err = ErrAddress(end)
		return
	}
	return
}

// Get a byte.
func (mem *Memory) Get(addr int) (value byte, err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}
	value = mem.Data[addr]
	return
}

// Set a byte.
func (mem *Memory) Set(addr int, value byte) (err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}
	mem.Data[addr] = value
	return
}

// Word gets a big-endian 16-bit word.
func (mem *Memory) Word(addr int) (word uint16, err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}
	word = uint16(mem.Data[addr])<<8 | uint16(mem.Data[addr+1])
	return
}

// SetWord sets a big-endian 16-bit word; high byte at addr, low byte at addr+1.
func (mem *Memory) SetWord(addr int, word uint16) (err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}
	mem.Data[addr] = byte(word >> 8)
	mem.Data[addr+1] = byte(word)
	return
}

// Range returns a copy of size bytes starting at addr.
func (mem *Memory) Range(addr int, size int) (data []byte, err error) {
	err = mem.check(addr, size)
	if err != nil {
		return
	}
	data = make([]byte, size)
	copy(data, mem.Data[addr:addr+size])
	return
}

// SetRange copies data into memory starting at addr.
// Nothing is written if any part of the range is out of bounds.
func (mem *Memory) SetRange(addr int, data []byte) (err error) {
	err = mem.check(addr, len(data))
	if err != nil {
		return
	}
	copy(mem.Data[addr:], data)
	return
}

// Dump writes the words in [from, to) as 'address: word' lines.
func (mem *Memory) Dump(w io.Writer, from int, to int) (err error) {
	if from%2 != 0 || to%2 != 0 {
		err = ErrAlignment
		return
	}
	for addr := from; addr < to; addr += 2 {
		var word uint16
		word, err = mem.Word(addr)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%03X: %04X\n", addr, word)
		if err != nil {
			return
		}
	}
	return
}
