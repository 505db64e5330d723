// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the instruction engine and assembler of the machine.
//
// The CPU has sixteen 8-bit registers (v0-vf), a 16-bit address register (I),
// a program counter, a sixteen entry call stack, and delay and sound timers.
// Register vf doubles as the carry, borrow, shift and collision flag.
// Instructions are 16-bit big-endian words.
//
// The assembler translates a line oriented mnemonic language into
// instruction words, and links calls to named subroutines that may be
// defined after their first use.
package cpu
