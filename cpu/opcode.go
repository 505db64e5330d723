// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Opcode groups; the top nibble of an instruction word.
const (
	GROUP_SYS         = 0x0
	GROUP_JUMP        = 0x1
	GROUP_CALL        = 0x2
	GROUP_SKIP_EQ_IMM = 0x3
	GROUP_SKIP_NE_IMM = 0x4
	GROUP_SKIP_EQ_REG = 0x5
	GROUP_LOAD_IMM    = 0x6
	GROUP_ADD_IMM     = 0x7
	GROUP_ALU         = 0x8
	GROUP_SKIP_NE_REG = 0x9
	GROUP_INDEX       = 0xa
	GROUP_JUMP_V0     = 0xb
	GROUP_RANDOM      = 0xc
	GROUP_DRAW        = 0xd
	GROUP_KEY         = 0xe
	GROUP_MISC        = 0xf
)

// Op is a decoded operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INVALID = Op(0)  // INVALID
	OP_EXT     = Op(1)  // EXT
	OP_CLD     = Op(2)  // CLD
	OP_RET     = Op(3)  // RET
	OP_JMP     = Op(4)  // JMP
	OP_CLL     = Op(5)  // CLL
	OP_SEV     = Op(6)  // SEV
	OP_SNEV    = Op(7)  // SNEV
	OP_SER     = Op(8)  // SER
	OP_STV     = Op(9)  // STV
	OP_ADDV    = Op(10) // ADDV
	OP_STR     = Op(11) // STR
	OP_OR      = Op(12) // OR
	OP_AND     = Op(13) // AND
	OP_XOR     = Op(14) // XOR
	OP_ADD     = Op(15) // ADD
	OP_SUB     = Op(16) // SUB
	OP_RSH     = Op(17) // RSH
	OP_SUBR    = Op(18) // SUBR
	OP_LSH     = Op(19) // LSH
	OP_SNER    = Op(20) // SNER
	OP_STI     = Op(21) // STI
	OP_JMPR    = Op(22) // JMPR
	OP_RND     = Op(23) // RND
	OP_DRW     = Op(24) // DRW
	OP_SEP     = Op(25) // SEP
	OP_SENP    = Op(26) // SENP
	OP_STRD    = Op(27) // STRD
	OP_WTP     = Op(28) // WTP
	OP_STDR    = Op(29) // STDR
	OP_STRS    = Op(30) // STRS
	OP_ADDI    = Op(31) // ADDI
	OP_STIS    = Op(32) // STIS
	OP_BCD     = Op(33) // BCD
	OP_CTR     = Op(34) // CTR
	OP_CFR     = Op(35) // CFR
)

// OP_FIRST and OP_LAST bound the valid operations.
const (
	OP_FIRST = OP_EXT
	OP_LAST  = OP_CFR
)

// Code is a single 16-bit instruction word.
type Code uint16

// CODE_UNLINKED is the placeholder emitted for a call that has not been linked.
// It does not decode to a valid instruction.
const CODE_UNLINKED = Code(0xffff)

// MakeCodeXYD creates a [group:4][x:4][y:4][d:4] instruction.
func MakeCodeXYD(group, x, y, d byte) Code {
	return Code(uint16(group&0xf)<<12 | uint16(x&0xf)<<8 | uint16(y&0xf)<<4 | uint16(d&0xf))
}

// MakeCodeXKK creates a [group:4][x:4][kk:8] instruction.
func MakeCodeXKK(group, x, kk byte) Code {
	return Code(uint16(group&0xf)<<12 | uint16(x&0xf)<<8 | uint16(kk))
}

// MakeCodeNNN creates a [group:4][nnn:12] instruction.
func MakeCodeNNN(group byte, nnn uint16) Code {
	return Code(uint16(group&0xf)<<12 | (nnn & 0xfff))
}

// Group returns the top nibble.
func (code Code) Group() byte {
	return byte(code >> 12)
}

// X returns the first register selector nibble.
func (code Code) X() byte {
	return byte(code>>8) & 0xf
}

// Y returns the second register selector nibble.
func (code Code) Y() byte {
	return byte(code>>4) & 0xf
}

// D returns the bottom nibble.
func (code Code) D() byte {
	return byte(code) & 0xf
}

// KK returns the bottom byte.
func (code Code) KK() byte {
	return byte(code)
}

// NNN returns the bottom 12 bits.
func (code Code) NNN() uint16 {
	return uint16(code) & 0xfff
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op   Op
	Code Code
	X    byte
	Y    byte
	D    byte
	KK   byte
	NNN  uint16
}

// Decode an instruction word.
// Words that match no pattern decode to OP_INVALID.
func Decode(code Code) (inst Instruction) {
	x, y, d := code.X(), code.Y(), code.D()

	inst = Instruction{
		Code: code,
		X:    x,
		Y:    y,
		D:    d,
		KK:   code.KK(),
		NNN:  code.NNN(),
	}

	op := OP_INVALID

	switch code.Group() {
	case GROUP_SYS:
		switch code {
		case 0x0000:
			op = OP_EXT
		case 0x00e0:
			op = OP_CLD
		case 0x00ee:
			op = OP_RET
		}
	case GROUP_JUMP:
		op = OP_JMP
	case GROUP_CALL:
		op = OP_CLL
	case GROUP_SKIP_EQ_IMM:
		op = OP_SEV
	case GROUP_SKIP_NE_IMM:
		op = OP_SNEV
	case GROUP_SKIP_EQ_REG:
		if d == 0x0 {
			op = OP_SER
		}
	case GROUP_LOAD_IMM:
		op = OP_STV
	case GROUP_ADD_IMM:
		op = OP_ADDV
	case GROUP_ALU:
		switch d {
		case 0x0:
			op = OP_STR
		case 0x1:
			op = OP_OR
		case 0x2:
			op = OP_AND
		case 0x3:
			op = OP_XOR
		case 0x4:
			op = OP_ADD
		case 0x5:
			op = OP_SUB
		case 0x6:
			if y == 0 {
				op = OP_RSH
			}
		case 0x7:
			op = OP_SUBR
		case 0xe:
			if y == 0 {
				op = OP_LSH
			}
		}
	case GROUP_SKIP_NE_REG:
		if d == 0x0 {
			op = OP_SNER
		}
	case GROUP_INDEX:
		op = OP_STI
	case GROUP_JUMP_V0:
		op = OP_JMPR
	case GROUP_RANDOM:
		op = OP_RND
	case GROUP_DRAW:
		op = OP_DRW
	case GROUP_KEY:
		switch code.KK() {
		case 0x9e:
			op = OP_SEP
		case 0xa1, 0xae:
			op = OP_SENP
		}
	case GROUP_MISC:
		switch code.KK() {
		case 0x07:
			op = OP_STRD
		case 0x0a:
			op = OP_WTP
		case 0x15:
			op = OP_STDR
		case 0x18:
			op = OP_STRS
		case 0x1e:
			op = OP_ADDI
		case 0x29:
			op = OP_STIS
		case 0x33:
			op = OP_BCD
		case 0x55:
			op = OP_CTR
		case 0x65:
			op = OP_CFR
		}
	}

	inst.Op = op

	return
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() (out string) {
	if inst.Op == OP_INVALID {
		out = fmt.Sprintf("?? %04X", uint16(inst.Code))
		return
	}

	name := inst.Op.String()

	switch inst.Op.Shape() {
	case SHAPE_NONE:
		out = name
	case SHAPE_X:
		out = fmt.Sprintf("%v %X", name, inst.X)
	case SHAPE_XY:
		out = fmt.Sprintf("%v %X %X", name, inst.X, inst.Y)
	case SHAPE_XKK:
		out = fmt.Sprintf("%v %X %02X", name, inst.X, inst.KK)
	case SHAPE_XYD:
		out = fmt.Sprintf("%v %X %X %X", name, inst.X, inst.Y, inst.D)
	case SHAPE_NNN:
		out = fmt.Sprintf("%v %03X", name, inst.NNN)
	default:
		out = fmt.Sprintf("%v %04X", name, uint16(inst.Code))
	}

	return
}
