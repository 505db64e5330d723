// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Shape is the operand layout of an instruction.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE = Shape(iota) // none
	SHAPE_X                  // x
	SHAPE_XY                 // x y
	SHAPE_XKK                // x kk
	SHAPE_XYD                // x y d
	SHAPE_NNN                // nnn
)

// Operands returns the number of operands of the shape.
func (shape Shape) Operands() int {
	switch shape {
	case SHAPE_X, SHAPE_NNN:
		return 1
	case SHAPE_XY, SHAPE_XKK:
		return 2
	case SHAPE_XYD:
		return 3
	}
	return 0
}

// Shape returns the operand layout of the operation.
func (op Op) Shape() Shape {
	switch op {
	case OP_JMP, OP_CLL, OP_STI, OP_JMPR:
		return SHAPE_NNN
	case OP_SEV, OP_SNEV, OP_STV, OP_ADDV, OP_RND:
		return SHAPE_XKK
	case OP_SER, OP_STR, OP_OR, OP_AND, OP_XOR, OP_ADD, OP_SUB, OP_SUBR, OP_SNER:
		return SHAPE_XY
	case OP_DRW:
		return SHAPE_XYD
	case OP_RSH, OP_LSH,
		OP_SEP, OP_SENP,
		OP_STRD, OP_WTP, OP_STDR, OP_STRS, OP_ADDI, OP_STIS, OP_BCD, OP_CTR, OP_CFR:
		return SHAPE_X
	}
	return SHAPE_NONE
}

// Base returns the instruction word of the operation with all operands zero.
func (op Op) Base() Code {
	switch op {
	case OP_EXT:
		return 0x0000
	case OP_CLD:
		return 0x00e0
	case OP_RET:
		return 0x00ee
	case OP_JMP:
		return 0x1000
	case OP_CLL:
		return 0x2000
	case OP_SEV:
		return 0x3000
	case OP_SNEV:
		return 0x4000
	case OP_SER:
		return 0x5000
	case OP_STV:
		return 0x6000
	case OP_ADDV:
		return 0x7000
	case OP_STR:
		return 0x8000
	case OP_OR:
		return 0x8001
	case OP_AND:
		return 0x8002
	case OP_XOR:
		return 0x8003
	case OP_ADD:
		return 0x8004
	case OP_SUB:
		return 0x8005
	case OP_RSH:
		return 0x8006
	case OP_SUBR:
		return 0x8007
	case OP_LSH:
		return 0x800e
	case OP_SNER:
		return 0x9000
	case OP_STI:
		return 0xa000
	case OP_JMPR:
		return 0xb000
	case OP_RND:
		return 0xc000
	case OP_DRW:
		return 0xd000
	case OP_SEP:
		return 0xe09e
	case OP_SENP:
		return 0xe0a1
	case OP_STRD:
		return 0xf007
	case OP_WTP:
		return 0xf00a
	case OP_STDR:
		return 0xf015
	case OP_STRS:
		return 0xf018
	case OP_ADDI:
		return 0xf01e
	case OP_STIS:
		return 0xf029
	case OP_BCD:
		return 0xf033
	case OP_CTR:
		return 0xf055
	case OP_CFR:
		return 0xf065
	}
	return CODE_UNLINKED
}

// Mnemonic describes how an assembly language name encodes.
type Mnemonic struct {
	Name  string // Assembly language name.
	Op    Op     // Operation.
	Shape Shape  // Operand layout.
	Base  Code   // Instruction word with all operands zero.
}

// Encode the mnemonic with its operands.
func (mn Mnemonic) Encode(operands ...uint16) (code Code, err error) {
	if len(operands) < mn.Shape.Operands() {
		err = ErrOpcodeValueMissing
		return
	}
	if len(operands) > mn.Shape.Operands() {
		err = ErrOpcodeExtraArgs
		return
	}

	limit := func(value uint16, max uint16) (ok bool) {
		if value > max {
			err = ErrOperandRange
			return false
		}
		return true
	}

	code = mn.Base
	switch mn.Shape {
	case SHAPE_NONE:
	case SHAPE_X:
		if limit(operands[0], 0xf) {
			code |= Code(operands[0] << 8)
		}
	case SHAPE_XY:
		if limit(operands[0], 0xf) && limit(operands[1], 0xf) {
			code |= Code(operands[0]<<8 | operands[1]<<4)
		}
	case SHAPE_XKK:
		if limit(operands[0], 0xf) && limit(operands[1], 0xff) {
			code |= Code(operands[0]<<8 | operands[1])
		}
	case SHAPE_XYD:
		if limit(operands[0], 0xf) && limit(operands[1], 0xf) && limit(operands[2], 0xf) {
			code |= Code(operands[0]<<8 | operands[1]<<4 | operands[2])
		}
	case SHAPE_NNN:
		if limit(operands[0], 0xfff) {
			code |= Code(operands[0])
		}
	}

	if err != nil {
		code = 0
	}

	return
}

// MnemonicTable maps assembly language names to their encodings.
type MnemonicTable map[string]Mnemonic

// NewMnemonicTable builds the table of all operations.
func NewMnemonicTable() (table MnemonicTable) {
	table = make(MnemonicTable, int(OP_LAST-OP_FIRST)+1)
	for op := OP_FIRST; op <= OP_LAST; op++ {
		name := op.String()
		table[name] = Mnemonic{
			Name:  name,
			Op:    op,
			Shape: op.Shape(),
			Base:  op.Base(),
		}
	}
	return
}

// Lookup a mnemonic by name.
func (table MnemonicTable) Lookup(name string) (mn Mnemonic, ok bool) {
	mn, ok = table[name]
	return
}
