// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcAlign        = errors.New(f("pc not word aligned"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrKeyInvalid     = errors.New(f("key invalid"))
	ErrDisplayMissing = errors.New(f("display missing"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))

	// Assembler errors
	ErrDefinitionSyntax    = errors.New(f("#f syntax"))
	ErrDefinitionNesting   = errors.New(f("#f in #f prohibited"))
	ErrDefinitionDuplicate = errors.New(f("#f duplicated"))
	ErrDefinitionReserved  = errors.New(f("#f name is a mnemonic"))
	ErrDirectiveInvalid    = errors.New(f("directive invalid"))
	ErrOpcodeExtraArgs     = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing  = errors.New(f("value missing"))
	ErrOperandRange        = errors.New(f("operand out of range"))
	ErrImageFull           = errors.New(f("program image full"))
)

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Decode(Code(eo)).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrDefinitionOpen string

func (err ErrDefinitionOpen) Error() string {
	return f("#f %v without RET", string(err))
}

type ErrReferenceMissing string

func (err ErrReferenceMissing) Error() string {
	return f("reference %v missing", string(err))
}
