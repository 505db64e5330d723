// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrListingSyntax = errors.New(f("listing syntax"))
	ErrRomOdd        = errors.New(f("rom has an odd number of bytes"))
	ErrBuzzerEncode  = errors.New(f("buzzer encode"))
)

// ErrListingLine is a listing error at a specific line.
type ErrListingLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrListingLine) Error() string {
	return f("listing line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrListingLine) Unwrap() error {
	return err.Err
}
