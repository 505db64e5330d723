// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !statsview

package statsview

import (
	"io"

	"github.com/ezrec/chip8/translate"
)

const Address = ""

// Launch reports that the server is not built in.
func Launch(output io.Writer) {
	translate.Fprintf(output, "stats server not available; build with -tags statsview\n")
}

// Available returns true when the server can be launched.
func Available() bool {
	return false
}
