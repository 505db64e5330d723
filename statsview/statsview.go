// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build statsview

package statsview

import (
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/ezrec/chip8/translate"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

// Launch the statistics server in the background.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	translate.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true when the server can be launched.
func Available() bool {
	return true
}
