// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package statsview serves runtime statistics of the emulator over HTTP,
// when built with the statsview tag.
//
// Underlying functionality provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
