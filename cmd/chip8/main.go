// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/bradleyjkemp/memviz"

	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/io/window"
	"github.com/ezrec/chip8/statsview"
)

const TERMINAL_DEVICE = "/dev/tty"

type options struct {
	compile string
	rom     string
	output  string
	save    bool
	window  bool
	scale   int
	ips     int
	audio   string
	memviz  string
	stats   bool
	verbose bool
}

func main() {
	var opt options

	flag.StringVar(&opt.compile, "c", "", "assembly source to compile")
	flag.StringVar(&opt.rom, "r", "", "ROM to run (.ch8, .rom, .cmp, or source)")
	flag.StringVar(&opt.output, "o", "", "write compiled program (.ch8/.rom binary, otherwise .cmp listing)")
	flag.BoolVar(&opt.save, "s", false, "Save only, do not execute")
	flag.BoolVar(&opt.window, "w", false, "Use an SDL window instead of the terminal")
	flag.IntVar(&opt.scale, "scale", window.WINDOW_SCALE, "SDL window scale")
	flag.IntVar(&opt.ips, "ips", emulator.DEFAULT_IPS, "Instructions per second")
	flag.StringVar(&opt.audio, "a", "", "Record buzzer to WAV file")
	flag.StringVar(&opt.memviz, "m", "", "Write memviz graph of the final machine state")
	flag.BoolVar(&opt.stats, "stats", false, "Launch statsview server")
	flag.BoolVar(&opt.verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if opt.window {
		// SDL must stay on the main thread.
		runtime.LockOSThread()
	}

	if opt.stats {
		statsview.Launch(os.Stderr)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opt.verbose

	// Compile a new instruction stream.
	if len(opt.compile) != 0 {
		inf, err := os.Open(opt.compile)
		if err != nil {
			log.Fatalf("%v: %v", opt.compile, err)
		}
		defer inf.Close()

		emu.Program, err = emu.Assembler().Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", opt.compile, err)
		}
	}

	if len(opt.rom) != 0 {
		inf, err := os.Open(opt.rom)
		if err != nil {
			log.Fatalf("%v: %v", opt.rom, err)
		}
		defer inf.Close()

		err = emu.LoadCartridge(opt.rom, inf)
		if err != nil {
			log.Fatalf("%v: %v", opt.rom, err)
		}
	}

	if len(opt.output) != 0 {
		ouf, err := os.Create(opt.output)
		if err != nil {
			log.Fatalf("%v: %v", opt.output, err)
		}
		err = errors.Join(emu.SaveCartridge(opt.output, ouf), ouf.Close())
		if err != nil {
			log.Fatalf("%v: %v", opt.output, err)
		}
	}

	if opt.save {
		return
	}

	if len(emu.Program.Opcodes) == 0 {
		log.Fatalf("%v: nothing to run; use -c or -r", os.Args[0])
	}

	err := run(emu, &opt)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run executes the program, and saves the recordings.
func run(emu *emulator.Emulator, opt *options) (err error) {
	var input io.Input

	if opt.window {
		var win *window.Window
		win, err = window.OpenWindow(opt.scale)
		if err != nil {
			return
		}
		defer win.Destroy()
		emu.Display = win
		input = win
	} else {
		var tm *io.Terminal
		tm, err = io.OpenTerminal(TERMINAL_DEVICE, os.Stdout)
		if err != nil {
			return
		}
		defer tm.Close()
		emu.Display = tm
		input = tm
	}

	if len(opt.audio) != 0 {
		emu.Buzzer = io.NewBuzzer()
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx, input, opt.ips)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if len(opt.audio) != 0 {
		err = errors.Join(err, record(opt.audio, emu.Buzzer))
	}

	if len(opt.memviz) != 0 {
		err = errors.Join(err, graph(opt.memviz, emu))
	}

	return
}

// record writes the buzzer recording to a WAV file.
func record(name string, buzzer *io.Buzzer) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	err = errors.Join(buzzer.Encode(ouf), ouf.Close())

	return
}

// graph writes the machine state as a memviz graph.
func graph(name string, emu *emulator.Emulator) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	memviz.Map(ouf, emu.Cpu)

	err = ouf.Close()

	return
}
