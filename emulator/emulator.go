// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator ties the CPU, memory and peripherals into a machine,
// and runs it from a host loop paced at the timer rate.
package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/memory"
)

const (
	FRAME_RATE  = cpu.TIMER_RATE // Host loop and timer rate, in Hz.
	DEFAULT_IPS = 700            // Default instructions per second.
)

var _emulator_defines = map[string]string{
	"FRAME_RATE":    fmt.Sprintf("%v", FRAME_RATE),
	"SCREEN_WIDTH":  fmt.Sprintf("%v", io.SCREEN_WIDTH),
	"SCREEN_HEIGHT": fmt.Sprintf("%v", io.SCREEN_HEIGHT),
	"KEY_COUNT":     fmt.Sprintf("%v", io.KEY_COUNT),
}

// Emulator state. CPU + memory + peripherals.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Memory   *memory.Memory // Main memory.
	Program  *cpu.Program   // Reference to the currently running program listing.
	Font     memory.Font    // Font loaded into memory on reset.

	Display io.Display // Display sink, if any.
	Keys    io.Keys    // Current keypad state.
	Buzzer  *io.Buzzer // Buzzer recorder, if any.

	Unlimited bool // If set, the host loop does not wait for the frame clock.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	font := memory.HexFont()

	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Memory:  memory.NewMemory(font),
		Program: &cpu.Program{Origin: memory.PROGRAM_START},
		Font:    font,
	}

	return
}

// Defines returns an iterator over all of the defines, sorted by name.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Sorted2(internal.Concat2(maps.All(_emulator_defines),
		emu.Memory.Defines(),
		emu.Cpu.Defines(),
	))
}

// Reset the machine, and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Memory.Reset(emu.Font)
	emu.Cpu.Reset()
	clear(emu.Keys[:])

	if emu.Buzzer != nil {
		emu.Buzzer.Reset()
	}

	if emu.Display != nil {
		emu.Display.Clear()
	}

	if emu.Program != nil {
		err = emu.Program.Load(emu.Memory)
		if err != nil {
			return
		}
		emu.Cpu.Pc = emu.Program.Origin
	}

	if emu.Verbose {
		log.Printf("emu: reset, pc 0x%03x", emu.Cpu.Pc)
	}

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	op := emu.Program.Debug(emu.Cpu.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	word, err := emu.Memory.Word(int(emu.Cpu.Pc))
	if err != nil {
		return cpu.CODE_UNLINKED
	}

	return cpu.Code(word)
}

// display returns the display as a cpu.Display, or nil.
func (emu *Emulator) display() cpu.Display {
	if emu.Display == nil {
		return nil
	}
	return emu.Display
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	address := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: address, Err: err}
		}
	}()

	cont, err := emu.Cpu.Tick(emu.Memory, &emu.Keys, emu.display())
	if err != nil {
		return
	}

	done = !cont

	return
}

// Frame performs the 60Hz work: timers, buzzer, and display refresh.
func (emu *Emulator) Frame() (err error) {
	if emu.Buzzer != nil {
		emu.Buzzer.Frame(emu.Cpu.Sound > 0)
	}

	emu.Cpu.TimerTick()

	if emu.Display != nil {
		err = emu.Display.Present()
	}

	return
}

// Run the machine until it halts, the input closes, or the context is done.
// Each frame polls the input, executes its share of ips instructions, then
// performs the frame work. The remainder of ips/FRAME_RATE carries over to
// the next frame, so every FRAME_RATE frames execute exactly ips instructions.
func (emu *Emulator) Run(ctx context.Context, input io.Input, ips int) (err error) {
	if ips <= 0 {
		ips = DEFAULT_IPS
	}
	credit := 0

	clock := NewClock(FRAME_RATE)
	clock.Active = !emu.Unlimited
	defer clock.Stop()

	defer func() {
		if emu.Verbose {
			log.Printf("emu: %d ticks, %d frames, %.1f fps", emu.Cpu.Ticks, clock.Frames, clock.Measured())
		}
	}()

	for {
		err = clock.CheckFrame(ctx)
		if err != nil {
			return
		}

		if input != nil {
			keys, ok := input.Poll()
			if !ok {
				if emu.Verbose {
					log.Printf("emu: input closed")
				}
				return
			}
			emu.Keys = keys
		}

		credit += ips
		per_frame := credit / FRAME_RATE
		credit -= per_frame * FRAME_RATE

		for range per_frame {
			var done bool
			done, err = emu.Tick()
			if err != nil {
				return
			}
			if done {
				err = emu.Frame()
				return
			}
		}

		err = emu.Frame()
		if err != nil {
			return
		}
	}
}
