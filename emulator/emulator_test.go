// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/memory"
)

// scriptedInput replays a fixed sequence of keypad states.
type scriptedInput struct {
	polls []io.Keys
	count int
}

func (in *scriptedInput) Poll() (keys io.Keys, ok bool) {
	in.count++
	if len(in.polls) == 0 {
		return
	}
	keys = in.polls[0]
	in.polls = in.polls[1:]
	ok = true
	return
}

func doLoad(t *testing.T, emu *Emulator, program []string) {
	err := emu.LoadCartridge("test.c8s", strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}
}

func doRunSingle(t *testing.T, emu *Emulator, program []string) {
	assert := assert.New(t)

	doLoad(t, emu, program)

	for n, op := range emu.Program.Opcodes {
		assert.Equal(op.LineNo, emu.LineNo())
		assert.Equal(op.Code, emu.Code())
		done, err := emu.Tick()
		if !assert.NoError(err, program[op.LineNo-1]) {
			t.Log(emu.Cpu.String())
			t.FailNow()
		}
		assert.Equal(n == len(emu.Program.Opcodes)-1, done, program[op.LineNo-1])
	}
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Memory)
	assert.Equal(uint16(memory.PROGRAM_START), emu.Cpu.Pc)
	assert.Equal(0, emu.LineNo())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	var names []string
	defines := map[string]string{}
	for name, value := range emu.Defines() {
		names = append(names, name)
		defines[name] = value
	}

	assert.IsIncreasing(names)
	assert.Equal("0x200", defines["PROGRAM_START"])
	assert.Equal("0xf", defines["REGISTER_FLAG"])
	assert.Equal("60", defines["FRAME_RATE"])
	assert.Equal("64", defines["SCREEN_WIDTH"])
}

func TestEmulatorRegisters(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"STV 0 10",
		"STV 1 $(0x20 + 1)",
		"ADD 0 1",
		"STI $(PROGRAM_START + 0x100)",
		"CTR 1",
		"EXT",
	}
	doRunSingle(t, emu, program)

	assert.Equal(byte(0x31), emu.Cpu.Register[0])
	assert.Equal(byte(0x21), emu.Cpu.Register[1])
	assert.Equal(byte(0), emu.Cpu.Register[cpu.REGISTER_FLAG])
	data, err := emu.Memory.Range(0x300, 2)
	assert.NoError(err)
	assert.Equal([]byte{0x31, 0x21}, data)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"STV 0 1",
		"",
		"RET",
	}
	doLoad(t, emu, program)

	done, err := emu.Tick()
	assert.False(done)
	assert.NoError(err)

	done, err = emu.Tick()
	assert.False(done)
	assert.ErrorIs(err, cpu.ErrStackEmpty)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(3, runtime.LineNo)
		assert.Equal(uint16(0x202), runtime.Address)
	}
	assert.Contains(err.Error(), "line 3")
}

func TestEmulatorDisplay(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"CLD",
		"EXT",
	}
	doLoad(t, emu, program)

	_, err := emu.Tick()
	assert.ErrorIs(err, cpu.ErrDisplayMissing)

	screen := &io.Screen{}
	emu.Display = screen
	program = []string{
		"STV 0 A",
		"STIS 0",
		"DRW 1 1 5",
		"EXT",
	}
	doRunSingle(t, emu, program)
	assert.True(screen.Dirty)
	assert.True(screen.Pixel(0, 0))
	assert.True(screen.Pixel(3, 1))

	assert.NoError(emu.Frame())
	assert.False(screen.Dirty)
}

func TestEmulatorFrame(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Buzzer = io.NewBuzzer()

	emu.Cpu.Delay = 2
	emu.Cpu.Sound = 1

	assert.NoError(emu.Frame())
	assert.Equal(byte(1), emu.Cpu.Delay)
	assert.Equal(byte(0), emu.Cpu.Sound)

	assert.NoError(emu.Frame())
	assert.Equal(byte(0), emu.Cpu.Delay)

	samples := emu.Buzzer.SampleRate / io.BUZZER_FRAME_RATE
	assert.Equal(2*samples, len(emu.Buzzer.Samples))
	assert.NotEqual(0, emu.Buzzer.Samples[0])
	assert.Equal(0, emu.Buzzer.Samples[samples])
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Unlimited = true
	emu.Display = &io.Screen{}

	// Wait for a key, then store it in V1 and halt.
	program := []string{
		"WTP 1",
		"EXT",
	}
	doLoad(t, emu, program)

	pressed := io.Keys{}
	pressed[0x7] = true
	input := &scriptedInput{polls: []io.Keys{{}, {}, pressed, pressed}}

	err := emu.Run(context.Background(), input, cpu.TIMER_RATE)
	assert.NoError(err)
	assert.Equal(byte(0x7), emu.Cpu.Register[1])
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.Equal(4, input.count)
}

func TestEmulatorRunRate(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Unlimited = true

	program := []string{
		"JMP 200",
	}
	doLoad(t, emu, program)

	// One second of frames at the default rate.
	polls := make([]io.Keys, FRAME_RATE)
	input := &scriptedInput{polls: polls}
	err := emu.Run(context.Background(), input, DEFAULT_IPS)
	assert.NoError(err)
	assert.Equal(DEFAULT_IPS, emu.Cpu.Ticks)

	// Rates below the frame rate still make progress.
	assert.NoError(emu.Reset())
	input = &scriptedInput{polls: make([]io.Keys, 6)}
	err = emu.Run(context.Background(), input, FRAME_RATE/3)
	assert.NoError(err)
	assert.Equal(2, emu.Cpu.Ticks)
}

func TestEmulatorRunInputClosed(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Unlimited = true

	program := []string{
		"JMP 200",
	}
	doLoad(t, emu, program)

	input := &scriptedInput{polls: []io.Keys{{}, {}}}
	err := emu.Run(context.Background(), input, 600)
	assert.NoError(err)
	assert.Equal(20, emu.Cpu.Ticks)
	assert.Equal(cpu.STATE_RUNNING, emu.Cpu.State)
}

func TestEmulatorRunCancel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"JMP 200",
	}
	doLoad(t, emu, program)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx, nil, 0)
	assert.ErrorIs(err, context.Canceled)
}

func TestEmulatorRunError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Unlimited = true

	program := []string{
		"STV 0 1",
		"jump_odd",
		"#f jump_odd",
		"JMP 1",
		"RET",
	}
	doLoad(t, emu, program)

	err := emu.Run(context.Background(), nil, 0)
	assert.ErrorIs(err, cpu.ErrPcAlign)
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
}

func TestEmulatorCartridge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	table := []struct {
		name string
		data []byte
	}{
		{"game.ch8", []byte{0x60, 0x05, 0x00, 0x00}},
		{"GAME.ROM", []byte{0x60, 0x05, 0x00, 0x00}},
		{"game.cmp", []byte("6005\n0000\n")},
		{"game.c8s", []byte("STV 0 5 // set\nEXT\n")},
	}

	for _, entry := range table {
		err := emu.LoadCartridge(entry.name, bytes.NewReader(entry.data))
		assert.NoError(err, entry.name)
		assert.Equal([]uint16{0x6005, 0x0000}, emu.Program.Words(), entry.name)
		assert.Equal(uint16(memory.PROGRAM_START), emu.Program.Origin, entry.name)
	}

	err := emu.LoadCartridge("odd.ch8", bytes.NewReader([]byte{0x60}))
	assert.ErrorIs(err, io.ErrRomOdd)

	err = emu.LoadCartridge("bad.cmp", strings.NewReader("60G5\n"))
	assert.ErrorIs(err, io.ErrListingSyntax)

	err = emu.LoadCartridge("bad.c8s", strings.NewReader("STV 0\n"))
	assert.ErrorIs(err, cpu.ErrOpcodeValueMissing)

	err = emu.LoadCartridge("empty.cmp", strings.NewReader("// nothing\n"))
	assert.ErrorIs(err, ErrCartridgeEmpty)
}

func TestEmulatorSaveCartridge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(t, emu, []string{"STV 0 5", "EXT"})

	var buff bytes.Buffer
	assert.NoError(emu.SaveCartridge("game.ch8", &buff))
	assert.Equal([]byte{0x60, 0x05, 0x00, 0x00}, buff.Bytes())

	buff.Reset()
	assert.NoError(emu.SaveCartridge("game.cmp", &buff))
	assert.Equal("6005\n0000\n", buff.String())

	// Round trip through the saved listing.
	other := NewEmulator()
	assert.NoError(other.LoadCartridge("game.cmp", &buff))
	assert.Equal(emu.Program.Words(), other.Program.Words())
}
