// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"
	"time"

	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/memory"
)

// Display is the display interface driven by CLD and DRW.
type Display io.Display

const (
	REGISTER_COUNT = 16   // Number of V registers.
	REGISTER_FLAG  = 0xf  // Carry, borrow, shift and collision flag register.
	TIMER_RATE     = 60   // Timer decrement rate in Hz.
	RANDOM_MASK    = 0xff // Random byte range.
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("0x%x", REGISTER_COUNT),
	"REGISTER_FLAG":  fmt.Sprintf("0x%x", REGISTER_FLAG),
	"STACK_LIMIT":    fmt.Sprintf("0x%x", STACK_LIMIT),
}

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING   = State(iota) // running
	STATE_AWAIT_KEY               // await key
	STATE_HALTED                  // halted
)

// Cpu is the instruction engine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]byte // V registers.
	I        uint16               // Address register.
	Pc       uint16               // Program counter.
	Stack    Stack                // Return address stack.
	Delay    byte                 // Delay timer.
	Sound    byte                 // Sound timer.

	State State // Execution state.
	Await byte  // Register to receive the key in STATE_AWAIT_KEY.

	Rand *rand.Rand // Random source for RND.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU, ready to run from memory.PROGRAM_START.
func NewCpu() (cpu *Cpu) {
	seed := uint64(time.Now().UnixNano())
	cpu = &Cpu{
		Rand: rand.New(rand.NewPCG(seed, seed>>32)),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, stack and timers.
// - Zeros the tick counter.
// - Sets the program counter to memory.PROGRAM_START.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.I = 0
	cpu.Pc = memory.PROGRAM_START
	cpu.Stack.Reset()
	cpu.Delay = 0
	cpu.Sound = 0
	cpu.State = STATE_RUNNING
	cpu.Await = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   pc: %03X\n", cpu.Pc)
	text += fmt.Sprintf("    i: %03X\n", cpu.I)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("   v%X: %02X\n", n, val)
	}
	stack := "---"
	if val, ok := cpu.Stack.Peek(); ok {
		stack = fmt.Sprintf("%03X", val)
	}
	text += fmt.Sprintf("stack: %v (%d)\n", stack, cpu.Stack.Depth())
	text += fmt.Sprintf("delay: %02X\n", cpu.Delay)
	text += fmt.Sprintf("sound: %02X\n", cpu.Sound)
	text += fmt.Sprintf("state: %v\n", cpu.State)

	return
}

// TimerTick decrements the delay and sound timers.
// The host calls this at TIMER_RATE, independent of the instruction rate.
func (cpu *Cpu) TimerTick() {
	if cpu.Delay > 0 {
		cpu.Delay--
	}
	if cpu.Sound > 0 {
		cpu.Sound--
	}
}

// FetchCode fetches the instruction word at the program counter, and
// advances the program counter.
func (cpu *Cpu) FetchCode(mem *memory.Memory) (code Code, err error) {
	if cpu.Pc&1 != 0 {
		err = ErrPcAlign
		return
	}

	word, err := mem.Word(int(cpu.Pc))
	if err != nil {
		return
	}

	cpu.Pc += 2
	code = Code(word)

	return
}

// Tick executes a single CPU instruction cycle.
// Returns false once the CPU has halted.
// keys and display may be nil.
func (cpu *Cpu) Tick(mem *memory.Memory, keys *io.Keys, display Display) (cont bool, err error) {
	switch cpu.State {
	case STATE_HALTED:
		return
	case STATE_AWAIT_KEY:
		key, ok := keys.First()
		if ok {
			if cpu.Verbose {
				log.Printf("cpu: key %X -> v%X", key, cpu.Await)
			}
			cpu.Register[cpu.Await] = key
			cpu.State = STATE_RUNNING
		}
		cont = true
		return
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_HALTED
			cont = false
		}
	}()

	code, err := cpu.FetchCode(mem)
	if err != nil {
		return
	}

	err = cpu.Execute(Decode(code), mem, keys, display)
	if err != nil {
		return
	}

	cpu.Ticks++

	cont = cpu.State != STATE_HALTED

	return
}

// addValue adds to a register, and sets the carry flag.
func (cpu *Cpu) addValue(x byte, value byte) {
	sum := uint16(cpu.Register[x]) + uint16(value)
	cpu.Register[x] = byte(sum)
	cpu.setFlag(sum > 0xff)
}

// setFlag sets the flag register. Always written after the result.
func (cpu *Cpu) setFlag(flag bool) {
	if flag {
		cpu.Register[REGISTER_FLAG] = 1
	} else {
		cpu.Register[REGISTER_FLAG] = 0
	}
}

// skipIf skips the next instruction when cond is true.
func (cpu *Cpu) skipIf(cond bool) {
	if cond {
		cpu.Pc += 2
	}
}

// keyOf returns the key index held in a register.
func (cpu *Cpu) keyOf(x byte) (key byte, err error) {
	key = cpu.Register[x]
	if key >= io.KEY_COUNT {
		err = ErrKeyInvalid
	}
	return
}

// Execute executes a single decoded instruction.
// The program counter has already been advanced past the instruction.
func (cpu *Cpu) Execute(inst Instruction, mem *memory.Memory, keys *io.Keys, display Display) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst.Code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %03x: %v", cpu.Pc-2, inst)
	}

	vx := cpu.Register[inst.X]
	vy := cpu.Register[inst.Y]

	switch inst.Op {
	case OP_EXT:
		cpu.State = STATE_HALTED
	case OP_CLD:
		if display == nil {
			err = ErrDisplayMissing
			return
		}
		display.Clear()
	case OP_RET:
		pc, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		cpu.Pc = pc
	case OP_JMP:
		cpu.Pc = inst.NNN
	case OP_CLL:
		if !cpu.Stack.Push(cpu.Pc) {
			err = ErrStackFull
			return
		}
		cpu.Pc = inst.NNN
	case OP_SEV:
		cpu.skipIf(vx == inst.KK)
	case OP_SNEV:
		cpu.skipIf(vx != inst.KK)
	case OP_SER:
		cpu.skipIf(vx == vy)
	case OP_STV:
		cpu.Register[inst.X] = inst.KK
	case OP_ADDV:
		cpu.addValue(inst.X, inst.KK)
	case OP_STR:
		cpu.Register[inst.X] = vy
	case OP_OR:
		cpu.Register[inst.X] = vx | vy
	case OP_AND:
		cpu.Register[inst.X] = vx & vy
	case OP_XOR:
		cpu.Register[inst.X] = vx ^ vy
	case OP_ADD:
		cpu.addValue(inst.X, vy)
	case OP_SUB:
		cpu.Register[inst.X] = vx - vy
		cpu.setFlag(vx >= vy)
	case OP_RSH:
		cpu.Register[inst.X] = vx >> 1
		cpu.setFlag(vx&0x01 != 0)
	case OP_SUBR:
		cpu.Register[inst.X] = vy - vx
		cpu.setFlag(vy >= vx)
	case OP_LSH:
		cpu.Register[inst.X] = vx << 1
		cpu.setFlag(vx&0x80 != 0)
	case OP_SNER:
		cpu.skipIf(vx != vy)
	case OP_STI:
		cpu.I = inst.NNN
	case OP_JMPR:
		cpu.Pc = inst.NNN + uint16(cpu.Register[0])
	case OP_RND:
		var value byte
		if cpu.Rand != nil {
			value = byte(cpu.Rand.UintN(RANDOM_MASK + 1))
		} else {
			value = byte(rand.UintN(RANDOM_MASK + 1))
		}
		cpu.Register[inst.X] = value & inst.KK
	case OP_DRW:
		if display == nil {
			err = ErrDisplayMissing
			return
		}
		var rows []byte
		rows, err = mem.Range(int(cpu.I), int(inst.D))
		if err != nil {
			return
		}
		collision := false
		for n, bits := range rows {
			if display.DrawRow(int(vx), int(vy)+n, bits) {
				collision = true
			}
		}
		cpu.setFlag(collision)
	case OP_SEP:
		var key byte
		key, err = cpu.keyOf(inst.X)
		if err != nil {
			return
		}
		cpu.skipIf(keys.Pressed(key))
	case OP_SENP:
		var key byte
		key, err = cpu.keyOf(inst.X)
		if err != nil {
			return
		}
		cpu.skipIf(!keys.Pressed(key))
	case OP_STRD:
		cpu.Register[inst.X] = cpu.Delay
	case OP_WTP:
		if key, ok := keys.First(); ok {
			cpu.Register[inst.X] = key
			break
		}
		cpu.State = STATE_AWAIT_KEY
		cpu.Await = inst.X
	case OP_STDR:
		cpu.Delay = vx
	case OP_STRS:
		cpu.Sound = vx
	case OP_ADDI:
		cpu.I += uint16(vx)
	case OP_STIS:
		cpu.I = uint16(memory.GlyphAddress(int(vx)))
	case OP_BCD:
		err = mem.SetRange(int(cpu.I), []byte{vx / 100, (vx / 10) % 10, vx % 10})
	case OP_CTR:
		err = mem.SetRange(int(cpu.I), cpu.Register[:inst.X+1])
	case OP_CFR:
		var data []byte
		data, err = mem.Range(int(cpu.I), int(inst.X)+1)
		if err != nil {
			return
		}
		copy(cpu.Register[:], data)
	default:
		// OP_INVALID
		err = ErrOpcodeInvalid
	}

	return
}
