// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/memory"
)

func testProgram() *Program {
	return &Program{
		Origin: 0x200,
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0x200, Words: []string{"STV", "0", "10"}, Code: 0x6010},
			{LineNo: 2, Address: 0x202, Words: []string{"sub"}, Code: 0x2206, Reference: "sub"},
			{LineNo: 3, Address: 0x204, Words: []string{"EXT"}, Code: 0x0000},
			{LineNo: 5, Address: 0x206, Words: []string{"RET"}, Code: 0x00ee},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	op := prog.Debug(0x200)
	if assert.NotNil(op) {
		assert.Equal(1, op.LineNo)
	}

	op = prog.Debug(0x206)
	if assert.NotNil(op) {
		assert.Equal(5, op.LineNo)
	}

	assert.Nil(prog.Debug(0x1fe))
	assert.Nil(prog.Debug(0x201))
	assert.Nil(prog.Debug(0x208))
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var addrs []uint16
	var codes []Code
	for addr, code := range prog.Codes() {
		addrs = append(addrs, addr)
		codes = append(codes, code)
	}
	assert.Equal([]uint16{0x200, 0x202, 0x204, 0x206}, addrs)
	assert.Equal([]Code{0x6010, 0x2206, 0x0000, 0x00ee}, codes)

	count := 0
	for range prog.Codes() {
		count++
		break
	}
	assert.Equal(1, count)

	empty := &Program{}
	for range empty.Codes() {
		assert.Fail("empty program has codes")
	}
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal([]byte{0x60, 0x10, 0x22, 0x06, 0x00, 0x00, 0x00, 0xee}, prog.Binary())
	assert.Equal([]uint16{0x6010, 0x2206, 0x0000, 0x00ee}, prog.Words())
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var buff bytes.Buffer
	assert.NoError(prog.Listing(&buff))
	assert.Equal("6010\n2206\n0000\n00EE\n", buff.String())
}

func TestProgram_Load(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	mem := memory.NewMemory(memory.HexFont())

	assert.NoError(prog.Load(mem))
	word, err := mem.Word(0x202)
	assert.NoError(err)
	assert.Equal(uint16(0x2206), word)

	prog.Origin = memory.MEMORY_SIZE - 2
	err = prog.Load(mem)
	assert.ErrorIs(err, memory.ErrAddress(0))
}

func TestProgram_Integration_ParseAndRun(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"STV 0 81",
		"STI 300",
		"bcd",
		"CFR 2",
		"EXT",
		"#f bcd",
		"BCD 0",
		"RET",
	)

	cpu, mem, _ := newMachine(t)
	assert.NoError(prog.Load(mem))

	var err error
	cont := true
	for cont {
		cont, err = cpu.Tick(mem, nil, nil)
		if !assert.NoError(err) {
			break
		}
	}

	assert.Equal([]byte{1, 2, 9}, cpu.Register[:3])
}
