// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenDrawRow(t *testing.T) {
	assert := assert.New(t)

	scr := &Screen{}

	collision := scr.DrawRow(0, 0, 0b1010_0001)
	assert.False(collision)
	assert.True(scr.Dirty)
	assert.True(scr.Pixel(0, 0))
	assert.False(scr.Pixel(1, 0))
	assert.True(scr.Pixel(2, 0))
	assert.True(scr.Pixel(7, 0))

	// Overlap erases, and reports collision.
	collision = scr.DrawRow(2, 0, 0b1000_0000)
	assert.True(collision)
	assert.False(scr.Pixel(2, 0))

	// Redrawing the original row erases the rest.
	collision = scr.DrawRow(0, 0, 0b1010_0001)
	assert.True(collision)
	assert.True(scr.Pixel(2, 0))
	assert.False(scr.Pixel(0, 0))
	assert.False(scr.Pixel(7, 0))
}

func TestScreenWrap(t *testing.T) {
	assert := assert.New(t)

	scr := &Screen{}

	scr.DrawRow(SCREEN_WIDTH-4, SCREEN_HEIGHT, 0xff)
	for x := SCREEN_WIDTH - 4; x < SCREEN_WIDTH; x++ {
		assert.True(scr.Pixel(x, 0), "x=%d", x)
	}
	for x := range 4 {
		assert.True(scr.Pixel(x, 0), "x=%d", x)
	}
	assert.True(scr.Pixel(-1, -SCREEN_HEIGHT))
}

func TestScreenClear(t *testing.T) {
	assert := assert.New(t)

	scr := &Screen{}
	scr.DrawRow(10, 10, 0xff)
	assert.NoError(scr.Present())
	assert.False(scr.Dirty)

	scr.Clear()
	assert.True(scr.Dirty)
	for n := range scr.Pixels {
		assert.False(scr.Pixels[n])
	}
}

func TestScreenString(t *testing.T) {
	assert := assert.New(t)

	scr := &Screen{}
	scr.DrawRow(0, 1, 0xc0)

	lines := strings.Split(scr.String(), "\n")
	assert.Equal(SCREEN_HEIGHT+1, len(lines))
	assert.Equal(strings.Repeat(".", SCREEN_WIDTH), lines[0])
	assert.Equal("##"+strings.Repeat(".", SCREEN_WIDTH-2), lines[1])
}

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	var none *Keys
	_, ok := none.First()
	assert.False(ok)
	assert.False(none.Pressed(3))

	keys := &Keys{}
	_, ok = keys.First()
	assert.False(ok)

	keys[0xb] = true
	keys[0x3] = true
	key, ok := keys.First()
	assert.True(ok)
	assert.Equal(byte(0x3), key)
	assert.True(keys.Pressed(0xb))
	assert.False(keys.Pressed(0xc))
	assert.False(keys.Pressed(0x10))
}
