// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the peripherals attached to the machine: the
// monochrome display, the 16 key hexadecimal keypad, the buzzer, and the
// cartridge listing formats.
package io

// KEY_COUNT is the number of keys on the keypad.
const KEY_COUNT = 16

// Keys is the pressed state of the keypad, indexed by key value.
type Keys [KEY_COUNT]bool

// First returns the lowest pressed key, if any.
// A nil keypad has no keys pressed.
func (keys *Keys) First() (key byte, ok bool) {
	if keys == nil {
		return
	}
	for n, down := range keys {
		if down {
			key = byte(n)
			ok = true
			return
		}
	}
	return
}

// Pressed returns true if the key is down.
// A nil keypad has no keys pressed.
func (keys *Keys) Pressed(key byte) bool {
	if keys == nil || int(key) >= KEY_COUNT {
		return false
	}
	return keys[key]
}

// Display defines the interface of a raster display sink.
type Display interface {
	// Clear turns off all pixels.
	Clear()
	// DrawRow XORs the 8 pixel bit pattern (MSB leftmost) at x, y.
	// Returns true if any pixel was turned off.
	DrawRow(x, y int, bits byte) (collision bool)
	// Present makes the current pixel state visible.
	Present() error
}

// Input defines the interface of a keypad source.
type Input interface {
	// Poll returns the current key state. ok is false when the
	// input has been closed, and the machine should stop.
	Poll() (keys Keys, ok bool)
}
