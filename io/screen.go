// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"strings"
)

const (
	SCREEN_WIDTH  = 64 // Horizontal resolution in pixels.
	SCREEN_HEIGHT = 32 // Vertical resolution in pixels.
)

// Screen is a persistent monochrome pixel buffer with XOR compositing.
// Coordinates wrap around the edges.
type Screen struct {
	Pixels [SCREEN_WIDTH * SCREEN_HEIGHT]bool
	Dirty  bool // Set when the pixels have changed since the last Present()
}

var _ Display = (*Screen)(nil)

// Clear all pixels.
func (scr *Screen) Clear() {
	clear(scr.Pixels[:])
	scr.Dirty = true
}

// DrawRow XORs an 8 pixel row, and reports if any pixel was erased.
func (scr *Screen) DrawRow(x, y int, bits byte) (collision bool) {
	y = wrap(y, SCREEN_HEIGHT)
	for bit := range 8 {
		if (bits>>(7-bit))&1 == 0 {
			continue
		}
		index := y*SCREEN_WIDTH + wrap(x+bit, SCREEN_WIDTH)
		if scr.Pixels[index] {
			collision = true
		}
		scr.Pixels[index] = !scr.Pixels[index]
	}
	scr.Dirty = true
	return
}

// Present clears the dirty flag; the buffer itself has no output device.
func (scr *Screen) Present() error {
	scr.Dirty = false
	return nil
}

// Pixel returns the state of a pixel.
func (scr *Screen) Pixel(x, y int) bool {
	return scr.Pixels[wrap(y, SCREEN_HEIGHT)*SCREEN_WIDTH+wrap(x, SCREEN_WIDTH)]
}

// String renders the screen as text, one line per row.
func (scr *Screen) String() string {
	var sb strings.Builder
	for y := range SCREEN_HEIGHT {
		for x := range SCREEN_WIDTH {
			if scr.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
