// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowKey(t *testing.T) {
	assert := assert.New(t)

	win := &Window{}

	win.Key('w', true)
	win.Key('V', true)
	win.Key('p', true)
	assert.True(win.keys[0x5])
	assert.True(win.keys[0xf])

	win.Key('w', false)
	assert.False(win.keys[0x5])
	assert.True(win.keys[0xf])

	first, ok := win.keys.First()
	assert.True(ok)
	assert.Equal(byte(0xf), first)
}

func TestWindowPresentClosed(t *testing.T) {
	assert := assert.New(t)

	// Without a renderer, the screen stays dirty.
	win := &Window{}
	win.DrawRow(0, 0, 0x80)
	assert.NoError(win.Present())
	assert.True(win.Dirty)
}
