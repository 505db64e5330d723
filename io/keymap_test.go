// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOf(t *testing.T) {
	assert := assert.New(t)

	table := map[rune]byte{
		'1': 0x1, '4': 0xc, 'q': 0x4, 'R': 0xd,
		'x': 0x0, 'X': 0x0, 'v': 0xf, 'A': 0x7,
	}

	for ch, expected := range table {
		key, ok := KeyOf(ch)
		assert.True(ok, "%q", ch)
		assert.Equal(expected, key, "%q", ch)
	}

	_, ok := KeyOf('p')
	assert.False(ok)
	_, ok = KeyOf('!')
	assert.False(ok)
}

func TestKeyMapCoversKeypad(t *testing.T) {
	assert := assert.New(t)

	seen := map[byte]bool{}
	for _, key := range KeyMap {
		seen[key] = true
	}

	assert.Len(seen, KEY_COUNT)
}
