// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

// KeyMap maps keyboard characters to keypad keys.
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var KeyMap = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// KeyOf returns the keypad key for a keyboard character.
// Upper case letters map the same as lower case.
func KeyOf(ch rune) (key byte, ok bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	key, ok = KeyMap[ch]
	return
}
