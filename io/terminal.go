// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"io"
	"strings"

	"github.com/pkg/term"
)

const (
	TERMINAL_HOLD = 6 // Polls that a key remains down after it is typed.

	keyEscape = 27
)

// Terminal is a Display and Input on a text terminal.
//
// Pixels are rendered two rows per character cell. Terminals do not report
// key release, so a typed key is held down for Hold polls.
type Terminal struct {
	Screen
	Output io.Writer // Rendered output.
	Hold   int       // Polls that a key stays down.

	tty    *term.Term
	closed bool
	held   [KEY_COUNT]int
}

var _ Display = (*Terminal)(nil)
var _ Input = (*Terminal)(nil)

// OpenTerminal opens a tty in cbreak mode for keypad input.
func OpenTerminal(name string, output io.Writer) (tm *Terminal, err error) {
	tty, err := term.Open(name, term.CBreakMode)
	if err != nil {
		return
	}

	// Non-blocking reads.
	err = tty.SetReadTimeout(0)
	if err != nil {
		tty.Restore()
		tty.Close()
		return
	}

	tm = &Terminal{
		Output: output,
		Hold:   TERMINAL_HOLD,
		tty:    tty,
	}

	// Clear screen, hide cursor.
	_, err = io.WriteString(output, "\x1b[2J\x1b[?25l")

	return
}

// Close restores the terminal mode.
func (tm *Terminal) Close() (err error) {
	io.WriteString(tm.Output, "\x1b[?25h\n")
	if tm.tty == nil {
		return
	}
	err = errors.Join(tm.tty.Restore(), tm.tty.Close())
	tm.tty = nil
	return
}

// Present renders the screen, if it has changed.
func (tm *Terminal) Present() (err error) {
	if !tm.Dirty {
		return
	}

	_, err = io.WriteString(tm.Output, tm.Render())
	if err != nil {
		return
	}

	return tm.Screen.Present()
}

// Render returns the screen as terminal text, starting at the home position.
func (tm *Terminal) Render() string {
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for y := 0; y < SCREEN_HEIGHT; y += 2 {
		for x := range SCREEN_WIDTH {
			top := tm.Pixel(x, y)
			bottom := tm.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// Poll reads any pending keyboard input.
func (tm *Terminal) Poll() (keys Keys, ok bool) {
	var buf [16]byte

	if tm.tty != nil && !tm.closed {
		n, err := tm.tty.Read(buf[:])
		if err != nil && !errors.Is(err, io.EOF) {
			tm.closed = true
		}
		tm.Typed(buf[:n])
	}

	return tm.Keys()
}

// Typed records keyboard characters; an escape closes the input.
func (tm *Terminal) Typed(typed []byte) {
	for n := range tm.held {
		if tm.held[n] > 0 {
			tm.held[n]--
		}
	}

	for _, ch := range typed {
		if ch == keyEscape {
			tm.closed = true
			continue
		}
		key, ok := KeyOf(rune(ch))
		if ok {
			tm.held[key] = tm.Hold
		}
	}
}

// Keys returns the keys currently held down.
func (tm *Terminal) Keys() (keys Keys, ok bool) {
	for n, hold := range tm.held {
		keys[n] = hold > 0
	}
	ok = !tm.closed
	return
}
