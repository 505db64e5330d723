// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package window provides an SDL2 window display and keypad.
//
// SDL must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before OpenWindow.
package window

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrWindowOpen = errors.New(f("window open"))
)

const (
	WINDOW_TITLE = "chip8"
	WINDOW_SCALE = 10 // Default window pixels per screen pixel.
)

// Window is an SDL2 window that is both a display and a keypad.
type Window struct {
	io.Screen

	Scale int // Window pixels per screen pixel.

	window   *sdl.Window
	renderer *sdl.Renderer
	keys     io.Keys
	closed   bool
}

var _ io.Display = (*Window)(nil)
var _ io.Input = (*Window)(nil)

// OpenWindow initializes SDL, and opens a window.
func OpenWindow(scale int) (win *Window, err error) {
	if scale <= 0 {
		scale = WINDOW_SCALE
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		err = errors.Join(ErrWindowOpen, err)
		return
	}

	win = &Window{Scale: scale}

	win.window, err = sdl.CreateWindow(WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(io.SCREEN_WIDTH*scale), int32(io.SCREEN_HEIGHT*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		win = nil
		err = errors.Join(ErrWindowOpen, err)
		return
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.window.Destroy()
		sdl.Quit()
		win = nil
		err = errors.Join(ErrWindowOpen, err)
		return
	}

	win.Dirty = true
	err = win.Present()

	return
}

// Destroy the window, and shut down SDL.
func (win *Window) Destroy() (err error) {
	if win.renderer != nil {
		err = win.renderer.Destroy()
		win.renderer = nil
	}
	if win.window != nil {
		err = errors.Join(err, win.window.Destroy())
		win.window = nil
	}
	sdl.Quit()
	return
}

// Present draws the screen, if it has changed.
func (win *Window) Present() (err error) {
	if !win.Dirty || win.renderer == nil {
		return
	}

	err = win.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return
	}
	err = win.renderer.Clear()
	if err != nil {
		return
	}

	err = win.renderer.SetDrawColor(255, 255, 255, 255)
	if err != nil {
		return
	}

	scale := int32(win.Scale)
	for y := range io.SCREEN_HEIGHT {
		for x := range io.SCREEN_WIDTH {
			if !win.Pixel(x, y) {
				continue
			}
			rect := &sdl.Rect{X: int32(x) * scale, Y: int32(y) * scale, W: scale, H: scale}
			err = win.renderer.FillRect(rect)
			if err != nil {
				return
			}
		}
	}

	win.renderer.Present()

	err = win.Screen.Present()

	return
}

// Poll drains the SDL event queue, and returns the keypad state.
// Closing the window, or pressing escape, ends input.
func (win *Window) Poll() (keys io.Keys, ok bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			win.closed = true
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				win.closed = true
				continue
			}
			win.Key(rune(ev.Keysym.Sym), ev.Type == sdl.KEYDOWN)
		}
	}

	return win.keys, !win.closed
}

// Key updates the keypad state for a keyboard character.
func (win *Window) Key(ch rune, down bool) {
	key, ok := io.KeyOf(ch)
	if !ok {
		return
	}
	win.keys[key] = down
}
