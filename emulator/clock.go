// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"time"
)

// Clock paces the host loop at a fixed frame rate.
type Clock struct {
	// whether to wait for the pulse each frame
	Active bool

	// number of frames checked since the clock was created
	Frames int

	pulse *time.Ticker
	start time.Time
}

// NewClock creates an active clock running at rate frames per second.
func NewClock(rate int) (clock *Clock) {
	if rate <= 0 {
		rate = FRAME_RATE
	}

	clock = &Clock{
		Active: true,
		pulse:  time.NewTicker(time.Second / time.Duration(rate)),
		start:  time.Now(),
	}

	return
}

// CheckFrame should be called every frame. It blocks until the next pulse
// when the clock is active, or until the context is done.
func (clock *Clock) CheckFrame(ctx context.Context) (err error) {
	clock.Frames++

	if !clock.Active {
		err = ctx.Err()
		return
	}

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-clock.pulse.C:
	}

	return
}

// Measured returns the measured frames per second.
func (clock *Clock) Measured() float64 {
	elapsed := time.Since(clock.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(clock.Frames) / elapsed
}

// Stop the clock.
func (clock *Clock) Stop() {
	clock.pulse.Stop()
}
