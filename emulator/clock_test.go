// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	assert := assert.New(t)

	clock := NewClock(200)
	defer clock.Stop()

	start := time.Now()
	for range 4 {
		assert.NoError(clock.CheckFrame(context.Background()))
	}
	assert.GreaterOrEqual(time.Since(start), 15*time.Millisecond)
	assert.Equal(4, clock.Frames)
	assert.Greater(clock.Measured(), 0.0)

	clock.Active = false
	assert.NoError(clock.CheckFrame(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(clock.CheckFrame(ctx), context.Canceled)
	clock.Active = true
	assert.ErrorIs(clock.CheckFrame(ctx), context.Canceled)
}
