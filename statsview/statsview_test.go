// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !statsview

package statsview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchStub(t *testing.T) {
	assert := assert.New(t)

	assert.False(Available())

	var buff bytes.Buffer
	Launch(&buff)
	assert.Contains(buff.String(), "-tags statsview")
}
