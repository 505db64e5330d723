// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	count := 0
	for range Concat2(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestSorted2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"zeta": 1, "alpha": 2}
	b := map[string]int{"mid": 3, "alpha": 4}

	var keys []string
	var vals []int
	for key, val := range Sorted2(Concat2(maps.All(a), maps.All(b))) {
		keys = append(keys, key)
		vals = append(vals, val)
	}

	assert.Equal([]string{"alpha", "mid", "zeta"}, keys)
	assert.Equal([]int{4, 3, 1}, vals)
}
