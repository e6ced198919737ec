package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsPopulation(t *testing.T) {
	s := NewStats()
	s.Observe(0, 4, "a")
	s.Observe(1, 6, "b")
	s.Observe(2, 2, "c")

	assert.Equal(t, 2, s.TotalGenerations)
	assert.Equal(t, 4, s.InitialPopulation)
	assert.Equal(t, 2, s.FinalPopulation)
	assert.Equal(t, 6, s.PeakPopulation)
	assert.InDelta(t, 4.0, s.AveragePopulation, 1e-9)
	assert.Equal(t, -1, s.ExtinctAt)
	assert.Equal(t, -1, s.StableAt)
}

func TestStatsExtinction(t *testing.T) {
	s := NewStats()
	s.Observe(0, 1, "one")
	s.Observe(1, 0, "empty")
	s.Observe(2, 0, "empty")

	assert.Equal(t, 1, s.ExtinctAt)
	assert.Equal(t, 2, s.StableAt)
	assert.Equal(t, 1, s.StablePeriod)
}

func TestStatsDetectsStillLife(t *testing.T) {
	s := NewStats()
	s.Observe(0, 5, "seed")
	s.Observe(1, 4, "block")
	s.Observe(2, 4, "block")
	s.Observe(3, 4, "block")

	assert.Equal(t, 2, s.StableAt)
	assert.Equal(t, 1, s.StablePeriod)
}

func TestStatsDetectsOscillator(t *testing.T) {
	s := NewStats()
	for generation, hash := range []string{"h", "v", "h", "v", "h"} {
		s.Observe(generation, 3, hash)
	}

	assert.Equal(t, 2, s.StableAt)
	assert.Equal(t, 2, s.StablePeriod)
	assert.Equal(t, -1, s.ExtinctAt)
}

func TestStatsHistoryIsBounded(t *testing.T) {
	s := NewStats()
	hashes := []string{"a", "b", "c", "d", "e", "f", "a"}
	for generation, hash := range hashes {
		s.Observe(generation, 1, hash)
	}

	// "a" fell out of the window before it came back
	assert.Equal(t, -1, s.StableAt)
	assert.Len(t, s.history, historySize)
}
