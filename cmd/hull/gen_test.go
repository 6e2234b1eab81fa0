package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	opts := genOptions{
		Width:     60,
		Height:    40,
		Step:      2,
		Seed:      5,
		Frequency: 0.05,
		Threshold: -1,
		Regions:   3,
	}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generate(opts), generate(opts))
	})

	t.Run("stays on the grid", func(t *testing.T) {
		points := generate(opts)
		assert.NotEmpty(t, points)
		for _, p := range points {
			assert.True(t, p.X >= 0 && p.X < opts.Width && p.X%opts.Step == 0, "%v", p)
			assert.True(t, p.Y >= 0 && p.Y < opts.Height && p.Y%opts.Step == 0, "%v", p)
			assert.True(t, p.Tag >= 0 && p.Tag < opts.Regions, "%v", p)
		}
	})

	t.Run("threshold filters everything", func(t *testing.T) {
		high := opts
		high.Threshold = 2
		assert.Empty(t, generate(high))
	})
}

func TestBand(t *testing.T) {
	assert.Equal(t, 0, band(0.5, 0, 1))
	assert.Equal(t, 0, band(0.1, 0, 4))
	assert.Equal(t, 1, band(0.3, 0, 4))
	assert.Equal(t, 3, band(1, 0, 4))
	assert.Equal(t, 0, band(-0.5, 0, 4))
}
