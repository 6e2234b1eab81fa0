package main

import (
	fastnoiselite "github.com/furui/fastnoiselite-go"
	"github.com/osuushi/convexhull"
)

type genOptions struct {
	Width, Height int
	// Grid spacing of the sample points
	Step      int
	Seed      int32
	Frequency float64
	// Only cells with noise above this value become points
	Threshold float64
	// Number of tags to split the points into, by noise value
	Regions int
}

// Sample a noise field on a grid and keep the cells above the threshold. This
// gives blobby, clustered point clouds, which are more interesting hull inputs
// than uniform random points. The output only depends on the options.
func generate(opts genOptions) []convexhull.Point {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = opts.Seed
	// Frequency is applied to the coordinates instead
	noise.Frequency = 1

	step := opts.Step
	if step < 1 {
		step = 1
	}
	regions := opts.Regions
	if regions < 1 {
		regions = 1
	}

	var points []convexhull.Point
	for y := 0; y < opts.Height; y += step {
		for x := 0; x < opts.Width; x += step {
			value := noise.GetNoise2D(
				fastnoiselite.FNLfloat(float64(x)*opts.Frequency),
				fastnoiselite.FNLfloat(float64(y)*opts.Frequency),
			)
			if float64(value) <= opts.Threshold {
				continue
			}
			points = append(points, convexhull.Point{X: x, Y: y, Tag: band(float64(value), opts.Threshold, regions)})
		}
	}
	return points
}

// Split (threshold, 1] into n equal bands, numbered from 0.
func band(value, threshold float64, n int) int {
	if n <= 1 || threshold >= 1 {
		return 0
	}
	b := int((value - threshold) / (1 - threshold) * float64(n))
	if b >= n {
		b = n - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}
