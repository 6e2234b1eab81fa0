package internal

// This contains no actual tests. It is just a helper for testing hull validity.

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// Check that hull is a valid convex hull of points. The rules are:
// 1. The hull is closed: the first and last points are the same.
// 2. The first point is the lowest input point (by y, then x).
// 3. Every hull vertex is one of the input points.
// 4. No three consecutive vertices turn clockwise.
// 5. Every input point is inside the hull or on its boundary.
func AssertValidHull(t *testing.T, points []Point, hull []Point) {
	t.Helper()
	poly := Polygon(hull)

	require.True(t, poly.Closed(), "hull is not closed: %# v", pretty.Formatter(hull))
	require.Greater(t, len(poly.Vertices()), 2, "hull has too few vertices: %# v", pretty.Formatter(hull))
	require.Equal(t, LowestPoint(points), hull[0], "hull does not start at the lowest point")

	inputSet := make(map[[2]int]struct{}, len(points))
	for _, p := range points {
		inputSet[[2]int{p.X, p.Y}] = struct{}{}
	}
	for _, v := range hull {
		_, ok := inputSet[[2]int{v.X, v.Y}]
		require.True(t, ok, "hull vertex %v is not an input point", v)
	}

	require.True(t, poly.IsConvex(), "hull turns clockwise: %# v", pretty.Formatter(hull))

	for _, p := range points {
		require.True(t, poly.ContainsPoint(p), "point %v is outside the hull %# v", p, pretty.Formatter(hull))
	}
}

// Strip tags, so hulls can be compared by coordinates alone
func untagged(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Point{X: p.X, Y: p.Y}
	}
	return result
}
