package internal

import (
	"math"
	"math/big"
	"sort"
)

// Two atan2 angles closer than this are ordered by the exact orientation test
// instead. For inputs that float64 represents exactly, atan2 is accurate to an
// ulp or so, so anything further apart is ordered correctly by the float key
// alone. Past 2^53 the float key can tie or invert for distinct rays, which the
// exact test catches.
const angleTolerance = 1e-9

// Returns the lowest point by y, breaking ties with x. See Point.Below.
func LowestPoint(points []Point) Point {
	if len(points) == 0 {
		fatalf("cannot find the lowest point of an empty point set")
	}
	lowest := points[0]
	for _, p := range points[1:] {
		if p.Below(lowest) {
			lowest = p
		}
	}
	return lowest
}

// Sort the points by polar angle around the lowest point, with duplicates
// removed. See SortAngular.
func SortedPointSet(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	return SortAngular(points, LowestPoint(points))
}

// Return a copy of points sorted by increasing angle with the x axis around the
// pivot. Points at the same angle are sorted nearest first, which puts the
// pivot itself at the front. Points with identical coordinates are collapsed
// into the first one given, so its tag is the one that survives.
//
// The pivot must be the lowest point of the set. Every other point is then
// above it or directly to its right, so all angles lie in [0, π) and the
// orientation test is a valid angle comparison.
func SortAngular(points []Point, pivot Point) []Point {
	type keyed struct {
		point Point
		angle float64
	}
	keys := make([]keyed, len(points))
	for i, p := range points {
		keys[i] = keyed{
			point: p,
			angle: polarAngle(pivot, p),
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.point.Eq(b.point) {
			return false
		}
		if math.Abs(a.angle-b.angle) > angleTolerance {
			return a.angle < b.angle
		}
		switch Orientation(pivot, a.point, b.point) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		// Same ray from the pivot, so the nearer point comes first
		switch compareDistance(pivot, a.point, b.point) {
		case -1:
			return true
		case 1:
			return false
		}
		// Same ray and same distance means same point, which was handled above
		fatalf("distinct points %v and %v have the same angle and distance from pivot %v", a.point, b.point, pivot)
		return false
	})

	// Duplicates are adjacent now, and stability kept the first one given in front
	result := make([]Point, 0, len(keys))
	for _, k := range keys {
		if len(result) > 0 && result[len(result)-1].Eq(k.point) {
			continue
		}
		result = append(result, k.point)
	}
	return result
}

// The angle of p around the pivot, in (-π, π]. The differences are taken
// exactly before converting to float, so huge coordinates lose relative
// precision but never the direction of the vector.
func polarAngle(pivot, p Point) float64 {
	if fast(pivot) && fast(p) {
		return math.Atan2(float64(int64(p.Y)-int64(pivot.Y)), float64(int64(p.X)-int64(pivot.X)))
	}
	dy, _ := new(big.Float).SetInt(bigSub(p.Y, pivot.Y)).Float64()
	dx, _ := new(big.Float).SetInt(bigSub(p.X, pivot.X)).Float64()
	return math.Atan2(dy, dx)
}
