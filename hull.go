// Convex hulls of integer point sets for Go.
//
// This package computes the convex hull of a set of 2D points with integer
// coordinates using the Graham scan. The orientation test is exact over the
// full range of int, so no input can overflow it.
package convexhull

import (
	"log/slog"

	"github.com/osuushi/convexhull/internal"
)

type Point = internal.Point
type Turn = internal.Turn
type Polygon = internal.Polygon

const (
	Collinear        = internal.Collinear
	CounterClockwise = internal.CounterClockwise
	Clockwise        = internal.Clockwise
)

var (
	// Returned (wrapped) when fewer than 3 unique points are given.
	ErrInsufficientPoints = internal.ErrInsufficientPoints
	// Returned (wrapped) if the algorithm breaks one of its own invariants.
	// This indicates a bug.
	ErrInvariantViolation = internal.ErrInvariantViolation
)

// Compute the convex hull of a set of points. Duplicate points are allowed and
// are treated as a single point.
//
// The result is closed: it starts and ends with the lowest point (minimum y,
// then minimum x), and lists the hull counterclockwise in between. Points on a
// hull edge may be included.
//
// If all the points are collinear, the result is instead the unique points
// sorted outward from the lowest point, and it is not closed. Use
// Polygon.Closed to tell the cases apart.
//
// Fewer than 3 unique points fails with an error wrapping
// ErrInsufficientPoints.
func ConvexHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ConvexHull(points)
}

// Group points by Tag and compute the hull of each group, as ConvexHull does.
// Groups are computed concurrently. Any group with fewer than 3 unique points
// fails the whole call.
func ConvexHullsByTag(points []Point) (map[int][]Point, error) {
	return internal.ConvexHullsByTag(points)
}

// Classify the turn a -> b -> c. Exact for all int coordinates.
func Orientation(a, b, c Point) Turn {
	return internal.Orientation(a, b, c)
}

// Set the logger used for debug output. By default nothing is logged. Pass nil
// to go back to the default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
