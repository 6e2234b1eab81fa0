package internal

import "github.com/pkg/errors"

// Graham scan. The points are sorted by angle around the lowest point, then
// swept with a stack, discarding any point that would make the boundary turn
// clockwise.

var ErrInsufficientPoints = errors.New("convexhull: can only create a convex hull of 3 or more unique points")

// True iff every point lies on the line through the first two. Fewer than two
// points are trivially collinear.
func AreAllCollinear(points []Point) bool {
	if len(points) < 2 {
		return true
	}
	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if Orientation(a, b, c) != Collinear {
			return false
		}
	}
	return true
}

// Compute the convex hull of points, which may contain duplicates.
//
// The result starts at the lowest point (by y, then x), runs counterclockwise,
// and ends with the lowest point again. Points lying on a hull edge are kept
// where the sweep meets them in order, which is every such edge except the
// closing one.
//
// If every point is collinear, there is no hull to speak of, and the sorted,
// deduplicated points are returned as they are: nearest to the lowest point
// first, and not closed. This is not an error.
//
// Fewer than 3 unique points is an error wrapping ErrInsufficientPoints.
func ConvexHull(points []Point) ([]Point, error) {
	sorted := SortedPointSet(points)
	log := Logger()

	if len(sorted) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "got %d", len(sorted))
	}

	if AreAllCollinear(sorted) {
		log.Debug("convexhull: all points collinear, returning sorted points",
			"input", len(points), "unique", len(sorted))
		return sorted, nil
	}

	stack := make(PointStack, 0, len(sorted)+1)
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for i := 2; i < len(sorted); {
		head := sorted[i]
		middle, _ := stack.Peek()
		tail, ok := stack.PeekNext()
		if !ok {
			// The first two sorted points can never be popped: nothing sorts
			// clockwise of the pivot's nearest neighbor by angle.
			fatalf("hull stack underflow at %v (index %d)", head, i)
		}

		switch Orientation(tail, middle, head) {
		case CounterClockwise, Collinear:
			stack.Push(head)
			i++
		case Clockwise:
			// middle is inside the hull. Retry the same head against the new top.
			stack.Pop()
		}
	}

	// Close the hull
	stack.Push(sorted[0])

	log.Debug("convexhull: hull computed",
		"input", len(points), "unique", len(sorted), "vertices", len(stack)-1)
	return []Point(stack), nil
}
