package internal

// A ring of vertices, such as a hull. It may or may not repeat its first point
// at the end.
type Polygon []Point

func (poly Polygon) Closed() bool {
	return len(poly) >= 2 && poly[0].Eq(poly[len(poly)-1])
}

// The vertices without the repeated closing point, if any.
func (poly Polygon) Vertices() []Point {
	if poly.Closed() {
		return poly[:len(poly)-1]
	}
	return poly
}

// Inside-or-on-boundary test. Only meaningful for convex counterclockwise
// rings, where a point is contained iff no edge sees it as a clockwise turn.
func (poly Polygon) ContainsPoint(p Point) bool {
	vertices := poly.Vertices()
	n := len(vertices)
	if n == 0 {
		return false
	}
	for i, vertex := range vertices {
		next := vertices[CircularIndex(i+1, n)]
		if Orientation(vertex, next, p) == Clockwise {
			return false
		}
	}
	return true
}

// True iff no three consecutive vertices (wrapping around) turn clockwise.
// Collinear runs are allowed.
func (poly Polygon) IsConvex() bool {
	vertices := poly.Vertices()
	n := len(vertices)
	for i := range vertices {
		a := vertices[i]
		b := vertices[CircularIndex(i+1, n)]
		c := vertices[CircularIndex(i+2, n)]
		if Orientation(a, b, c) == Clockwise {
			return false
		}
	}
	return true
}

// Shoelace area, positive for counterclockwise rings. This is float math and
// is intended for reporting, not for geometric decisions.
func (poly Polygon) Area() float64 {
	vertices := poly.Vertices()
	n := len(vertices)
	var sum float64
	for i, p := range vertices {
		q := vertices[CircularIndex(i+1, n)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return sum / 2
}

func (poly Polygon) Reverse() Polygon {
	reversed := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		reversed = append(reversed, poly[i])
	}
	return reversed
}
