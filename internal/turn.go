package internal

import "math/big"

// The direction of the turn made by walking through three points in order.
type Turn int

const (
	Collinear Turn = iota
	CounterClockwise
	Clockwise
)

func (t Turn) String() string {
	switch t {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	}
	return "Turn(?)"
}

// Coordinates up to this magnitude keep every difference below 2^31 and every
// product below 2^62, so the cross product and squared distances fit in 64
// bits.
const maxFastCoordinate = 1 << 30

func fast(p Point) bool {
	return p.X >= -maxFastCoordinate && p.X <= maxFastCoordinate &&
		p.Y >= -maxFastCoordinate && p.Y <= maxFastCoordinate
}

// Orientation classifies a -> b -> c by the sign of the cross product
//
//	(b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
//
// Positive is a counterclockwise (left) turn, negative is clockwise.
// The result is exact for every int coordinate.
func Orientation(a, b, c Point) Turn {
	switch crossSign(a, b, c) {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	}
	return Collinear
}

func crossSign(a, b, c Point) int {
	if fast(a) && fast(b) && fast(c) {
		cross := (int64(b.X)-int64(a.X))*(int64(c.Y)-int64(a.Y)) -
			(int64(b.Y)-int64(a.Y))*(int64(c.X)-int64(a.X))
		switch {
		case cross > 0:
			return 1
		case cross < 0:
			return -1
		}
		return 0
	}

	abx, aby := bigSub(b.X, a.X), bigSub(b.Y, a.Y)
	acx, acy := bigSub(c.X, a.X), bigSub(c.Y, a.Y)
	var lhs, rhs big.Int
	lhs.Mul(abx, acy)
	rhs.Mul(aby, acx)
	return lhs.Cmp(&rhs)
}

// Compare the squared distances |a - origin|² and |b - origin|². Returns -1, 0
// or 1 like big.Int.Cmp.
func compareDistance(origin, a, b Point) int {
	if fast(origin) && fast(a) && fast(b) {
		da, db := squaredDistance(origin, a), squaredDistance(origin, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	}
	da, db := bigSquaredDistance(origin, a), bigSquaredDistance(origin, b)
	return da.Cmp(db)
}

// Only valid for fast points: each square is below 2^62, so the sum fits.
func squaredDistance(origin, p Point) uint64 {
	dx := int64(p.X) - int64(origin.X)
	dy := int64(p.Y) - int64(origin.Y)
	return uint64(dx*dx) + uint64(dy*dy)
}

func bigSquaredDistance(origin, p Point) *big.Int {
	dx, dy := bigSub(p.X, origin.X), bigSub(p.Y, origin.Y)
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

func bigSub(a, b int) *big.Int {
	r := big.NewInt(int64(a))
	return r.Sub(r, big.NewInt(int64(b)))
}
