package internal

import (
	"fmt"

	"github.com/osuushi/convexhull/dbg"
)

// Point is an integer point in the plane. Tag is a payload for the caller (a
// region id, a palette index, an index into some other array) and never takes
// part in any geometry. In particular, two points with the same coordinates are
// the same point no matter what their tags are.
type Point struct {
	X, Y int
	Tag  int
}

func (p Point) Eq(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Lexicographic y-then-x ordering. The lowest point under this ordering is the
// pivot of the angular sort.
func (p Point) Below(other Point) bool {
	if p.Y == other.Y {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Readable name for debug output. Keyed on coordinates only, so duplicates with
// different tags share a name.
func (p Point) DbgName() string {
	return dbg.Name(Point{X: p.X, Y: p.Y})
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The point just under the top of the stack
func (s *PointStack) PeekNext() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
