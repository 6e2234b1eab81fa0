package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	_, ok := ps.Pop()
	assert.False(t, ok)
	_, ok = ps.Peek()
	assert.False(t, ok)

	ps.Push(Point{X: 1, Y: 2})
	assert.False(t, ps.Empty())
	top, ok := ps.Peek()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 2}, top)
	_, ok = ps.PeekNext()
	assert.False(t, ok, "one element has nothing under it")

	ps.Push(Point{X: 3, Y: 4})
	assert.Equal(t, 2, ps.Len())
	top, _ = ps.Peek()
	next, ok := ps.PeekNext()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 3, Y: 4}, top)
	assert.Equal(t, Point{X: 1, Y: 2}, next)
	assert.Equal(t, 2, ps.Len(), "peeking doesn't remove anything")

	popped, ok := ps.Pop()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 3, Y: 4}, popped)
	popped, _ = ps.Pop()
	assert.Equal(t, Point{X: 1, Y: 2}, popped)
	assert.True(t, ps.Empty())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointEq(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2}.Eq(Point{X: 1, Y: 2}))
	assert.True(t, Point{X: 1, Y: 2, Tag: 7}.Eq(Point{X: 1, Y: 2, Tag: 9}), "tags don't matter")
	assert.False(t, Point{X: 1, Y: 2}.Eq(Point{X: 2, Y: 1}))
}

func TestPointBelow(t *testing.T) {
	assert.True(t, Point{X: 5, Y: 0}.Below(Point{X: 0, Y: 1}))
	assert.False(t, Point{X: 0, Y: 1}.Below(Point{X: 5, Y: 0}))
	// Same y, so the smaller x is lower
	assert.True(t, Point{X: 0, Y: 3}.Below(Point{X: 1, Y: 3}))
	assert.False(t, Point{X: 1, Y: 3}.Below(Point{X: 0, Y: 3}))
	assert.False(t, Point{X: 1, Y: 3}.Below(Point{X: 1, Y: 3}), "a point is not below itself")
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(-3, 4)", Point{X: -3, Y: 4, Tag: 2}.String())
	assert.Equal(t, Point{X: 1, Y: 1}.DbgName(), Point{X: 1, Y: 1, Tag: 5}.DbgName())
}
