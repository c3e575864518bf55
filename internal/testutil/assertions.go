package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/aoc2023/internal/pipes"
)

// AssertClassCounts asserts how many cells fall into each class.
func AssertClassCounts(t *testing.T, classes map[pipes.Point]pipes.Class, loop, interior, exterior int) {
	t.Helper()

	counts := make(map[pipes.Class]int)
	for _, c := range classes {
		counts[c]++
	}
	assert.Equal(t, loop, counts[pipes.OnLoop], "loop cell count mismatch")
	assert.Equal(t, interior, counts[pipes.Interior], "interior cell count mismatch")
	assert.Equal(t, exterior, counts[pipes.Exterior], "exterior cell count mismatch")
}

// AssertPartition asserts that every cell of the inclusive box between minPt
// and maxPt has exactly one class and that nothing outside it is classified.
func AssertPartition(t *testing.T, classes map[pipes.Point]pipes.Class, minPt, maxPt pipes.Point) {
	t.Helper()

	width := maxPt.X - minPt.X + 1
	height := maxPt.Y - minPt.Y + 1
	require.Len(t, classes, width*height, "classified cell count mismatch")

	for y := minPt.Y; y <= maxPt.Y; y++ {
		for x := minPt.X; x <= maxPt.X; x++ {
			c, ok := classes[pipes.Point{X: x, Y: y}]
			if assert.True(t, ok, "cell (%d,%d) not classified", x, y) {
				assert.Contains(t, []pipes.Class{pipes.OnLoop, pipes.Interior, pipes.Exterior}, c)
			}
		}
	}
}
