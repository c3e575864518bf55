package pipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/aoc2023/internal/pipes"
	"github.com/thruflo/aoc2023/internal/testutil"
)

func TestCountInterior_Fixtures(t *testing.T) {
	t.Parallel()

	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()

			loop, err := pipes.TraceLoop(pipes.Parse(fx.Input))
			require.NoError(t, err)

			assert.Equal(t, fx.Interior, loop.CountInterior(), "ray cast")
			assert.Equal(t, fx.Interior, loop.InteriorByArea(), "pick's theorem")
		})
	}
}

func TestClassifyAll_Partition(t *testing.T) {
	t.Parallel()

	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()

			loop, err := pipes.TraceLoop(pipes.Parse(fx.Input))
			require.NoError(t, err)

			classes := loop.ClassifyAll()
			minPt, maxPt := loop.Bounds()
			testutil.AssertPartition(t, classes, minPt, maxPt)

			area := (maxPt.X - minPt.X + 1) * (maxPt.Y - minPt.Y + 1)
			testutil.AssertClassCounts(t, classes, fx.LoopLength, fx.Interior, area-fx.LoopLength-fx.Interior)

			for p, c := range classes {
				assert.Equal(t, c, loop.Classify(p), "Classify disagrees at %v", p)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		at    pipes.Point
		want  pipes.Class
	}{
		{"enclosed junk pipe", testutil.Diamond, pipes.Point{X: 2, Y: 2}, pipes.Interior},
		{"loop cell", testutil.Diamond, pipes.Point{X: 3, Y: 3}, pipes.OnLoop},
		{"start cell", testutil.Diamond, pipes.Point{X: 1, Y: 1}, pipes.OnLoop},
		{"junk outside", testutil.Diamond, pipes.Point{X: 4, Y: 2}, pipes.Exterior},
		{"beyond the grid", testutil.Diamond, pipes.Point{X: -3, Y: 9}, pipes.Exterior},
		{"box left pocket", testutil.Box, pipes.Point{X: 2, Y: 6}, pipes.Interior},
		{"box right pocket", testutil.Box, pipes.Point{X: 8, Y: 6}, pipes.Interior},
		{"box middle gap", testutil.Box, pipes.Point{X: 5, Y: 6}, pipes.Exterior},
		{"box inner hall", testutil.Box, pipes.Point{X: 5, Y: 3}, pipes.Exterior},
		{"squeeze left pocket", testutil.Squeeze, pipes.Point{X: 3, Y: 6}, pipes.Interior},
		{"squeeze right pocket", testutil.Squeeze, pipes.Point{X: 6, Y: 6}, pipes.Interior},
		{"squeezed hall", testutil.Squeeze, pipes.Point{X: 4, Y: 3}, pipes.Exterior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loop, err := pipes.TraceLoop(pipes.Parse(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, loop.Classify(tt.at))
		})
	}
}

func TestClassString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "interior", pipes.Interior.String())
	assert.Equal(t, "exterior", pipes.Exterior.String())
	assert.Equal(t, "loop", pipes.OnLoop.String())
	assert.Equal(t, "unknown", pipes.Class(7).String())
}
