package pipes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/aoc2023/internal/pipes"
	"github.com/thruflo/aoc2023/internal/testutil"
)

func TestCountInteriorParallel(t *testing.T) {
	t.Parallel()

	ctx, cancel := testutil.ContextWithTestDeadline(t, 30*time.Second)
	defer cancel()

	for _, fx := range testutil.Fixtures() {
		loop, err := pipes.TraceLoop(pipes.Parse(fx.Input))
		require.NoError(t, err)

		for _, workers := range []int{0, 1, 3} {
			got, err := pipes.CountInteriorParallel(ctx, loop, workers)
			require.NoError(t, err, "%s with %d workers", fx.Name, workers)
			assert.Equal(t, fx.Interior, got, "%s with %d workers", fx.Name, workers)
		}
	}
}

func TestCountInteriorParallel_Cancelled(t *testing.T) {
	t.Parallel()

	loop, err := pipes.TraceLoop(pipes.Parse(testutil.Junk))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := pipes.CountInteriorParallel(ctx, loop, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, got)
}
