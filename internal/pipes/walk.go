package pipes

// Default traversal ceilings. A well-formed puzzle closes far sooner; hitting
// either one means the loop never closes.
const (
	DefaultPairLimit = 10_000
	DefaultLoopLimit = 100_000
)

type walkOptions struct {
	pairLimit int
	loopLimit int
	exit      int
}

// Option adjusts a traversal.
type Option func(*walkOptions)

// WithPairLimit caps the iterations of the two-cursor walk in HalfLength.
func WithPairLimit(n int) Option {
	return func(o *walkOptions) {
		if n > 0 {
			o.pairLimit = n
		}
	}
}

// WithLoopLimit caps the steps TraceLoop takes before giving up.
func WithLoopLimit(n int) Option {
	return func(o *walkOptions) {
		if n > 0 {
			o.loopLimit = n
		}
	}
}

// WithExit picks which of the two start exits TraceLoop leaves through: 0 for
// the first in up/right/down/left order, 1 for the second.
func WithExit(i int) Option {
	return func(o *walkOptions) {
		if i == 0 || i == 1 {
			o.exit = i
		}
	}
}

func newWalkOptions(opts []Option) walkOptions {
	o := walkOptions{
		pairLimit: DefaultPairLimit,
		loopLimit: DefaultLoopLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Next returns the cell reached by leaving at through whichever of its two
// openings does not lead back to from. The neighbour must exist in the grid.
func (g *Grid) Next(at, from Point) (Point, error) {
	s := g.At(at)
	for _, d := range Directions {
		if !s.Connects(d) {
			continue
		}
		n := at.Step(d)
		if n != from && g.Has(n) {
			return n, nil
		}
	}
	return Point{}, &TraceError{Op: "next", At: at, Err: ErrNoExit}
}

// StartExits finds the two neighbours of start whose pipes open back towards
// it, along with the directions leading to them.
func (g *Grid) StartExits(start Point) ([2]Point, [2]Direction, error) {
	var (
		points [2]Point
		dirs   [2]Direction
		found  int
	)
	for _, d := range Directions {
		n := start.Step(d)
		if !g.At(n).Connects(d.Opposite()) {
			continue
		}
		if found < 2 {
			points[found] = n
			dirs[found] = d
		}
		found++
	}
	if found != 2 {
		return points, dirs, &TraceError{Op: "start exits", At: start, Count: found, Err: ErrStartConnections}
	}
	return points, dirs, nil
}

// HalfLength walks both ways round the loop from the start cell and returns
// the number of steps at which the two cursors meet.
func HalfLength(g *Grid, opts ...Option) (int, error) {
	o := newWalkOptions(opts)

	start, err := g.Start()
	if err != nil {
		return 0, err
	}
	exits, _, err := g.StartExits(start)
	if err != nil {
		return 0, err
	}

	a, b := exits[0], exits[1]
	prevA, prevB := start, start
	steps := 1

	for a != b {
		if steps > o.pairLimit {
			return 0, &TraceError{Op: "half length", At: a, Count: o.pairLimit, Err: ErrRunaway}
		}

		nextA, err := g.Next(a, prevA)
		if err != nil {
			return 0, err
		}
		nextB, err := g.Next(b, prevB)
		if err != nil {
			return 0, err
		}

		prevA, a = a, nextA
		prevB, b = b, nextB
		steps++
	}

	return steps, nil
}

// TraceLoop walks the loop once, from the start cell back to it, and records
// every cell on the way.
func TraceLoop(g *Grid, opts ...Option) (*Loop, error) {
	o := newWalkOptions(opts)

	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	exits, dirs, err := g.StartExits(start)
	if err != nil {
		return nil, err
	}

	path := []Point{start}
	prev, cur := start, exits[o.exit]

	for steps := 0; cur != start; steps++ {
		if steps >= o.loopLimit {
			return nil, &TraceError{Op: "trace loop", At: cur, Count: o.loopLimit, Err: ErrRunaway}
		}
		path = append(path, cur)

		next, err := g.Next(cur, prev)
		if err != nil {
			return nil, err
		}
		prev, cur = cur, next
	}

	return newLoop(g, path, SymbolFor(dirs[0], dirs[1])), nil
}
