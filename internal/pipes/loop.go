package pipes

// Loop is the closed cycle of pipes through the start cell.
type Loop struct {
	grid       *Grid
	path       []Point
	members    map[Point]struct{}
	startShape Symbol
	min, max   Point
}

func newLoop(g *Grid, path []Point, startShape Symbol) *Loop {
	l := &Loop{
		grid:       g,
		path:       path,
		members:    make(map[Point]struct{}, len(path)),
		startShape: startShape,
		min:        path[0],
		max:        path[0],
	}
	for _, p := range path {
		l.members[p] = struct{}{}
		l.min.X = min(l.min.X, p.X)
		l.min.Y = min(l.min.Y, p.Y)
		l.max.X = max(l.max.X, p.X)
		l.max.Y = max(l.max.Y, p.Y)
	}
	return l
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.path)
}

// Path returns the loop cells in walking order, starting with the start cell.
func (l *Loop) Path() []Point {
	out := make([]Point, len(l.path))
	copy(out, l.path)
	return out
}

// Members returns the loop cells as a set.
func (l *Loop) Members() map[Point]struct{} {
	out := make(map[Point]struct{}, len(l.members))
	for p := range l.members {
		out[p] = struct{}{}
	}
	return out
}

// Contains reports whether p is on the loop.
func (l *Loop) Contains(p Point) bool {
	_, ok := l.members[p]
	return ok
}

// Start returns the start cell.
func (l *Loop) Start() Point {
	return l.path[0]
}

// StartShape returns the pipe the start cell stands in for.
func (l *Loop) StartShape() Symbol {
	return l.startShape
}

// Symbol returns the pipe at p as seen by the loop: the start cell reports its
// inferred shape and cells off the loop report Empty.
func (l *Loop) Symbol(p Point) Symbol {
	if !l.Contains(p) {
		return Empty
	}
	if p == l.path[0] {
		return l.startShape
	}
	return l.grid.At(p)
}

// Bounds returns the inclusive corners of the loop's bounding box.
func (l *Loop) Bounds() (minPt, maxPt Point) {
	return l.min, l.max
}

// Grid returns the grid the loop was traced from.
func (l *Loop) Grid() *Grid {
	return l.grid
}
