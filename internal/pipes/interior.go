package pipes

// Class places a cell relative to the loop.
type Class int

const (
	Exterior Class = iota
	Interior
	OnLoop
)

func (c Class) String() string {
	switch c {
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	case OnLoop:
		return "loop"
	}
	return "unknown"
}

// runState tracks a horizontal stretch of the loop while scanning a row.
type runState int

const (
	outside runState = iota
	runFacingUp
	runFacingDown
)

// crossing feeds the loop symbol at one cell into the row scan and reports
// whether it completes a crossing of the boundary.
func crossing(state *runState, s Symbol) bool {
	switch s {
	case Vertical:
		return true
	case NorthEast:
		*state = runFacingUp
	case SouthEast:
		*state = runFacingDown
	case NorthWest, SouthWest:
		closing := runFacingUp
		if s == SouthWest {
			closing = runFacingDown
		}
		opened := *state
		*state = outside
		return opened != closing
	}
	return false
}

// scanRow walks row y of the bounding box left to right and returns the
// number of interior cells. visit, when non-nil, sees every cell's class.
func (l *Loop) scanRow(y int, visit func(Point, Class)) int {
	var (
		state     = outside
		crossings int
		interior  int
	)
	for x := l.min.X; x <= l.max.X; x++ {
		p := Point{x, y}
		if l.Contains(p) {
			if crossing(&state, l.Symbol(p)) {
				crossings++
			}
			if visit != nil {
				visit(p, OnLoop)
			}
			continue
		}

		c := Exterior
		if crossings%2 == 1 {
			c = Interior
			interior++
		}
		if visit != nil {
			visit(p, c)
		}
	}
	return interior
}

// Classify places a single cell. Cells outside the bounding box are exterior.
func (l *Loop) Classify(p Point) Class {
	if l.Contains(p) {
		return OnLoop
	}
	if p.X < l.min.X || p.X > l.max.X || p.Y < l.min.Y || p.Y > l.max.Y {
		return Exterior
	}

	state := outside
	crossings := 0
	for x := l.min.X; x < p.X; x++ {
		q := Point{x, p.Y}
		if l.Contains(q) && crossing(&state, l.Symbol(q)) {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return Interior
	}
	return Exterior
}

// ClassifyAll returns the class of every cell in the bounding box.
func (l *Loop) ClassifyAll() map[Point]Class {
	out := make(map[Point]Class, (l.max.X-l.min.X+1)*(l.max.Y-l.min.Y+1))
	for y := l.min.Y; y <= l.max.Y; y++ {
		l.scanRow(y, func(p Point, c Class) {
			out[p] = c
		})
	}
	return out
}

// CountInterior returns the number of cells enclosed by the loop.
func (l *Loop) CountInterior() int {
	total := 0
	for y := l.min.Y; y <= l.max.Y; y++ {
		total += l.scanRow(y, nil)
	}
	return total
}

// InteriorByArea counts enclosed cells from the loop's shoelace area using
// Pick's theorem: interior = area - boundary/2 + 1.
func (l *Loop) InteriorByArea() int {
	twiceArea := 0
	for i, a := range l.path {
		b := l.path[(i+1)%len(l.path)]
		twiceArea += a.X*b.Y - a.Y*b.X
	}
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}
	return (twiceArea-len(l.path))/2 + 1
}
