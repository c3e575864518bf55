package pipes

import "strings"

// Grid is a sparse view of the puzzle input. Empty cells are omitted.
type Grid struct {
	cells  map[Point]Symbol
	starts []Point
	width  int
	height int
}

// Parse reads a newline separated grid. Every byte other than the empty glyph
// becomes a cell keyed by (column, row).
func Parse(input string) *Grid {
	g := &Grid{cells: make(map[Point]Symbol)}

	input = strings.TrimSpace(input)
	if input == "" {
		return g
	}

	for y, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if len(line) > g.width {
			g.width = len(line)
		}
		g.height = y + 1

		for x := 0; x < len(line); x++ {
			s := Symbol(line[x])
			if s == Empty {
				continue
			}
			p := Point{x, y}
			g.cells[p] = s
			if s == Start {
				g.starts = append(g.starts, p)
			}
		}
	}

	return g
}

// At returns the symbol at p, or Empty.
func (g *Grid) At(p Point) Symbol {
	if s, ok := g.cells[p]; ok {
		return s
	}
	return Empty
}

// Has reports whether p holds a non-empty cell.
func (g *Grid) Has(p Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Len returns the number of non-empty cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Start returns the position of the single start cell.
func (g *Grid) Start() (Point, error) {
	switch len(g.starts) {
	case 0:
		return Point{}, ErrNoStart
	case 1:
		return g.starts[0], nil
	default:
		return Point{}, ErrMultipleStarts
	}
}
