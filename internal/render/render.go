// Package render draws a traced loop for inspection.
package render

import (
	"bufio"
	"io"
	"os"

	"github.com/thruflo/aoc2023/internal/pipes"
	"golang.org/x/term"
)

// ANSI escape sequences.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"
)

// Glyphs drawn for cells off the loop.
const (
	InteriorGlyph = 'I'
	ExteriorGlyph = 'O'
)

var boxGlyphs = map[pipes.Symbol]rune{
	pipes.Vertical:   '│',
	pipes.Horizontal: '─',
	pipes.NorthEast:  '└',
	pipes.NorthWest:  '┘',
	pipes.SouthWest:  '┐',
	pipes.SouthEast:  '┌',
}

// Options controls rendering.
type Options struct {
	// Color wraps the start cell and interior cells in ANSI colour codes.
	Color bool
}

// ColorEnabled reports whether w is a terminal that should receive colour.
// NO_COLOR disables colour regardless.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Loop writes the grid the loop was traced from, one row per line. Loop cells
// become box-drawing characters, enclosed cells InteriorGlyph and everything
// else ExteriorGlyph.
func Loop(w io.Writer, loop *pipes.Loop, opts Options) error {
	bw := bufio.NewWriter(w)
	g := loop.Grid()
	classes := loop.ClassifyAll()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := pipes.Point{X: x, Y: y}
			writeCell(bw, p, loop, classes[p], opts)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCell(bw *bufio.Writer, p pipes.Point, loop *pipes.Loop, class pipes.Class, opts Options) {
	if loop.Contains(p) {
		glyph := boxGlyphs[loop.Symbol(p)]
		if p == loop.Start() && opts.Color {
			bw.WriteString(ansiBold + ansiYellow)
			bw.WriteRune(glyph)
			bw.WriteString(ansiReset)
			return
		}
		bw.WriteRune(glyph)
		return
	}

	if class == pipes.Interior {
		if opts.Color {
			bw.WriteString(ansiBold + ansiGreen)
			bw.WriteRune(InteriorGlyph)
			bw.WriteString(ansiReset)
			return
		}
		bw.WriteRune(InteriorGlyph)
		return
	}

	if opts.Color {
		bw.WriteString(ansiDim)
		bw.WriteRune(ExteriorGlyph)
		bw.WriteString(ansiReset)
		return
	}
	bw.WriteRune(ExteriorGlyph)
}
