package testutil

// Diamond is a square loop of eight cells around one enclosed pipe, drawn in
// among unconnected pipes.
const Diamond = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`

// Complex winds through a 5x5 grid with the start on the left edge.
const Complex = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`

// Box encloses two pockets of two cells each.
const Box = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

// Squeeze is Box with the gap between the pockets closed up, so the outside
// only reaches the middle by squeezing between pipes.
const Squeeze = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`

// Larger has many vertical runs and eight enclosed cells.
const Larger = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

// Junk fills every cell, most of them with pipes that are not on the loop.
const Junk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`

// Fixture pairs a puzzle grid with its known answers.
type Fixture struct {
	Name       string
	Input      string
	StartX     int
	StartY     int
	StartShape byte
	LoopLength int
	HalfLength int
	Interior   int
}

// Fixtures returns every worked grid. Returns a new slice each time to prevent
// test interference.
func Fixtures() []Fixture {
	return []Fixture{
		{Name: "diamond", Input: Diamond, StartX: 1, StartY: 1, StartShape: 'F', LoopLength: 8, HalfLength: 4, Interior: 1},
		{Name: "complex", Input: Complex, StartX: 0, StartY: 2, StartShape: 'F', LoopLength: 16, HalfLength: 8, Interior: 1},
		{Name: "box", Input: Box, StartX: 1, StartY: 1, StartShape: 'F', LoopLength: 46, HalfLength: 23, Interior: 4},
		{Name: "squeeze", Input: Squeeze, StartX: 1, StartY: 1, StartShape: 'F', LoopLength: 44, HalfLength: 22, Interior: 4},
		{Name: "larger", Input: Larger, StartX: 12, StartY: 4, StartShape: 'F', LoopLength: 140, HalfLength: 70, Interior: 8},
		{Name: "junk", Input: Junk, StartX: 4, StartY: 0, StartShape: '7', LoopLength: 160, HalfLength: 80, Interior: 10},
	}
}
