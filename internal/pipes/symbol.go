package pipes

// Symbol is a single grid glyph.
type Symbol byte

// Grid glyphs.
const (
	Empty      Symbol = '.'
	Start      Symbol = 'S'
	Vertical   Symbol = '|'
	Horizontal Symbol = '-'
	NorthEast  Symbol = 'L'
	NorthWest  Symbol = 'J'
	SouthWest  Symbol = '7'
	SouthEast  Symbol = 'F'
)

// connections maps each pipe glyph to the two directions it joins.
var connections = map[Symbol][2]Direction{
	Vertical:   {Up, Down},
	Horizontal: {Right, Left},
	NorthEast:  {Up, Right},
	NorthWest:  {Up, Left},
	SouthWest:  {Down, Left},
	SouthEast:  {Right, Down},
}

// IsPipe reports whether s is one of the six connecting glyphs.
func (s Symbol) IsPipe() bool {
	_, ok := connections[s]
	return ok
}

// Exits returns the two directions s joins. ok is false for the start glyph,
// the empty glyph, and anything unrecognised.
func (s Symbol) Exits() (exits [2]Direction, ok bool) {
	exits, ok = connections[s]
	return exits, ok
}

// Connects reports whether s has an opening towards d.
func (s Symbol) Connects(d Direction) bool {
	exits, ok := connections[s]
	return ok && (exits[0] == d || exits[1] == d)
}

// SymbolFor returns the pipe glyph that joins a and b, or Empty when a and b
// are equal.
func SymbolFor(a, b Direction) Symbol {
	for s, exits := range connections {
		if (exits[0] == a && exits[1] == b) || (exits[0] == b && exits[1] == a) {
			return s
		}
	}
	return Empty
}

func (s Symbol) String() string {
	return string(rune(s))
}
