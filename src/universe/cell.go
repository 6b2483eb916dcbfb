package universe

//Cell is the state of one grid position, Alive counts as 1 when summed
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

//Valid reports whether c is Dead or Alive
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}

//Glyph returns the rune used by Render for the cell
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string {
	return string(c.Glyph())
}

//Toggled returns the opposite state
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}
