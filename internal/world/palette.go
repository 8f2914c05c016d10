package world

// Palette maps small appearance codes to wall cells.
// Code 0 is reserved for empty space; codes 1..Len() index the entries.
type Palette struct {
	entries []Cell
}

// NewPalette builds a palette whose entry i gets code i+1.
func NewPalette(entries ...Cell) Palette {
	cp := make([]Cell, len(entries))
	copy(cp, entries)
	return Palette{entries: cp}
}

// Len returns the number of wall appearances.
func (p Palette) Len() int {
	return len(p.entries)
}

// Lookup returns the cell for an appearance code.
// Code 0 yields an empty cell; unknown codes report false.
func (p Palette) Lookup(code int) (Cell, bool) {
	if code == 0 {
		return Empty(), true
	}
	if code < 0 || code > len(p.entries) {
		return Empty(), false
	}
	return p.entries[code-1], true
}

// Entries returns a copy of the palette entries in code order.
func (p Palette) Entries() []Cell {
	cp := make([]Cell, len(p.entries))
	copy(cp, p.entries)
	return cp
}
