package walker

import (
	"strings"

	"hillclimb/internal/terrain"
)

// Path is an ordered sequence of cells with no repeated coordinate.
type Path struct {
	cells []terrain.Cell
	seen  map[terrain.Coord]struct{}
}

// NewPath returns a path holding cells in order. Repeated coordinates are
// dropped.
func NewPath(cells ...terrain.Cell) *Path {
	p := &Path{
		cells: make([]terrain.Cell, 0, len(cells)),
		seen:  make(map[terrain.Coord]struct{}, len(cells)),
	}
	for _, c := range cells {
		p.Add(c)
	}
	return p
}

// Add appends c unless its coordinate is already on the path.
func (p *Path) Add(c terrain.Cell) bool {
	if p.Contains(c) {
		return false
	}
	p.cells = append(p.cells, c)
	p.seen[c.Coord()] = struct{}{}
	return true
}

// RemoveLast pops the last cell. It is a no-op on an empty path.
func (p *Path) RemoveLast() (terrain.Cell, bool) {
	if len(p.cells) == 0 {
		return terrain.Cell{}, false
	}
	last := p.cells[len(p.cells)-1]
	p.cells = p.cells[:len(p.cells)-1]
	delete(p.seen, last.Coord())
	return last, true
}

// Len counts cells, including the start.
func (p *Path) Len() int {
	return len(p.cells)
}

func (p *Path) Last() (terrain.Cell, bool) {
	if len(p.cells) == 0 {
		return terrain.Cell{}, false
	}
	return p.cells[len(p.cells)-1], true
}

// Contains reports whether c's coordinate is on the path.
func (p *Path) Contains(c terrain.Cell) bool {
	_, ok := p.seen[c.Coord()]
	return ok
}

// Cells returns a copy of the cells in order.
func (p *Path) Cells() []terrain.Cell {
	return append([]terrain.Cell(nil), p.cells...)
}

// Copy returns an independent path with the same cells.
func (p *Path) Copy() *Path {
	return NewPath(p.cells...)
}

func (p *Path) String() string {
	parts := make([]string, len(p.cells))
	for i, c := range p.cells {
		parts[i] = c.Coord().String()
	}
	return strings.Join(parts, " -> ")
}
