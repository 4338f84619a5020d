package terrain

import (
	"fmt"
	"strings"
)

const (
	// MaxHeight is the height of 'z' and of the end cell.
	MaxHeight = 25
	// OffGrid is the height reported for coordinates outside the grid.
	// No legal height can climb onto it.
	OffGrid = 1 << 16
)

// Coord is an (x, y) position; x grows east, y grows south.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is a position together with its height.
type Cell struct {
	X, Y   int
	Height int
}

func (c Cell) Coord() Coord {
	return Coord{c.X, c.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d h=%d)", c.X, c.Y, c.Height)
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// CanClimb reports whether a walker standing on from may step onto to.
func CanClimb(from, to Cell) bool {
	return to.Height-from.Height <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a rectangular height map with one start and one end cell.
type Grid struct {
	Width   int
	Height  int
	heights [][]int
	Start   Cell
	End     Cell
}

// NewGrid builds a grid from rows of heights. All rows must have the same
// length and start/end must lie inside the grid.
func NewGrid(rows [][]int, start, end Coord) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Width: len(rows[0]), Height: len(rows), heights: make([][]int, len(rows))}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y+1, len(row), g.Width)
		}
		g.heights[y] = append([]int(nil), row...)
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %v outside grid", ErrMissingStart, start)
	}
	if !g.InBounds(end.X, end.Y) {
		return nil, fmt.Errorf("%w: end %v outside grid", ErrMissingEnd, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: %v", ErrStartIsEnd, start)
	}
	g.Start = g.Cell(start.X, start.Y)
	g.End = g.Cell(end.X, end.Y)
	return g, nil
}

func (g *Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// Cell returns the cell at (x, y). Outside the grid it returns a synthetic
// cell at the same coordinates with height OffGrid.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{X: x, Y: y, Height: OffGrid}
	}
	return Cell{X: x, Y: y, Height: g.heights[y][x]}
}

// SetHeight overrides the height at (x, y), keeping Start and End in sync.
// Coordinates outside the grid are ignored.
func (g *Grid) SetHeight(x, y, h int) {
	if !g.InBounds(x, y) {
		return
	}
	g.heights[y][x] = h
	if g.Start.X == x && g.Start.Y == y {
		g.Start.Height = h
	}
	if g.End.X == x && g.End.Y == y {
		g.End.Height = h
	}
}

// Neighbors returns the north, south, west and east neighbors of c, in
// that order.
func (g *Grid) Neighbors(c Cell) [4]Cell {
	return [4]Cell{
		g.Cell(c.X, c.Y-1),
		g.Cell(c.X, c.Y+1),
		g.Cell(c.X-1, c.Y),
		g.Cell(c.X+1, c.Y),
	}
}

// Size is the number of in-bounds cells.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// ShortestPath runs a breadth-first search from Start to End under the
// climb rule and returns the cells of one shortest route, start first.
func (g *Grid) ShortestPath() ([]Cell, bool) {
	start := g.Start.Coord()
	queue := []Coord{start}
	visited := map[Coord]bool{start: true}
	prev := map[Coord]Coord{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == g.End.Coord() {
			path := []Cell{g.Cell(cur.X, cur.Y)}
			for p, ok := prev[cur]; ok; p, ok = prev[p] {
				path = append(path, g.Cell(p.X, p.Y))
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}
		from := g.Cell(cur.X, cur.Y)
		for _, n := range g.Neighbors(from) {
			nc := n.Coord()
			if visited[nc] || !CanClimb(from, n) {
				continue
			}
			visited[nc] = true
			prev[nc] = cur
			queue = append(queue, nc)
		}
	}
	return nil, false
}

// String renders the grid back into its text form.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteByte(g.Glyph(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Glyph returns the text character for (x, y).
func (g *Grid) Glyph(x, y int) byte {
	switch {
	case g.Start.X == x && g.Start.Y == y:
		return 'S'
	case g.End.X == x && g.End.Y == y:
		return 'E'
	}
	h := g.Cell(x, y).Height
	if h < 0 || h > MaxHeight {
		return '?'
	}
	return byte('a' + h)
}
