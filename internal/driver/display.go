package driver

import (
	"bufio"
	"fmt"
	"io"

	"hillclimb/internal/terrain"
)

const (
	glyphWalker = '@'
	glyphWalked = '*'
	glyphBest   = '+'
)

// Display clears the terminal and draws the grid with the walker, its path
// and the best path so far.
func (s *Session) Display(out io.Writer, snap Snapshot) {
	w := bufio.NewWriter(out)
	fmt.Fprint(w, "\033[H\033[2J")
	fmt.Fprint(w, Render(s.Grid, snap))
	best := "none"
	if len(snap.Best) > 0 {
		best = fmt.Sprint(len(snap.Best))
	}
	fmt.Fprintf(w, "%s tick=%d depth=%d examined=%d best=%s\n",
		s.Strategy.Kind(), snap.Tick, snap.Depth, snap.Stats.Examined, best)
	w.Flush()
}

// Render draws one glyph per cell: '@' for the walker, '*' for cells on its
// path, '+' for cells on the best path, and the height letter otherwise.
func Render(g *terrain.Grid, snap Snapshot) string {
	walked := make(map[terrain.Coord]bool, len(snap.Path))
	for _, c := range snap.Path {
		walked[c.Coord()] = true
	}
	best := make(map[terrain.Coord]bool, len(snap.Best))
	for _, c := range snap.Best {
		best[c.Coord()] = true
	}

	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := terrain.Coord{X: x, Y: y}
			switch {
			case len(snap.Path) > 0 && snap.Position.Coord() == c:
				buf = append(buf, glyphWalker)
			case walked[c]:
				buf = append(buf, glyphWalked)
			case best[c]:
				buf = append(buf, glyphBest)
			default:
				buf = append(buf, g.Glyph(x, y))
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
