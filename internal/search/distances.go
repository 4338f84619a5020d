package search

import (
	"fmt"

	"hillclimb/internal/terrain"
)

// distances maps a coordinate to the shortest path length it was reached
// from so far.
type distances struct {
	lengths map[terrain.Coord]int
}

func newDistances() *distances {
	return &distances{lengths: make(map[terrain.Coord]int)}
}

func (d *distances) Get(c terrain.Coord) (int, bool) {
	n, ok := d.lengths[c]
	return n, ok
}

func (d *distances) Set(c terrain.Coord, n int) {
	d.lengths[c] = n
}

// improves reports whether reaching c from a path of length n beats the
// record.
func (d *distances) improves(c terrain.Coord, n int) bool {
	rec, ok := d.lengths[c]
	return !ok || rec > n
}

// lower records n for c if it is smaller than the current record.
func (d *distances) lower(c terrain.Coord, n int) {
	if d.improves(c, n) {
		d.lengths[c] = n
	}
}

func (d *distances) Len() int {
	return len(d.lengths)
}

func (d *distances) String() string {
	return fmt.Sprint(d.lengths)
}
