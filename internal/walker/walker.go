package walker

import (
	"fmt"

	"hillclimb/internal/terrain"
)

// Walker is a cursor over a Path. Its position is always the last cell of
// the path.
type Walker struct {
	path *Path
}

// New returns a walker standing on start with a path of length 1.
func New(start terrain.Cell) *Walker {
	return &Walker{path: NewPath(start)}
}

// Position returns the current cell; ok is false once the path is empty.
func (w *Walker) Position() (terrain.Cell, bool) {
	return w.path.Last()
}

// CanWalk reports whether candidate is at most one step higher than the
// current position.
func (w *Walker) CanWalk(candidate terrain.Cell) bool {
	pos, ok := w.Position()
	if !ok {
		return false
	}
	return terrain.CanClimb(pos, candidate)
}

// HasWalked reports whether cell is already on the path.
func (w *Walker) HasWalked(cell terrain.Cell) bool {
	return w.path.Contains(cell)
}

// Walk moves onto candidate. It refuses cells already on the path.
func (w *Walker) Walk(candidate terrain.Cell) bool {
	return w.path.Add(candidate)
}

// StepBack undoes the last Walk. It is a no-op on an empty path.
func (w *Walker) StepBack() {
	w.path.RemoveLast()
}

// Path returns the walker's own path. Callers must not mutate it.
func (w *Walker) Path() *Path {
	return w.path
}

func (w *Walker) String() string {
	pos, ok := w.Position()
	if !ok {
		return "walker(nowhere)"
	}
	return fmt.Sprintf("walker%v len=%d", pos, w.path.Len())
}
