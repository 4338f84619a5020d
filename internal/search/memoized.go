package search

import (
	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

// Memoized prunes candidates that were already reached from a path at
// most as long as the current one.
//
// The record for a candidate is written before the walker moves onto it and
// holds the path length at that moment. Records survive backtracking.
type Memoized struct {
	base
	dist *distances
}

func NewMemoized(g *terrain.Grid, start terrain.Cell, options ...Option) *Memoized {
	opts := buildOptions(options)
	return &Memoized{
		base: newBase(KindMemoized, g, newFrame(g.Neighbors(start)), opts),
		dist: newDistances(),
	}
}

func (s *Memoized) Step(g *terrain.Grid, w *walker.Walker, budget int) {
	s.run(g, w, budget, s.admit, neighborFrame)
}

func (s *Memoized) admit(w *walker.Walker, c terrain.Cell) bool {
	n := w.Path().Len()
	if !simple(w, c) || !s.dist.improves(c.Coord(), n) {
		return false
	}
	s.dist.Set(c.Coord(), n)
	return true
}

// Distance returns the path length c was last recorded at.
func (s *Memoized) Distance(c terrain.Coord) (int, bool) {
	return s.dist.Get(c)
}

// Recorded is the number of coordinates in the distance map.
func (s *Memoized) Recorded() int {
	return s.dist.Len()
}
