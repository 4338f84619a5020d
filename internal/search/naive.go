package search

import (
	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

// Naive tries every simple path. Its cost is exponential in the grid size;
// it exists as the baseline the pruned steppers are measured against.
type Naive struct {
	base
}

func NewNaive(g *terrain.Grid, start terrain.Cell, options ...Option) *Naive {
	opts := buildOptions(options)
	return &Naive{base: newBase(KindNaive, g, newFrame(g.Neighbors(start)), opts)}
}

func (s *Naive) Step(g *terrain.Grid, w *walker.Walker, budget int) {
	s.run(g, w, budget, simple, neighborFrame)
}
