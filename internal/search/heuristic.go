package search

import (
	"cmp"
	"slices"

	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

// Heuristic extends Memoized with three refinements:
//
//  1. Frames are ordered so the candidate closest to the goal (Manhattan
//     distance) is popped first.
//  2. Once a best path exists, candidates are dropped while the current
//     path is already at least as long as it.
//  3. When a cell is expanded, every neighbor the walker could climb onto
//     gets its distance record lowered to the length it would arrive with,
//     before it is visited.
//
// None of these lose the optimum; they only reduce the examined count.
type Heuristic struct {
	Memoized
}

func NewHeuristic(g *terrain.Grid, start terrain.Cell, options ...Option) *Heuristic {
	opts := buildOptions(options)
	root := towardGoal(g.Neighbors(start), g.End.Coord())
	return &Heuristic{Memoized{
		base: newBase(KindHeuristic, g, root, opts),
		dist: newDistances(),
	}}
}

func (s *Heuristic) Step(g *terrain.Grid, w *walker.Walker, budget int) {
	s.run(g, w, budget, s.admit, s.expand)
}

func (s *Heuristic) admit(w *walker.Walker, c terrain.Cell) bool {
	if s.best != nil && w.Path().Len() >= s.bestLen() {
		return false
	}
	return s.Memoized.admit(w, c)
}

func (s *Heuristic) expand(g *terrain.Grid, w *walker.Walker, c terrain.Cell) frame {
	f := towardGoal(g.Neighbors(c), s.goal.Coord())
	arrival := w.Path().Len() + 1
	for _, n := range f {
		if w.CanWalk(n) {
			s.dist.lower(n.Coord(), arrival)
		}
	}
	return f
}

// towardGoal orders cells by descending distance to goal so that popping
// from the end yields the closest one first. Ties keep neighbor order.
func towardGoal(cells [4]terrain.Cell, goal terrain.Coord) frame {
	f := newFrame(cells)
	slices.SortStableFunc(f, func(a, b terrain.Cell) int {
		return cmp.Compare(terrain.Manhattan(b.Coord(), goal), terrain.Manhattan(a.Coord(), goal))
	})
	return f
}
