package search

import (
	"errors"
	"fmt"

	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

var ErrGridTooLarge = errors.New("grid too large to enumerate")

// FindAllPaths recursively collects every path from start to g.End that
// survives the same revisit pruning as Memoized, copying each one as it is
// found. Cost is exponential; grids with more cells than the configured
// MaxCells are refused. A simple path never has more cells than the grid,
// so the limit also bounds the recursion depth.
func FindAllPaths(g *terrain.Grid, start terrain.Cell, options ...Option) ([]*walker.Path, error) {
	opts := buildOptions(options)
	if g.Size() > opts.MaxCells {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrGridTooLarge, g.Size(), opts.MaxCells)
	}
	e := &enumerator{
		grid:   g,
		walker: walker.New(start),
		dist:   newDistances(),
		opts:   opts,
	}
	e.search()
	return e.paths, nil
}

type enumerator struct {
	grid   *terrain.Grid
	walker *walker.Walker
	dist   *distances
	paths  []*walker.Path
	opts   Options
}

func (e *enumerator) search() {
	pos, _ := e.walker.Position()
	if pos == e.grid.End {
		e.paths = append(e.paths, e.walker.Path().Copy())
		e.opts.Logger.Printf("enumerate: found path with length %d", e.walker.Path().Len())
		return
	}
	n := e.walker.Path().Len()
	for _, c := range e.grid.Neighbors(pos) {
		if !e.dist.improves(c.Coord(), n) || !simple(e.walker, c) {
			continue
		}
		e.dist.Set(c.Coord(), n)
		e.walker.Walk(c)
		e.search()
		e.walker.StepBack()
	}
}

// Shortest returns the shortest of paths, or nil if there are none.
func Shortest(paths []*walker.Path) *walker.Path {
	var best *walker.Path
	for _, p := range paths {
		if best == nil || p.Len() < best.Len() {
			best = p
		}
	}
	return best
}
