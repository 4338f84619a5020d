package search

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is a resumable search. Step performs at most budget candidate
// examinations on w's path and returns early after descending one level,
// after visiting the goal, or once the search is exhausted. Calling Step on
// an exhausted strategy does nothing.
type Strategy interface {
	Step(g *terrain.Grid, w *walker.Walker, budget int)
	// Best returns a copy of the shortest path found so far.
	Best() (*walker.Path, bool)
	Exhausted() bool
	// Depth is the number of frames on the stack. While the search is
	// running it equals the walker's path length.
	Depth() int
	Stats() Stats
	Kind() Kind
}

// Stats counts the work a strategy has done.
type Stats struct {
	Calls        int // Step invocations
	Examined     int // candidates popped from a frame
	Descents     int // frames pushed
	Backtracks   int // frames exhausted
	Goals        int // arrivals at the end cell
	Improvements int // arrivals that shortened the best path
}

// Options configures strategies and the enumerator.
type Options struct {
	Logger   *log.Logger
	MaxCells int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets where progress lines are written.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxCells caps the number of grid cells FindAllPaths accepts.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.MaxCells = n }
}

// DefaultMaxCells is the largest grid FindAllPaths enumerates by default.
const DefaultMaxCells = 4096

func buildOptions(options []Option) Options {
	opts := Options{
		Logger:   log.New(io.Discard, "", 0),
		MaxCells: DefaultMaxCells,
	}
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return opts
}

// Kind names a stepper.
type Kind string

const (
	KindNaive     Kind = "naive"
	KindMemoized  Kind = "memoized"
	KindHeuristic Kind = "heuristic"
)

// Kinds lists the steppers from slowest to fastest.
func Kinds() []Kind {
	return []Kind{KindNaive, KindMemoized, KindHeuristic}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// New builds the stepper named by kind, starting from start.
func New(kind Kind, g *terrain.Grid, start terrain.Cell, options ...Option) (Strategy, error) {
	switch kind {
	case KindNaive:
		return NewNaive(g, start, options...), nil
	case KindMemoized:
		return NewMemoized(g, start, options...), nil
	case KindHeuristic:
		return NewHeuristic(g, start, options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
}

// base is the frame machinery shared by the steppers.
type base struct {
	kind   Kind
	goal   terrain.Cell
	stack  frameStack
	best   *walker.Path
	stats  Stats
	logger *log.Logger
}

func newBase(kind Kind, g *terrain.Grid, root frame, opts Options) base {
	return base{
		kind:   kind,
		goal:   g.End,
		stack:  frameStack{root},
		logger: opts.Logger,
	}
}

func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) Best() (*walker.Path, bool) {
	if b.best == nil {
		return nil, false
	}
	return b.best.Copy(), true
}

func (b *base) Exhausted() bool {
	return len(b.stack) == 0
}

func (b *base) Stats() Stats {
	return b.stats
}

func (b *base) Depth() int {
	return len(b.stack)
}

// bestLen returns the length of the best path, or 0 when there is none.
func (b *base) bestLen() int {
	if b.best == nil {
		return 0
	}
	return b.best.Len()
}

// run drives one Step. admit decides whether the walker may take the
// candidate (and may record it); expand builds the frame for a freshly
// entered cell.
func (b *base) run(
	g *terrain.Grid,
	w *walker.Walker,
	budget int,
	admit func(w *walker.Walker, c terrain.Cell) bool,
	expand func(g *terrain.Grid, w *walker.Walker, c terrain.Cell) frame,
) {
	if b.Exhausted() || budget <= 0 {
		return
	}
	b.stats.Calls++
	for budget > 0 {
		top := b.stack.top()
		if top == nil {
			return
		}
		if top.empty() {
			b.stack.pop()
			b.stats.Backtracks++
			// Popping the root frame leaves the start cell too, so an
			// exhausted search ends with an empty path.
			w.StepBack()
			continue
		}

		candidate := top.pop()
		budget--
		b.stats.Examined++
		if !admit(w, candidate) {
			continue
		}

		w.Walk(candidate)
		if candidate == b.goal {
			b.reachGoal(w)
			w.StepBack()
			return
		}
		b.stack.push(expand(g, w, candidate))
		b.stats.Descents++
		return
	}
}

func (b *base) reachGoal(w *walker.Walker) {
	b.stats.Goals++
	n := w.Path().Len()
	if b.best != nil && b.best.Len() <= n {
		return
	}
	b.best = w.Path().Copy()
	b.stats.Improvements++
	b.logger.Printf("%s: found path with length %d", b.kind, n)
}

// simple is the rule every stepper shares: climbable and not yet on the
// path.
func simple(w *walker.Walker, c terrain.Cell) bool {
	return w.CanWalk(c) && !w.HasWalked(c)
}

func neighborFrame(g *terrain.Grid, _ *walker.Walker, c terrain.Cell) frame {
	return newFrame(g.Neighbors(c))
}
