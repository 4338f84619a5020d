package driver

import (
	"context"
	"io"
	"log"
	"time"

	"hillclimb/internal/search"
	"hillclimb/internal/terrain"
	"hillclimb/internal/walker"
)

// Session ties a strategy to the grid and the walker it mutates. A walker
// must not be shared between sessions.
type Session struct {
	Grid     *terrain.Grid
	Walker   *walker.Walker
	Strategy search.Strategy
}

// NewSession builds a strategy of the given kind with a fresh walker on the
// grid's start cell.
func NewSession(g *terrain.Grid, kind search.Kind, options ...search.Option) (*Session, error) {
	s, err := search.New(kind, g, g.Start, options...)
	if err != nil {
		return nil, err
	}
	return &Session{Grid: g, Walker: walker.New(g.Start), Strategy: s}, nil
}

// Snapshot is what a visualizer polls after each tick.
type Snapshot struct {
	Tick     int
	Position terrain.Cell
	Path     []terrain.Cell
	Best     []terrain.Cell
	Depth    int
	Done     bool
	Stats    search.Stats
}

// Snapshot captures the current walker and strategy state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Path:  s.Walker.Path().Cells(),
		Depth: s.Strategy.Depth(),
		Done:  s.Strategy.Exhausted(),
		Stats: s.Strategy.Stats(),
	}
	snap.Position, _ = s.Walker.Position()
	if best, ok := s.Strategy.Best(); ok {
		snap.Best = best.Cells()
	}
	return snap
}

// Tick calls Step stepsPerTick times with the given budget.
func (s *Session) Tick(stepsPerTick, budget int) {
	for i := 0; i < stepsPerTick && !s.Strategy.Exhausted(); i++ {
		s.Strategy.Step(s.Grid, s.Walker, budget)
	}
}

// Options controls Run.
type Options struct {
	StepsPerTick int
	Budget       int
	TickDelay    time.Duration
	MaxTicks     int       // 0 means no limit
	Display      io.Writer // nil disables rendering
	Logger       *log.Logger
}

// Result summarises a finished or interrupted run.
type Result struct {
	Kind      search.Kind
	Ticks     int
	Exhausted bool
	Best      []terrain.Cell
	Stats     search.Stats
	Elapsed   time.Duration
}

// Found reports whether a path to the end cell was discovered.
func (r Result) Found() bool {
	return len(r.Best) > 0
}

// Run ticks the session until the strategy is exhausted, MaxTicks is hit,
// or ctx is cancelled. Partial state stays valid in every case.
func (s *Session) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.StepsPerTick <= 0 {
		opts.StepsPerTick = 1
	}
	if opts.Budget <= 0 {
		opts.Budget = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	start := time.Now()
	ticks := 0
	var err error
	for !s.Strategy.Exhausted() {
		if opts.MaxTicks > 0 && ticks >= opts.MaxTicks {
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}
		s.Tick(opts.StepsPerTick, opts.Budget)
		ticks++
		if opts.Display != nil {
			snap := s.Snapshot()
			snap.Tick = ticks
			s.Display(opts.Display, snap)
		}
		if opts.TickDelay > 0 && !s.Strategy.Exhausted() {
			select {
			case <-ctx.Done():
			case <-time.After(opts.TickDelay):
			}
		}
	}

	res := Result{
		Kind:      s.Strategy.Kind(),
		Ticks:     ticks,
		Exhausted: s.Strategy.Exhausted(),
		Stats:     s.Strategy.Stats(),
		Elapsed:   time.Since(start),
	}
	if best, ok := s.Strategy.Best(); ok {
		res.Best = best.Cells()
	}
	if res.Exhausted {
		opts.Logger.Printf("%s: done in %dms", res.Kind, res.Elapsed.Milliseconds())
	}
	return res, err
}
