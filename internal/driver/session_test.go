package driver

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillclimb/internal/search"
	"hillclimb/internal/terrain"
)

func sample(t *testing.T) *terrain.Grid {
	t.Helper()
	g, err := terrain.LoadGrid(filepath.Join("..", "terrain", "testdata", "sample.txt"))
	require.NoError(t, err)
	return g
}

func TestRunToExhaustion(t *testing.T) {
	for _, kind := range search.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := NewSession(sample(t), kind)
			require.NoError(t, err)

			res, err := s.Run(context.Background(), Options{StepsPerTick: 500, Budget: 1})
			require.NoError(t, err)
			assert.True(t, res.Exhausted)
			assert.True(t, res.Found())
			assert.Len(t, res.Best, 32)
			assert.Equal(t, kind, res.Kind)
			assert.Positive(t, res.Ticks)
		})
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	s, err := NewSession(sample(t), search.KindNaive)
	require.NoError(t, err)

	res, err := s.Run(context.Background(), Options{StepsPerTick: 1, MaxTicks: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Ticks)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 10, res.Stats.Calls)

	// The interrupted search resumes where it stopped.
	res, err = s.Run(context.Background(), Options{StepsPerTick: 1000})
	require.NoError(t, err)
	assert.True(t, res.Exhausted)
	assert.Len(t, res.Best, 32)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	s, err := NewSession(sample(t), search.KindHeuristic)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx, Options{StepsPerTick: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Ticks)
	assert.False(t, res.Exhausted)

	snap := s.Snapshot()
	assert.Equal(t, s.Grid.Start, snap.Position)
	assert.Equal(t, 1, snap.Depth)
}

func TestRunLogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSession(sample(t), search.KindHeuristic)
	require.NoError(t, err)

	_, err = s.Run(context.Background(), Options{StepsPerTick: 1000, Logger: log.New(&buf, "", 0)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "heuristic: done in "), buf.String())
}

func TestNewSessionUnknownKind(t *testing.T) {
	_, err := NewSession(sample(t), search.Kind("greedy"))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestSnapshotTracksWalker(t *testing.T) {
	s, err := NewSession(sample(t), search.KindNaive)
	require.NoError(t, err)

	s.Tick(3, 1)
	snap := s.Snapshot()
	assert.Len(t, snap.Path, snap.Depth)
	assert.Equal(t, snap.Path[len(snap.Path)-1], snap.Position)
	assert.Empty(t, snap.Best)
	assert.False(t, snap.Done)
}

func TestRender(t *testing.T) {
	g, err := terrain.Parse("row", "SaE")
	require.NoError(t, err)
	g.SetHeight(2, 0, 0)

	s, err := NewSession(g, search.KindMemoized)
	require.NoError(t, err)
	assert.Equal(t, "@aE\n", Render(g, s.Snapshot()))

	s.Tick(1, 1)
	assert.Equal(t, "*@E\n", Render(g, s.Snapshot()))

	_, err = s.Run(context.Background(), Options{StepsPerTick: 100})
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Empty(t, snap.Path, "an exhausted search leaves the walker with no path")
	assert.Equal(t, "+++\n", Render(g, snap))
}

func TestDisplayWritesStatusLine(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(sample(t), search.KindHeuristic)
	require.NoError(t, err)

	_, err = s.Run(context.Background(), Options{StepsPerTick: 1000, Display: &out})
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "\033[H\033[2J"))
	assert.Contains(t, text, "heuristic tick=1 depth=0 examined=204 best=32\n")
}
