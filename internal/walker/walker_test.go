package walker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillclimb/internal/terrain"
)

func cell(x, y, h int) terrain.Cell {
	return terrain.Cell{X: x, Y: y, Height: h}
}

func TestNewWalkerStandsOnStart(t *testing.T) {
	start := cell(0, 0, 0)
	w := New(start)

	pos, ok := w.Position()
	require.True(t, ok)
	assert.Equal(t, start, pos)
	assert.Equal(t, 1, w.Path().Len())
	assert.True(t, w.HasWalked(start))
}

func TestCanWalk(t *testing.T) {
	w := New(cell(0, 0, 3))

	assert.True(t, w.CanWalk(cell(1, 0, 4)))
	assert.True(t, w.CanWalk(cell(1, 0, 3)))
	assert.True(t, w.CanWalk(cell(1, 0, 0)), "descending has no limit")
	assert.False(t, w.CanWalk(cell(1, 0, 5)))
	assert.False(t, w.CanWalk(cell(-1, 0, terrain.OffGrid)))
}

func TestWalkAndStepBack(t *testing.T) {
	w := New(cell(0, 0, 0))
	require.True(t, w.Walk(cell(1, 0, 1)))
	require.True(t, w.Walk(cell(2, 0, 2)))

	pos, _ := w.Position()
	assert.Equal(t, cell(2, 0, 2), pos)
	assert.Equal(t, 3, w.Path().Len())

	assert.False(t, w.Walk(cell(1, 0, 1)), "revisits are refused")
	assert.Equal(t, 3, w.Path().Len())

	w.StepBack()
	pos, _ = w.Position()
	assert.Equal(t, cell(1, 0, 1), pos)
	assert.False(t, w.HasWalked(cell(2, 0, 2)))
}

func TestStepBackOnEmptyPath(t *testing.T) {
	w := New(cell(0, 0, 0))
	w.StepBack()
	w.StepBack()

	_, ok := w.Position()
	assert.False(t, ok)
	assert.Equal(t, 0, w.Path().Len())
	assert.False(t, w.CanWalk(cell(1, 0, 0)))
}

func TestPathCopyIsIndependent(t *testing.T) {
	p := NewPath(cell(0, 0, 0), cell(1, 0, 1))
	cp := p.Copy()

	p.Add(cell(2, 0, 2))
	p.RemoveLast()
	p.RemoveLast()

	assert.Equal(t, 2, cp.Len())
	want := []terrain.Cell{cell(0, 0, 0), cell(1, 0, 1)}
	if diff := cmp.Diff(want, cp.Cells()); diff != "" {
		t.Fatalf("copy changed (-want +got):\n%s", diff)
	}
	assert.True(t, cp.Contains(cell(1, 0, 1)))
	assert.False(t, p.Contains(cell(1, 0, 1)))
}

func TestNewPathDropsDuplicates(t *testing.T) {
	p := NewPath(cell(0, 0, 0), cell(1, 0, 0), cell(0, 0, 0))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "(0,0) -> (1,0)", p.String())
}
