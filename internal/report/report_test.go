package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillclimb/internal/terrain"
)

func TestWriteComparison(t *testing.T) {
	g, err := terrain.Parse("inline", "Sab\nedc\nfgE")
	require.NoError(t, err)
	best := []terrain.Cell{g.Start, g.Cell(1, 0), g.Cell(2, 0)}

	var buf bytes.Buffer
	err = WriteComparison(&buf, "tiny comparison", g, []Outcome{
		{Name: "naive", Examined: 120, Descents: 30, BestLength: 9},
		{Name: "heuristic", Examined: 40, Descents: 10, BestLength: 9},
	}, best)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>tiny comparison</title>")
	assert.Contains(t, html, "naive")
	assert.Contains(t, html, "heuristic")
	assert.Contains(t, html, "Height map")
	assert.Contains(t, html, "best path")
}

func TestWriteComparisonWithoutPath(t *testing.T) {
	g, err := terrain.Parse("inline", "SaE")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, "no path", g, nil, nil))
	assert.Contains(t, buf.String(), "best path 0 cells")
}
