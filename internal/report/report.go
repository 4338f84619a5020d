package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hillclimb/internal/terrain"
)

// viridis, matching the original height colouring.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Outcome is one strategy's result in a comparison.
type Outcome struct {
	Name       string
	Examined   int
	Descents   int
	BestLength int // 0 when no path was found
}

// WriteComparison renders an HTML page with a bar chart of the work each
// strategy did and a height map of g with best drawn over it.
func WriteComparison(w io.Writer, title string, g *terrain.Grid, outcomes []Outcome, best []terrain.Cell) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(workChart(title, outcomes), heightMap(g, best))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}
	return nil
}

func workChart(title string, outcomes []Outcome) *charts.Bar {
	names := make([]string, 0, len(outcomes))
	examined := make([]opts.BarData, 0, len(outcomes))
	descents := make([]opts.BarData, 0, len(outcomes))
	for _, o := range outcomes {
		names = append(names, o.Name)
		examined = append(examined, opts.BarData{Value: o.Examined})
		descents = append(descents, opts.BarData{Value: o.Descents})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "candidates examined and frames pushed per strategy"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
	)
	bar.SetXAxis(names).
		AddSeries("examined", examined, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"})).
		AddSeries("descents", descents, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

func heightMap(g *terrain.Grid, best []terrain.Cell) *charts.Scatter {
	cells := make([]opts.ScatterData, 0, g.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			// y is flipped so row 0 is drawn at the top.
			cells = append(cells, opts.ScatterData{Value: []interface{}{x, g.Height - 1 - y, g.Cell(x, y).Height}})
		}
	}
	path := make([]opts.ScatterData, 0, len(best))
	for _, c := range best {
		path = append(path, opts.ScatterData{Value: []interface{}{c.X, g.Height - 1 - c.Y, c.Height}})
	}

	size := 24
	if g.Width > 40 || g.Height > 40 {
		size = 8
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Height map", Subtitle: fmt.Sprintf("%dx%d, best path %d cells", g.Width, g.Height, len(best))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -1, Max: g.Width, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -1, Max: g.Height, Name: "y"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        terrain.MaxHeight,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("height", cells, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: size}))
	scatter.AddSeries("best path", path,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: size / 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ffffff", BorderColor: "#d62728"}),
	)
	return scatter
}
