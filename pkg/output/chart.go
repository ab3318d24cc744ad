package output

import (
	"context"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ccollicutt/tiempos/pkg/config"
)

// gridGray is the base color of the horizontal gridlines before alpha.
var gridGray = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// ChartRenderer draws the per-category averages as a bar chart.
type ChartRenderer struct {
	chart  config.ChartConfig
	colors map[string]color.Color
}

// NewChartRenderer creates a renderer using the chart style and the bar
// colors of validated categories.
func NewChartRenderer(chart config.ChartConfig, categories []config.Category) *ChartRenderer {
	colors := make(map[string]color.Color, len(categories))
	for i := range categories {
		colors[categories[i].Name] = categories[i].RGBA()
	}
	return &ChartRenderer{chart: chart, colors: colors}
}

// Plot builds the chart: one bar per category at x = 0..n-1, labeled
// below, with dashed horizontal gridlines only.
func (r *ChartRenderer) Plot(report *Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.chart.Title
	p.Y.Label.Text = r.chart.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = withAlpha(gridGray, r.chart.GridAlpha)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	n := len(report.Averages)
	width := vg.Length(r.chart.Width) * vg.Inch * 0.7 / vg.Length(n+1)
	labels := make([]string, 0, n)

	for i, avg := range report.Averages {
		bars, err := plotter.NewBarChart(plotter.Values{avg.Mean}, width)
		if err != nil {
			return nil, fmt.Errorf("creating bar for %s: %w", avg.Category, err)
		}
		bars.XMin = float64(i)
		bars.LineStyle.Width = 0
		if c, ok := r.colors[avg.Category]; ok {
			bars.Color = c
		}
		p.Add(bars)
		labels = append(labels, avg.Label)
	}

	p.NominalX(labels...)
	p.X.Min = -0.5
	p.X.Max = float64(n) - 0.5
	p.Y.Min = 0

	return p, nil
}

// Render draws the chart and writes it to path. The image format follows
// the file extension.
func (r *ChartRenderer) Render(ctx context.Context, report *Report, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := r.Plot(report)
	if err != nil {
		return err
	}

	w := vg.Length(r.chart.Width) * vg.Inch
	h := vg.Length(r.chart.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}

	return nil
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
