package output

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ccollicutt/tiempos/pkg/analyzer"
	"github.com/ccollicutt/tiempos/pkg/config"
)

func newTestRenderer(t *testing.T) *ChartRenderer {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return NewChartRenderer(cfg.Chart, cfg.Categories)
}

func TestChartRenderer_Plot(t *testing.T) {
	r := newTestRenderer(t)

	p, err := r.Plot(createTestReport())
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	if p.Title.Text != config.DefaultChartTitle {
		t.Errorf("Title = %q, want %q", p.Title.Text, config.DefaultChartTitle)
	}
	if p.Y.Label.Text != config.DefaultChartYLabel {
		t.Errorf("Y label = %q, want %q", p.Y.Label.Text, config.DefaultChartYLabel)
	}
	if p.X.Min != -0.5 || p.X.Max != 2.5 {
		t.Errorf("X range = [%v, %v], want [-0.5, 2.5]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 {
		t.Errorf("Y.Min = %v, want 0", p.Y.Min)
	}
}

func TestChartRenderer_Render(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "tiempos_promedio.png")

	if err := r.Render(context.Background(), createTestReport(), path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= bounds.Dy() {
		t.Errorf("chart is %dx%d, want landscape", bounds.Dx(), bounds.Dy())
	}
}

func TestChartRenderer_Render_AllEmpty(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "empty.png")

	report := &Report{
		Averages: []analyzer.CategoryAverage{
			{Category: "sequential", Label: "Secuencial"},
			{Category: "openmp", Label: "OpenMP"},
			{Category: "cuda", Label: "CUDA"},
		},
	}

	if err := r.Render(context.Background(), report, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart not written: %v", err)
	}
}

func TestChartRenderer_Render_BadPath(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "missing", "chart.png")

	if err := r.Render(context.Background(), createTestReport(), path); err == nil {
		t.Error("Render() expected error for unwritable path")
	}
}

func TestChartRenderer_Render_Cancelled(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := r.Render(ctx, createTestReport(), path); err == nil {
		t.Error("Render() expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("chart should not be written after cancellation")
	}
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(gridGray, 0.6)
	if c.A != 153 {
		t.Errorf("A = %d, want 153", c.A)
	}
	if c.R != gridGray.R {
		t.Errorf("R = %d, want %d", c.R, gridGray.R)
	}
}
