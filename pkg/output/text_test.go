package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/tiempos/pkg/analyzer"
)

func createTestReport() *Report {
	return &Report{
		Summary: Summary{
			CategoriesReported: 3,
			CategoriesMissing:  1,
			SamplesExtracted:   3,
		},
		Averages: []analyzer.CategoryAverage{
			{Category: "sequential", Label: "Secuencial", Samples: 1, Mean: 2.5, Min: 2.5, Max: 2.5},
			{Category: "openmp", Label: "OpenMP", Samples: 2, Mean: 2, Min: 1, Max: 3},
			{Category: "cuda", Label: "CUDA"},
		},
		Metadata: Metadata{
			Source:     "times.txt",
			ChartFile:  "tiempos_promedio.png",
			AnalyzedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Duration:   3 * time.Millisecond,
		},
	}
}

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Promedios de ejecución (segundos):\n" +
		"Secuencial: 2.500\n" +
		"OpenMP: 2.000\n" +
		"CUDA: 0.000\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true, Verbose: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Secuencial: 2.500\nOpenMP: 2.000\nCUDA: 0.000\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"OpenMP: 2 sample(s), min 1.000, max 3.000",
		"CUDA: no samples",
		"Samples extracted: 3",
		"Chart: tiempos_promedio.png",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q", want)
		}
	}
}

func TestTextFormatter_Rounding(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})
	report := &Report{
		Averages: []analyzer.CategoryAverage{
			{Label: "CUDA", Samples: 1, Mean: 1.2345},
		},
	}

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "CUDA: 1.234\n" && buf.String() != "CUDA: 1.235\n" {
		t.Errorf("Format() = %q, want three decimals", buf.String())
	}
}

func TestNewReport(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	result := &analyzer.AnalysisResult{
		Averages: []analyzer.CategoryAverage{
			{Category: "sequential", Samples: 2, Mean: 1},
			{Category: "cuda"},
		},
		Metadata: analyzer.AnalysisMetadata{
			Source:           "times.txt",
			StartTime:        start,
			EndTime:          start.Add(time.Second),
			SamplesExtracted: 2,
		},
	}

	report := NewReport(result, "style.yaml")

	if report.Summary.CategoriesReported != 2 {
		t.Errorf("CategoriesReported = %d, want 2", report.Summary.CategoriesReported)
	}
	if report.Summary.CategoriesMissing != 1 {
		t.Errorf("CategoriesMissing = %d, want 1", report.Summary.CategoriesMissing)
	}
	if !report.HasMissing() {
		t.Error("HasMissing() = false, want true")
	}
	if report.Metadata.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", report.Metadata.Duration)
	}
	if report.Metadata.ConfigFile != "style.yaml" {
		t.Errorf("ConfigFile = %q, want style.yaml", report.Metadata.ConfigFile)
	}
}
