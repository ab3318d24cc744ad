package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/tiempos/pkg/config"
	"github.com/ccollicutt/tiempos/pkg/parser"
)

// Analyzer reads a log source, extracts samples and averages them per category.
type Analyzer struct {
	categories []config.Category
	extractor  *parser.Extractor
	unknown    []string
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithCategoryFilter limits analysis to the named categories, keeping their
// configured order. Names matching no configured category make NewAnalyzer fail.
func WithCategoryFilter(names []string) AnalyzerOption {
	return func(a *Analyzer) {
		if len(names) == 0 {
			return
		}
		known := make(map[string]bool, len(a.categories))
		for _, cat := range a.categories {
			known[cat.Name] = true
		}
		keep := make(map[string]bool, len(names))
		for _, n := range names {
			if !known[n] {
				a.unknown = append(a.unknown, n)
				continue
			}
			keep[n] = true
		}
		filtered := make([]config.Category, 0, len(names))
		for _, cat := range a.categories {
			if keep[cat.Name] {
				filtered = append(filtered, cat)
			}
		}
		a.categories = filtered
	}
}

// NewAnalyzer creates a new analyzer from a validated configuration.
func NewAnalyzer(cfg *config.Config, opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{categories: cfg.Categories}

	for _, opt := range opts {
		opt(a)
	}

	if len(a.unknown) > 0 {
		return nil, fmt.Errorf("unknown categories: %s", strings.Join(a.unknown, ", "))
	}
	if len(a.categories) == 0 {
		return nil, fmt.Errorf("no categories to report (check --category filter)")
	}

	a.extractor = parser.NewExtractor(a.categories)
	return a, nil
}

// Categories returns the categories this analyzer reports, in order.
func (a *Analyzer) Categories() []config.Category {
	return a.categories
}

// Analyze reads the source and returns the per-category averages.
// A malformed value anywhere aborts the whole analysis.
func (a *Analyzer) Analyze(ctx context.Context, source parser.LogSource) (*AnalysisResult, error) {
	start := time.Now()

	text, err := source.Read(ctx)
	if err != nil {
		return nil, err
	}

	extraction, err := a.extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extracting timings: %w", err)
	}

	result := Aggregate(extraction)
	result.Metadata.StartTime = start
	result.Metadata.EndTime = time.Now()

	return result, nil
}

// Aggregate computes the averages of an extraction, one per sample set.
func Aggregate(extraction *parser.Extraction) *AnalysisResult {
	result := &AnalysisResult{
		Averages: make([]CategoryAverage, 0, len(extraction.Sets)),
		Metadata: AnalysisMetadata{
			Source:           extraction.Source,
			SamplesExtracted: extraction.Total(),
		},
	}

	for i := range extraction.Sets {
		set := &extraction.Sets[i]
		values := set.Values()

		avg := CategoryAverage{
			Category: set.Category,
			Label:    set.Label,
			Samples:  len(values),
			Mean:     Mean(values),
		}
		if len(values) > 0 {
			avg.Min = floats.Min(values)
			avg.Max = floats.Max(values)
		}

		result.Averages = append(result.Averages, avg)
	}

	return result
}

// Mean returns the arithmetic mean of values, or exactly 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
