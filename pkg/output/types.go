// Package output provides formatting and chart rendering for timing reports.
package output

import (
	"time"

	"github.com/ccollicutt/tiempos/pkg/analyzer"
)

// Report is the complete timing report.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Averages holds one entry per category, in report order.
	Averages []analyzer.CategoryAverage `json:"averages"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// CategoriesReported is the number of categories in the report.
	CategoriesReported int `json:"categories_reported"`

	// CategoriesMissing is the number of categories without samples.
	CategoriesMissing int `json:"categories_missing"`

	// SamplesExtracted is the total number of blocks found.
	SamplesExtracted int `json:"samples_extracted"`
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the style configuration used, empty for defaults.
	ConfigFile string `json:"config_file,omitempty"`

	// Source is the log file that was read.
	Source string `json:"source"`

	// ChartFile is where the chart was written, empty if not rendered.
	ChartFile string `json:"chart_file,omitempty"`

	// AnalyzedAt is when the analysis finished.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from analysis results.
func NewReport(result *analyzer.AnalysisResult, configFile string) *Report {
	return &Report{
		Averages: result.Averages,
		Metadata: Metadata{
			ConfigFile: configFile,
			Source:     result.Metadata.Source,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			CategoriesReported: len(result.Averages),
			CategoriesMissing:  len(result.MissingCategories()),
			SamplesExtracted:   result.Metadata.SamplesExtracted,
		},
	}
}

// HasMissing returns true if any category had no samples.
func (r *Report) HasMissing() bool {
	return r.Summary.CategoriesMissing > 0
}
