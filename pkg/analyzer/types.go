// Package analyzer aggregates extracted timing samples into per-category averages.
package analyzer

import "time"

// CategoryAverage is the aggregate of one category's samples.
type CategoryAverage struct {
	// Category is the stable category name.
	Category string `json:"category"`

	// Label is the display label.
	Label string `json:"label"`

	// Samples is the number of blocks found for the category.
	Samples int `json:"samples"`

	// Mean is the arithmetic mean in seconds, 0 when there are no samples.
	Mean float64 `json:"mean"`

	// Min and Max are 0 when there are no samples.
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IsEmpty returns true if no samples were found for the category.
func (c *CategoryAverage) IsEmpty() bool {
	return c.Samples == 0
}

// AnalysisResult contains the complete aggregation output.
type AnalysisResult struct {
	// Averages holds one entry per category, in category order.
	Averages []CategoryAverage

	// Metadata provides context about the run.
	Metadata AnalysisMetadata
}

// AnalysisMetadata provides context about the analysis run.
type AnalysisMetadata struct {
	// Source is the log file that was read.
	Source string

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time

	// SamplesExtracted is the number of samples across all categories.
	SamplesExtracted int
}

// MissingCategories returns the names of categories without samples.
func (r *AnalysisResult) MissingCategories() []string {
	var missing []string
	for i := range r.Averages {
		if r.Averages[i].IsEmpty() {
			missing = append(missing, r.Averages[i].Category)
		}
	}
	return missing
}

// Average returns the entry for the named category, or nil.
func (r *AnalysisResult) Average(category string) *CategoryAverage {
	for i := range r.Averages {
		if r.Averages[i].Category == category {
			return &r.Averages[i]
		}
	}
	return nil
}
