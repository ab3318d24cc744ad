// Package parser provides log file reading and timing extraction.
package parser

// LogText is the full content of a benchmark log, read once per run.
type LogText struct {
	// Path is the file the content was read from.
	Path string

	// Content is the raw file text.
	Content string
}

// Sample is a single timing measurement in seconds.
type Sample struct {
	// Category is the name of the category the block belongs to.
	Category string

	// Value is the total in seconds, after unit normalization.
	Value float64

	// Raw is the captured text before conversion.
	Raw string

	// LineNum is the 1-based line number of the total line.
	LineNum int
}

// SampleSet holds the samples of one category in document order.
type SampleSet struct {
	Category string
	Label    string
	Samples  []Sample
}

// Values returns the sample values in document order.
func (s *SampleSet) Values() []float64 {
	values := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		values[i] = sample.Value
	}
	return values
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.Samples)
}

// Extraction is the result of scanning a log: one SampleSet per category,
// in category order.
type Extraction struct {
	Source string
	Sets   []SampleSet
}

// Set returns the SampleSet for the named category, or nil.
func (e *Extraction) Set(category string) *SampleSet {
	for i := range e.Sets {
		if e.Sets[i].Category == category {
			return &e.Sets[i]
		}
	}
	return nil
}

// Total returns the number of samples across all categories.
func (e *Extraction) Total() int {
	total := 0
	for i := range e.Sets {
		total += e.Sets[i].Len()
	}
	return total
}
