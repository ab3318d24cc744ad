package output

import (
	"context"
	"fmt"
	"io"
)

// Heading is printed above the averages.
const Heading = "Promedios de ejecución (segundos):"

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text: an optional heading, then one
// "<label>: <mean>" line per category with three decimals.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !f.opts.Quiet {
		if _, err := fmt.Fprintln(w, Heading); err != nil {
			return err
		}
	}

	for _, avg := range report.Averages {
		if _, err := fmt.Fprintf(w, "%s: %.3f\n", avg.Label, avg.Mean); err != nil {
			return err
		}
	}

	if f.opts.Verbose && !f.opts.Quiet {
		f.formatDetails(report, w)
	}

	return nil
}

func (f *TextFormatter) formatDetails(report *Report, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Source: %s\n", report.Metadata.Source)
	for _, avg := range report.Averages {
		if avg.IsEmpty() {
			fmt.Fprintf(w, "  %s: no samples\n", avg.Label)
			continue
		}
		fmt.Fprintf(w, "  %s: %d sample(s), min %.3f, max %.3f\n",
			avg.Label, avg.Samples, avg.Min, avg.Max)
	}
	fmt.Fprintf(w, "Samples extracted: %d\n", report.Summary.SamplesExtracted)
	if report.Metadata.ChartFile != "" {
		fmt.Fprintf(w, "Chart: %s\n", report.Metadata.ChartFile)
	}
	fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
}
