package output

import (
	"context"
	"io"
)

// Formatter renders timing reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds sample counts and ranges.
	Verbose bool

	// Quiet drops the heading and prints only the averages.
	Quiet bool
}
