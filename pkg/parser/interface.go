package parser

import "context"

// LogSource provides the text of a benchmark log.
type LogSource interface {
	// Read returns the complete log text.
	Read(ctx context.Context) (*LogText, error)
}
