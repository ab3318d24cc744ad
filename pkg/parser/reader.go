package parser

import (
	"context"
	"fmt"
	"os"
)

// FileSource implements LogSource for a single log file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a LogSource that reads the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path this source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Read loads the whole file into memory.
func (s *FileSource) Read(ctx context.Context) (*LogText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- fixed benchmark log path
	if err != nil {
		return nil, fmt.Errorf("reading log file %s: %w", s.path, err)
	}

	return &LogText{Path: s.path, Content: string(data)}, nil
}

// StringSource implements LogSource over in-memory text.
type StringSource struct {
	name    string
	content string
}

// NewStringSource creates a LogSource returning content as if read from name.
func NewStringSource(name, content string) *StringSource {
	return &StringSource{name: name, content: content}
}

// Read returns the in-memory text.
func (s *StringSource) Read(ctx context.Context) (*LogText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &LogText{Path: s.name, Content: s.content}, nil
}
