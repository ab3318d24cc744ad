package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ccollicutt/tiempos/pkg/config"
)

// ErrParse is returned when a captured total is not a number.
var ErrParse = errors.New("malformed timing value")

// Extractor scans log text for timing blocks of each configured category.
type Extractor struct {
	categories []config.Category
}

// NewExtractor creates an Extractor for validated categories.
// Categories must have passed config.Validate so their patterns are compiled.
func NewExtractor(categories []config.Category) *Extractor {
	return &Extractor{categories: categories}
}

// Extract collects one SampleSet per category, in category order.
// Each category is an independent scan over the whole text. A capture that
// does not parse as a float aborts the extraction; no partial result is returned.
func (e *Extractor) Extract(ctx context.Context, text *LogText) (*Extraction, error) {
	result := &Extraction{
		Source: text.Path,
		Sets:   make([]SampleSet, 0, len(e.categories)),
	}

	lines := newLineIndex(text.Content)

	for i := range e.categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		set, err := e.extractCategory(&e.categories[i], text.Content, lines)
		if err != nil {
			return nil, err
		}
		result.Sets = append(result.Sets, set)
	}

	return result, nil
}

func (e *Extractor) extractCategory(cat *config.Category, content string, lines *lineIndex) (SampleSet, error) {
	set := SampleSet{
		Category: cat.Name,
		Label:    cat.Label,
	}

	pattern := cat.CompiledPattern()
	if pattern == nil {
		return set, fmt.Errorf("category %s: pattern not compiled", cat.Name)
	}

	for _, loc := range pattern.FindAllStringSubmatchIndex(content, -1) {
		if loc[2] < 0 {
			continue
		}
		raw := content[loc[2]:loc[3]]
		lineNum := lines.lineAt(loc[2])

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return set, fmt.Errorf("%w: category %s, line %d: %q", ErrParse, cat.Name, lineNum, raw)
		}

		set.Samples = append(set.Samples, Sample{
			Category: cat.Name,
			Value:    value / cat.Divisor,
			Raw:      raw,
			LineNum:  lineNum,
		})
	}

	return set, nil
}

// HeaderCount reports how many block headers of a category appear in the
// text and how many of them formed a complete block.
type HeaderCount struct {
	Category string
	Headers  int
	Blocks   int
}

// CountHeaders counts headers and complete blocks per category without
// converting any values.
func (e *Extractor) CountHeaders(text *LogText) []HeaderCount {
	counts := make([]HeaderCount, 0, len(e.categories))
	for i := range e.categories {
		cat := &e.categories[i]
		count := HeaderCount{Category: cat.Name}
		if header := cat.CompiledHeader(); header != nil {
			count.Headers = len(header.FindAllStringIndex(text.Content, -1))
		}
		if pattern := cat.CompiledPattern(); pattern != nil {
			count.Blocks = len(pattern.FindAllStringIndex(text.Content, -1))
		}
		counts = append(counts, count)
	}
	return counts
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(content string) *lineIndex {
	idx := &lineIndex{starts: []int{0}}
	for off := 0; ; {
		n := strings.IndexByte(content[off:], '\n')
		if n < 0 {
			break
		}
		off += n + 1
		idx.starts = append(idx.starts, off)
	}
	return idx
}

func (l *lineIndex) lineAt(offset int) int {
	lo, hi := 0, len(l.starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if l.starts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
