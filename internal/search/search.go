// Package search implements the line filter behind grrs: it streams lines
// from a reader and forwards the ones containing a literal pattern.
package search

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyPattern indicates a search was requested for the empty string
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrReadLine indicates the input could not produce the next line
	ErrReadLine = errors.New("could not read line of file")

	// ErrWriteLine indicates the output rejected a matching line
	ErrWriteLine = errors.New("unable to write line to writer")
)

// Stats describes how far a scan got. On failure it covers the lines
// processed before the error.
type Stats struct {
	LinesRead    int
	LinesMatched int
}

// Matcher selects lines containing a fixed, non-empty pattern.
// A Matcher holds no per-scan state and may be reused.
type Matcher struct {
	pattern []byte
}

// NewMatcher creates a Matcher for pattern.
func NewMatcher(pattern string) (*Matcher, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	return &Matcher{pattern: []byte(pattern)}, nil
}

// Pattern returns the literal the Matcher searches for.
func (m *Matcher) Pattern() string {
	return string(m.pattern)
}

// Match reports whether line contains the pattern. Matching is exact:
// no case folding, trimming or normalization.
func (m *Matcher) Match(line []byte) bool {
	return bytes.Contains(line, m.pattern)
}

// Scan reads r to exhaustion and writes every line containing the pattern
// to w, in input order, each followed by a single "\n".
//
// Each match is written as soon as it is found. The first read or write
// failure ends the scan; lines already written stay written. Errors wrap
// ErrReadLine or ErrWriteLine.
func (m *Matcher) Scan(r io.Reader, w io.Writer) (Stats, error) {
	var (
		stats Stats
		out   []byte
	)
	lines := NewLineReader(r)

	for {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("%w: %w", ErrReadLine, err)
		}
		stats.LinesRead++

		if !m.Match(line) {
			continue
		}

		// line aliases the reader's buffer; copy before adding the terminator.
		out = append(append(out[:0], line...), '\n')
		if _, err := w.Write(out); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWriteLine, err)
		}
		stats.LinesMatched++
	}
}

// Scan is shorthand for NewMatcher followed by Matcher.Scan.
func Scan(r io.Reader, pattern string, w io.Writer) (Stats, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return Stats{}, err
	}
	return m.Scan(r, w)
}
