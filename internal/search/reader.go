package search

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates a line that could not be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// LineReader yields successive lines from an underlying reader.
// Only the line currently being returned is held in memory.
type LineReader struct {
	r    *bufio.Reader
	line int // 1-based number of the last line returned
}

// NewLineReader wraps r in a buffered line source.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line with its terminator ("\n" or "\r\n") removed.
// The returned slice is only valid until the following call.
// It returns io.EOF once the stream is exhausted.
func (lr *LineReader) Next() ([]byte, error) {
	buf, err := lr.r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		// Long line: keep reading until the terminator shows up.
		full := append([]byte(nil), buf...)
		for errors.Is(err, bufio.ErrBufferFull) {
			buf, err = lr.r.ReadSlice('\n')
			full = append(full, buf...)
		}
		buf = full
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, io.EOF
	}

	lr.line++
	buf = trimTerminator(buf)
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("line %d: %w", lr.line, ErrInvalidUTF8)
	}
	return buf, nil
}

func trimTerminator(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte{'\n'}) {
		return line
	}
	line = line[:len(line)-1]
	return bytes.TrimSuffix(line, []byte{'\r'})
}
