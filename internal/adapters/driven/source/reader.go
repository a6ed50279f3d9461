package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// Ensure LineReader implements the interface.
var _ driven.RecordSource = (*LineReader)(nil)

// MaxLineSize is the longest line a LineReader accepts.
const MaxLineSize = 1 << 20

// LineReader reads lines from an io.Reader. A trailing "\r" is dropped so
// files with Windows line endings read the same as Unix ones.
type LineReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	name    string
}

// NewLineReader creates a reader over r. If r is an io.Closer it is closed
// by Close.
func NewLineReader(r io.Reader, name string) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lr := &LineReader{scanner: scanner, name: name}
	if c, ok := r.(io.Closer); ok {
		lr.closer = c
	}
	return lr
}

// NewStringReader creates a reader over the lines of s.
func NewStringReader(s string) *LineReader {
	return NewLineReader(strings.NewReader(s), "<string>")
}

// Next returns the next line, or io.EOF when the input is exhausted.
func (r *LineReader) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: read %s: %w", domain.ErrSourceUnavailable, r.name, err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// Name returns the name the reader was opened with.
func (r *LineReader) Name() string {
	return r.name
}

// Close closes the underlying reader if it is closable.
func (r *LineReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
