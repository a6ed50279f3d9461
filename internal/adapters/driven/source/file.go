package source

import (
	"fmt"
	"io"
	"os"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// DefaultFile is read when no input path is given.
const DefaultFile = "project1.txt"

// OpenFile opens path for reading. Stdin ("-") reads from stdin, which is
// never closed by the returned reader.
func OpenFile(path string, stdin io.Reader) (*LineReader, error) {
	if path == "" {
		path = DefaultFile
	}
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		return NewLineReader(io.NopCloser(stdin), "stdin"), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrSourceUnavailable, path)
	}

	f, err := os.Open(path) //nolint:gosec // G304: reading the user's chosen input file
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	return NewLineReader(f, path), nil
}
