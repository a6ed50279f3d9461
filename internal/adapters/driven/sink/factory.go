package sink

import (
	"fmt"
	"io"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// New returns the sink for format. styled only affects text output.
// The returned closer flushes buffered output and must be called when the
// run ends.
func New(format domain.OutputFormat, w io.Writer, styled bool) (driven.ResultSink, io.Closer, error) {
	switch format {
	case domain.OutputText, "":
		if styled {
			return NewStyledText(w), nopCloser{}, nil
		}
		return NewText(w), nopCloser{}, nil
	case domain.OutputJSON:
		return NewJSON(w), nopCloser{}, nil
	case domain.OutputYAML:
		y := NewYAML(w)
		return y, y, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidInput, format)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
