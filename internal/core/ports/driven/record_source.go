package driven

import "context"

// RecordSource supplies raw input lines.
// Lines are returned verbatim without their line terminator.
type RecordSource interface {
	// Next returns the next line.
	// Returns io.EOF once the source is exhausted. Any other error means the
	// source could not be read.
	Next(ctx context.Context) (string, error)
}
