package service

import "context"

// ErrorReporter forwards unexpected errors to an error tracker.
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}
