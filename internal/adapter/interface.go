package adapter

import (
	"context"
)

// Operation is one browser operation invoked with loosely typed arguments,
// as they arrive from a query string or form.
// Each operation must be stateless and safe for concurrent use.
type Operation interface {
	// Name returns the unique identifier for this operation
	Name() string

	// Execute decodes args, runs the operation and returns its response payload
	Execute(ctx context.Context, args map[string]any) (any, error)
}
