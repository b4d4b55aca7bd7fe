package adapter

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Validator is an interface for request types that support validation
type Validator interface {
	Validate() error
}

// OperationExecutor executes an operation with typed request/response.
type OperationExecutor[Req, Resp any] func(context.Context, Req) (Resp, error)

// BaseAdapter provides common adapter functionality using generics.
// This eliminates duplication across all operations by centralizing:
// - Argument decoding (mapstructure, weakly typed)
// - Request validation
// - Execution
//
// Type Parameters:
//   - Req: The argument type (e.g., ReadArgs)
//   - Resp: The response type (e.g., *ReadPayload)
type BaseAdapter[Req, Resp any] struct {
	name     string
	executor OperationExecutor[Req, Resp]
}

// NewBaseAdapter creates a new base adapter.
//
// Example usage:
//
//	op := NewBaseAdapter("search", svc.Search)
func NewBaseAdapter[Req, Resp any](name string, executor OperationExecutor[Req, Resp]) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		name:     name,
		executor: executor,
	}
}

// Name implements Operation
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Execute implements Operation
//
// This method:
// 1. Decodes the args map into a typed request using mapstructure
// 2. Validates the request if it implements Validator interface
// 3. Calls the executor function with the typed request
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (any, error) {
	req, err := Decode[Req](args)
	if err != nil {
		return nil, &InvalidArgumentsError{Op: b.name, Cause: err}
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%s validation failed: %w", b.name, err)
		}
	}

	return b.executor(ctx, req)
}

// Decode converts loosely typed arguments into Req. Strings are converted to
// numbers and booleans; a value that does not convert is an error.
func Decode[Req any](args map[string]any) (Req, error) {
	var req Req

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
		TagName:          "mapstructure",
	})
	if err != nil {
		return req, err
	}

	if err := decoder.Decode(args); err != nil {
		return req, err
	}
	return req, nil
}
