package dispatch

import (
	"context"
	"log/slog"
	"time"
)

// Handler is the interface for hub callbacks.
// This mirrors the hubbub.Handler interface to avoid circular imports.
type Handler interface {
	Handle(ctx context.Context, value any) error
}

// Result represents the outcome of a single handler execution.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration

	// Skipped is true if the handler was not executed (e.g., context cancelled).
	Skipped bool
}

// IsSuccess returns true if the result indicates successful execution.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError returns true if the result indicates an error (not panic).
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic returns true if the result indicates a panic.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// PanicHandler is called when a handler panics during execution.
// It receives the value being delivered, the panic value, and the stack trace.
type PanicHandler func(value any, panicValue any, stack []byte)

// defaultPanicHandler logs the panic via the default slog logger.
func defaultPanicHandler(value any, panicValue any, stack []byte) {
	slog.Error("hub callback panicked",
		"panic", panicValue,
		"value", value,
		"stack", string(stack))
}
