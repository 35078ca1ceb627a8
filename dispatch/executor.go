package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor handles the actual execution of hub callbacks with panic recovery
// and timing.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler for the executor.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// Execute runs a handler with the given value and returns the result.
// It recovers from panics and captures timing information.
func (e *Executor) Execute(ctx context.Context, value any, handler Handler) (result Result) {
	// Check context before starting
	select {
	case <-ctx.Done():
		return Result{
			Success: false,
			Error:   ctx.Err(),
			Skipped: true,
		}
	default:
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			// Protect the panic handler call - don't let it crash the process
			if e.panicHandler != nil {
				func() {
					defer func() {
						// Silently recover if panic handler itself panics
						_ = recover()
					}()
					e.panicHandler(value, r, stack)
				}()
			}
		}
	}()

	err := handler.Handle(ctx, value)

	if err != nil {
		result.Success = false
		result.Error = err
	} else {
		result.Success = true
	}

	return result
}
