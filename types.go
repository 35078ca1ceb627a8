package hubbub

import "context"

// Handler is the interface for hub callbacks.
type Handler interface {
	// Handle processes a notified value.
	// The value parameter is type-erased; handlers should type-assert.
	Handle(ctx context.Context, value any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, value any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, value any) error {
	return f(ctx, value)
}

// TypedHandlerFunc adapts a payload-typed function to a Handler. Values of
// any other type are skipped silently.
func TypedHandlerFunc[T any](fn func(ctx context.Context, value T) error) Handler {
	return HandlerFunc(func(ctx context.Context, value any) error {
		if v, ok := value.(T); ok {
			return fn(ctx, v)
		}
		return nil
	})
}

// UnsubscribeFunc removes the subscription it was returned for. It is
// idempotent: the first call removes the subscription, every later call is a
// no-op. It remains safe to call after the hub has been closed.
type UnsubscribeFunc func()

// Stats contains hub statistics.
type Stats struct {
	// Published is the total number of notify calls that reached dispatch.
	Published uint64

	// Delivered is the number of successful callback executions.
	Delivered uint64

	// HandlerErrors is the number of callbacks that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of callbacks that panicked.
	HandlerPanics uint64

	// ActiveSubscriptions is the current number of subscriptions.
	ActiveSubscriptions int
}
