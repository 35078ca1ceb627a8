package filtered

import (
	"context"

	"github.com/dshills/hubbub"
)

// envelope carries one dimension's topics alongside the value being
// notified. Nested hubs stack one envelope per dimension.
type envelope[T comparable] struct {
	topics []T
	value  any
}

// Hub is a single-dimension filtered hub over topics of any comparable type.
// It wraps a plain hubbub.Hub: every notify reaches every subscriber's
// wrapper, which tests set intersection before invoking the real callback.
type Hub[T comparable] struct {
	inner *hubbub.Hub
}

// New creates a single-dimension filtered hub.
func New[T comparable](opts ...hubbub.Option) *Hub[T] {
	return &Hub[T]{inner: hubbub.NewHub(opts...)}
}

// Subscribe registers fn for notifications whose topic list shares at least
// one element with topics. There is no wildcard: an empty set never matches.
func (h *Hub[T]) Subscribe(topics []T, fn hubbub.Handler) (hubbub.UnsubscribeFunc, error) {
	if fn == nil {
		return nil, hubbub.ErrNilHandler
	}
	return h.inner.Subscribe(unwrap[T](topics, fn))
}

// Notify delivers value to every subscription whose topic set intersects
// topics, blocking until all matched callbacks have completed.
func (h *Hub[T]) Notify(ctx context.Context, topics []T, value any) error {
	return h.inner.Notify(ctx, envelope[T]{topics: topics, value: value})
}

// Close tears the hub down.
func (h *Hub[T]) Close() error { return h.inner.Close() }

// Count returns the current number of subscriptions.
func (h *Hub[T]) Count() int { return h.inner.Count() }

// With runs body with a new single-dimension filtered hub and guarantees
// Close on every exit path.
func With[T comparable](body func(*Hub[T]) error, opts ...hubbub.Option) error {
	h := New[T](opts...)
	defer func() { _ = h.Close() }()
	return body(h)
}
