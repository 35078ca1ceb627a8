package filtered

import (
	"context"

	"github.com/dshills/hubbub"
	"github.com/dshills/hubbub/set"
)

// Multi-dimensional filtered hubs, built by nesting single-dimension hubs.
// Each layer adds one (topics, value) envelope on notify and strips it again
// in the subscriber's wrapper after testing its dimension's intersection.

// Hub2 is a two-dimension filtered hub.
type Hub2[T1, T2 comparable] struct {
	inner *Hub[T1]
}

// New2 creates a two-dimension filtered hub.
func New2[T1, T2 comparable](opts ...hubbub.Option) *Hub2[T1, T2] {
	return &Hub2[T1, T2]{inner: New[T1](opts...)}
}

// Subscribe registers fn for notifications intersecting t1 and t2.
func (h *Hub2[T1, T2]) Subscribe(t1 []T1, t2 []T2, fn hubbub.Handler) (hubbub.UnsubscribeFunc, error) {
	if fn == nil {
		return nil, hubbub.ErrNilHandler
	}
	return h.inner.Subscribe(t1, unwrap[T2](t2, fn))
}

// Notify delivers value to every subscription intersecting t1 and t2.
func (h *Hub2[T1, T2]) Notify(ctx context.Context, t1 []T1, t2 []T2, value any) error {
	return h.inner.Notify(ctx, t1, envelope[T2]{topics: t2, value: value})
}

// Close tears the hub down.
func (h *Hub2[T1, T2]) Close() error { return h.inner.Close() }

// Count returns the current number of subscriptions.
func (h *Hub2[T1, T2]) Count() int { return h.inner.Count() }

// Hub3 is a three-dimension filtered hub.
type Hub3[T1, T2, T3 comparable] struct {
	inner *Hub2[T1, T2]
}

// New3 creates a three-dimension filtered hub.
func New3[T1, T2, T3 comparable](opts ...hubbub.Option) *Hub3[T1, T2, T3] {
	return &Hub3[T1, T2, T3]{inner: New2[T1, T2](opts...)}
}

// Subscribe registers fn for notifications intersecting all three dimensions.
func (h *Hub3[T1, T2, T3]) Subscribe(t1 []T1, t2 []T2, t3 []T3, fn hubbub.Handler) (hubbub.UnsubscribeFunc, error) {
	if fn == nil {
		return nil, hubbub.ErrNilHandler
	}
	return h.inner.Subscribe(t1, t2, unwrap[T3](t3, fn))
}

// Notify delivers value to every subscription intersecting all three dimensions.
func (h *Hub3[T1, T2, T3]) Notify(ctx context.Context, t1 []T1, t2 []T2, t3 []T3, value any) error {
	return h.inner.Notify(ctx, t1, t2, envelope[T3]{topics: t3, value: value})
}

// Close tears the hub down.
func (h *Hub3[T1, T2, T3]) Close() error { return h.inner.Close() }

// Count returns the current number of subscriptions.
func (h *Hub3[T1, T2, T3]) Count() int { return h.inner.Count() }

// Hub4 is a four-dimension filtered hub.
type Hub4[T1, T2, T3, T4 comparable] struct {
	inner *Hub3[T1, T2, T3]
}

// New4 creates a four-dimension filtered hub.
func New4[T1, T2, T3, T4 comparable](opts ...hubbub.Option) *Hub4[T1, T2, T3, T4] {
	return &Hub4[T1, T2, T3, T4]{inner: New3[T1, T2, T3](opts...)}
}

// Subscribe registers fn for notifications intersecting all four dimensions.
func (h *Hub4[T1, T2, T3, T4]) Subscribe(t1 []T1, t2 []T2, t3 []T3, t4 []T4, fn hubbub.Handler) (hubbub.UnsubscribeFunc, error) {
	if fn == nil {
		return nil, hubbub.ErrNilHandler
	}
	return h.inner.Subscribe(t1, t2, t3, unwrap[T4](t4, fn))
}

// Notify delivers value to every subscription intersecting all four dimensions.
func (h *Hub4[T1, T2, T3, T4]) Notify(ctx context.Context, t1 []T1, t2 []T2, t3 []T3, t4 []T4, value any) error {
	return h.inner.Notify(ctx, t1, t2, t3, envelope[T4]{topics: t4, value: value})
}

// Close tears the hub down.
func (h *Hub4[T1, T2, T3, T4]) Close() error { return h.inner.Close() }

// Count returns the current number of subscriptions.
func (h *Hub4[T1, T2, T3, T4]) Count() int { return h.inner.Count() }

// unwrap builds the wrapper that tests one dimension's intersection and
// strips its envelope before invoking fn.
func unwrap[T comparable](topics []T, fn hubbub.Handler) hubbub.Handler {
	want := set.Of(topics...)
	return hubbub.HandlerFunc(func(ctx context.Context, v any) error {
		env, ok := v.(envelope[T])
		if !ok {
			return nil
		}
		if !want.Intersects(env.topics) {
			return nil
		}
		return fn.Handle(ctx, env.value)
	})
}
