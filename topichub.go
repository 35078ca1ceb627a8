package hubbub

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/hubbub/dispatch"
	"github.com/dshills/hubbub/topic"
)

// TopicHub is the N-dimensional topic-matching hub. A subscription supplies
// one topic set per dimension; a notification supplies one topic list per
// dimension and reaches every subscription whose sets intersect the
// notification's lists in all dimensions. The wildcard topic "*" on either
// side matches unconditionally within its dimension.
//
// TopicHub is the canonical implementation; Hub1 through Hub4 are thin
// fixed-arity signature adapters over it.
type TopicHub struct {
	mu       sync.Mutex
	dims     int
	registry *Registry
	index    *topic.Index
	caster   *dispatch.Broadcaster
	closed   bool

	published atomic.Uint64
}

// NewTopicHub creates a topic-matching hub routing on dims dimensions. dims
// must be at least 1; smaller values are clamped.
func NewTopicHub(dims int, opts ...Option) *TopicHub {
	if dims < 1 {
		dims = 1
	}
	cfg := defaultHubConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TopicHub{
		dims:     dims,
		registry: NewRegistry(),
		index:    topic.NewIndex(dims),
		caster:   cfg.broadcaster(),
	}
}

// Dims returns the number of dimensions the hub routes on.
func (h *TopicHub) Dims() int {
	return h.dims
}

// Subscribe registers a callback for notifications whose topic lists
// intersect sets in every dimension. An empty set at any dimension means the
// subscription can never match. It returns an idempotent unsubscribe closure
// that stays a safe no-op after the hub is closed.
func (h *TopicHub) Subscribe(sets [][]topic.Topic, fn Handler) (UnsubscribeFunc, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	if len(sets) != h.dims {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(sets), h.dims)
	}

	// The hub owns the subscription's topic sets; copy so later caller-side
	// mutation cannot desync insert and remove.
	owned := copyTopicSets(sets)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}
	id := h.registry.Add(fn)
	h.index.Insert(id, owned...)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.closed {
				return
			}
			h.index.Remove(id, owned...)
			h.registry.Remove(id)
		})
	}, nil
}

// Notify delivers value to every subscription matching the given topic lists
// and blocks until all of their callbacks have completed. Callbacks run
// concurrently and panic-isolated; none of their failures reach the caller.
// An empty topic list at any dimension matches nothing.
func (h *TopicHub) Notify(ctx context.Context, sets [][]topic.Topic, value any) error {
	if len(sets) != h.dims {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(sets), h.dims)
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	ids := h.index.Match(sets...)
	handlers := h.registry.Handlers(ids)
	h.mu.Unlock()

	if len(handlers) == 0 {
		return nil
	}

	h.published.Add(1)
	h.caster.Dispatch(ctx, value, asDispatchHandlers(handlers))
	return nil
}

// Close tears the hub down, clearing the registry and the topic index.
// Operations after Close fail with ErrHubClosed, including a second Close.
func (h *TopicHub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.closed = true
	h.registry.Clear()
	h.index.Clear()
	return nil
}

// IsClosed reports whether the hub has been closed.
func (h *TopicHub) IsClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Count returns the current number of subscriptions.
func (h *TopicHub) Count() int {
	return h.registry.Count()
}

// Stats returns current hub statistics.
func (h *TopicHub) Stats() Stats {
	cs := h.caster.Stats()
	return Stats{
		Published:           h.published.Load(),
		Delivered:           cs.Succeeded,
		HandlerErrors:       cs.Failed,
		HandlerPanics:       cs.Panicked,
		ActiveSubscriptions: h.registry.Count(),
	}
}

// copyTopicSets deep-copies one topic list per dimension.
func copyTopicSets(sets [][]topic.Topic) [][]topic.Topic {
	out := make([][]topic.Topic, len(sets))
	for i, s := range sets {
		out[i] = make([]topic.Topic, len(s))
		copy(out[i], s)
	}
	return out
}
