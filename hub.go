package hubbub

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dshills/hubbub/dispatch"
)

// Hub is the plain broadcast hub: every notify reaches every current
// subscriber. It is the primitive the stateful, reactive, and filtered
// variants are layered on, exclusively through its public contract.
//
// All mutating operations are serialized against the hub's state, but
// callbacks always run outside the hub's lock, so a callback may itself
// subscribe, unsubscribe, or notify on the same hub without deadlocking.
type Hub struct {
	mu       sync.Mutex
	registry *Registry
	caster   *dispatch.Broadcaster
	closed   bool

	published atomic.Uint64
}

// NewHub creates a new plain hub.
func NewHub(opts ...Option) *Hub {
	cfg := defaultHubConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Hub{
		registry: NewRegistry(),
		caster:   cfg.broadcaster(),
	}
}

// Subscribe registers a callback for every future notify. It returns an
// idempotent unsubscribe closure that stays a safe no-op after the hub is
// closed.
func (h *Hub) Subscribe(fn Handler) (UnsubscribeFunc, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}
	id := h.registry.Add(fn)
	h.mu.Unlock()

	return h.unsubscriber(id), nil
}

// unsubscriber builds the once-only removal closure for id.
func (h *Hub) unsubscriber(id uint64) UnsubscribeFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.closed {
				return
			}
			h.registry.Remove(id)
		})
	}
}

// Notify delivers value to every current subscriber and blocks until all of
// their callbacks have completed. Callbacks run concurrently, each isolated
// from the others: an error or panic in one never reaches the notifier and
// never suppresses a sibling. Notifying with no subscribers is a no-op.
func (h *Hub) Notify(ctx context.Context, value any) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	handlers := h.registry.All()
	h.mu.Unlock()

	if len(handlers) == 0 {
		return nil
	}

	h.published.Add(1)
	h.caster.Dispatch(ctx, value, asDispatchHandlers(handlers))
	return nil
}

// Close tears the hub down, clearing all subscriptions. Operations after
// Close fail with ErrHubClosed, including a second Close.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.closed = true
	h.registry.Clear()
	return nil
}

// IsClosed reports whether the hub has been closed.
func (h *Hub) IsClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Count returns the current number of subscriptions.
func (h *Hub) Count() int {
	return h.registry.Count()
}

// Stats returns current hub statistics.
func (h *Hub) Stats() Stats {
	cs := h.caster.Stats()
	return Stats{
		Published:           h.published.Load(),
		Delivered:           cs.Succeeded,
		HandlerErrors:       cs.Failed,
		HandlerPanics:       cs.Panicked,
		ActiveSubscriptions: h.registry.Count(),
	}
}

// invoke runs a single handler through the hub's panic-isolated dispatch
// machinery. Used by layered variants for out-of-band calls such as the
// current-state delivery at subscribe time.
func (h *Hub) invoke(ctx context.Context, value any, fn Handler) {
	h.caster.Dispatch(ctx, value, []dispatch.Handler{fn})
}

// asDispatchHandlers converts a handler snapshot for the dispatch package.
func asDispatchHandlers(hs []Handler) []dispatch.Handler {
	out := make([]dispatch.Handler, len(hs))
	for i, h := range hs {
		out[i] = h
	}
	return out
}
