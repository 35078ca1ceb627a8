package hubbub

import (
	"context"
	"sync"
)

// ReactiveHub is a stateful hub whose broadcast value is produced by an
// injected zero-argument function rather than passed at notify time. The
// producer is not called at creation: the hub's state is nil until the first
// Notify.
type ReactiveHub struct {
	state   *StateHub
	produce func() any

	// produceMu serializes producer calls; the producer commonly closes over
	// mutable state such as a counter.
	produceMu sync.Mutex
}

// NewReactiveHub creates a reactive hub around the given producer.
func NewReactiveHub(produce func() any, opts ...Option) *ReactiveHub {
	return &ReactiveHub{
		state:   NewStateHub(nil, opts...),
		produce: produce,
	}
}

// Notify calls the producer, stores and broadcasts the produced value, and
// returns it. It blocks until every subscriber's callback has completed.
func (r *ReactiveHub) Notify(ctx context.Context) (any, error) {
	if r.produce == nil {
		return nil, ErrNilProducer
	}
	if r.state.hub.IsClosed() {
		return nil, ErrHubClosed
	}

	r.produceMu.Lock()
	value := r.produce()
	r.produceMu.Unlock()

	if err := r.state.Notify(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}

// State returns the most recently produced value, or nil before the first
// Notify.
func (r *ReactiveHub) State() any {
	return r.state.State()
}

// Subscribe registers a callback for future notifications. WithCurrentState
// behaves as on StateHub: one synchronous delivery of the current state
// before registration.
func (r *ReactiveHub) Subscribe(fn Handler, opts ...SubscribeOption) (UnsubscribeFunc, error) {
	return r.state.Subscribe(fn, opts...)
}

// Close tears the hub down.
func (r *ReactiveHub) Close() error {
	return r.state.Close()
}

// Count returns the current number of subscriptions.
func (r *ReactiveHub) Count() int {
	return r.state.Count()
}

// Stats returns current hub statistics.
func (r *ReactiveHub) Stats() Stats {
	return r.state.Stats()
}
