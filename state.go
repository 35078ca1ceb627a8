package hubbub

import (
	"context"
	"sync"
)

// StateHub is a Hub that retains the last notified value. State always
// returns the most recent value passed to Notify, or the initial value if
// Notify has never been called.
type StateHub struct {
	hub *Hub

	mu      sync.RWMutex
	current any
}

// NewStateHub creates a stateful hub holding initial as its starting state.
func NewStateHub(initial any, opts ...Option) *StateHub {
	return &StateHub{
		hub:     NewHub(opts...),
		current: initial,
	}
}

// State returns the current state. After Close it returns nil.
func (s *StateHub) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Notify stores value as the current state and broadcasts it to every
// subscriber, blocking until all callbacks have completed.
func (s *StateHub) Notify(ctx context.Context, value any) error {
	s.mu.Lock()
	if s.hub.IsClosed() {
		s.mu.Unlock()
		return ErrHubClosed
	}
	s.current = value
	s.mu.Unlock()

	return s.hub.Notify(ctx, value)
}

// Subscribe registers a callback for future notifications. With
// WithCurrentState the callback is first invoked synchronously with the
// current state; that call happens before the subscription is registered, so
// it cannot also fire through a racing concurrent Notify.
func (s *StateHub) Subscribe(fn Handler, opts ...SubscribeOption) (UnsubscribeFunc, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}

	var cfg subscribeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.notifyCurrent {
		if s.hub.IsClosed() {
			return nil, ErrHubClosed
		}
		s.mu.RLock()
		cur := s.current
		s.mu.RUnlock()
		// Panic-isolated like any other delivery; runs outside all locks so
		// the callback may re-enter the hub.
		s.hub.invoke(context.Background(), cur, fn)
	}

	return s.hub.Subscribe(fn)
}

// Close tears the hub down, clearing all subscriptions and the retained
// state.
func (s *StateHub) Close() error {
	err := s.hub.Close()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Count returns the current number of subscriptions.
func (s *StateHub) Count() int {
	return s.hub.Count()
}

// Stats returns current hub statistics.
func (s *StateHub) Stats() Stats {
	return s.hub.Stats()
}
