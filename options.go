package hubbub

import "github.com/dshills/hubbub/dispatch"

// Option configures a hub at construction time.
type Option func(*hubConfig)

// hubConfig contains configuration shared by all hub variants.
type hubConfig struct {
	// panicHandler is called when a callback panics.
	panicHandler dispatch.PanicHandler
}

// defaultHubConfig returns sensible default configuration.
func defaultHubConfig() hubConfig {
	return hubConfig{
		panicHandler: nil, // dispatch falls back to its slog-based default
	}
}

// broadcaster builds the dispatch broadcaster described by the config.
func (c hubConfig) broadcaster() *dispatch.Broadcaster {
	if c.panicHandler != nil {
		return dispatch.NewBroadcaster(dispatch.WithPanicHandler(c.panicHandler))
	}
	return dispatch.NewBroadcaster()
}

// WithPanicHandler sets the panic handler invoked when a callback panics
// during notify. The default logs via log/slog.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(c *hubConfig) {
		if h != nil {
			c.panicHandler = h
		}
	}
}

// SubscribeOption configures a single subscription on a stateful or reactive
// hub.
type SubscribeOption func(*subscribeConfig)

// subscribeConfig contains per-subscription configuration.
type subscribeConfig struct {
	// notifyCurrent requests one synchronous invocation with the current
	// state at subscribe time, before the subscription is registered.
	notifyCurrent bool
}

// WithCurrentState requests that the new callback be invoked once with the
// hub's current state at subscribe time. The call happens before the
// subscription is added to the registry, so it cannot also fire through a
// concurrently racing notify.
func WithCurrentState() SubscribeOption {
	return func(c *subscribeConfig) {
		c.notifyCurrent = true
	}
}
