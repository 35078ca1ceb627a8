package hubbub

import "errors"

// Sentinel errors for the hub packages.
var (
	// ErrHubClosed is returned when operations are attempted on a closed hub.
	// Using a hub after teardown is a lifetime bug in caller code, so the hub
	// fails fast rather than silently dropping the call. Unsubscribe closures
	// are the one exception: they stay safe no-ops after Close.
	ErrHubClosed = errors.New("hub is closed")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrDimensionMismatch is returned when the number of topic lists passed
	// to subscribe or notify differs from the hub's dimension count.
	ErrDimensionMismatch = errors.New("wrong number of topic dimensions")

	// ErrNilProducer is returned by a reactive hub built without a producer.
	ErrNilProducer = errors.New("producer cannot be nil")
)
