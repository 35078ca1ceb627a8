package hubbub

// Scoped hub lifecycles. Each With helper runs body with a fresh hub and
// guarantees Close on every exit path, including panics. The hub must not be
// used after body returns; unsubscribe closures that escape the scope remain
// safe no-ops.

// With runs body with a new plain hub.
func With(body func(*Hub) error, opts ...Option) error {
	h := NewHub(opts...)
	defer func() { _ = h.Close() }()
	return body(h)
}

// WithState runs body with a new stateful hub holding initial.
func WithState(initial any, body func(*StateHub) error, opts ...Option) error {
	s := NewStateHub(initial, opts...)
	defer func() { _ = s.Close() }()
	return body(s)
}

// WithReactive runs body with a new reactive hub around produce.
func WithReactive(produce func() any, body func(*ReactiveHub) error, opts ...Option) error {
	r := NewReactiveHub(produce, opts...)
	defer func() { _ = r.Close() }()
	return body(r)
}

// WithTopics runs body with a new dims-dimensional topic hub.
func WithTopics(dims int, body func(*TopicHub) error, opts ...Option) error {
	h := NewTopicHub(dims, opts...)
	defer func() { _ = h.Close() }()
	return body(h)
}
