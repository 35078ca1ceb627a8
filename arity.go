package hubbub

import (
	"context"

	"github.com/dshills/hubbub/topic"
)

// Fixed-arity convenience wrappers over TopicHub. Each one only reshapes its
// arguments into the N-dimensional form; none of them duplicate any matching
// logic.

// Hub1 is a single-dimension topic hub.
type Hub1 struct {
	hub *TopicHub
}

// NewHub1 creates a single-dimension topic hub.
func NewHub1(opts ...Option) *Hub1 {
	return &Hub1{hub: NewTopicHub(1, opts...)}
}

// Subscribe registers fn for notifications whose topics intersect topics.
func (h *Hub1) Subscribe(topics []topic.Topic, fn Handler) (UnsubscribeFunc, error) {
	return h.hub.Subscribe([][]topic.Topic{topics}, fn)
}

// Notify delivers value to every subscription whose topic set intersects topics.
func (h *Hub1) Notify(ctx context.Context, topics []topic.Topic, value any) error {
	return h.hub.Notify(ctx, [][]topic.Topic{topics}, value)
}

// Close tears the hub down.
func (h *Hub1) Close() error { return h.hub.Close() }

// Count returns the current number of subscriptions.
func (h *Hub1) Count() int { return h.hub.Count() }

// Stats returns current hub statistics.
func (h *Hub1) Stats() Stats { return h.hub.Stats() }

// Hub2 is a two-dimension topic hub.
type Hub2 struct {
	hub *TopicHub
}

// NewHub2 creates a two-dimension topic hub.
func NewHub2(opts ...Option) *Hub2 {
	return &Hub2{hub: NewTopicHub(2, opts...)}
}

// Subscribe registers fn for notifications intersecting t1 and t2.
func (h *Hub2) Subscribe(t1, t2 []topic.Topic, fn Handler) (UnsubscribeFunc, error) {
	return h.hub.Subscribe([][]topic.Topic{t1, t2}, fn)
}

// Notify delivers value to every subscription intersecting t1 and t2.
func (h *Hub2) Notify(ctx context.Context, t1, t2 []topic.Topic, value any) error {
	return h.hub.Notify(ctx, [][]topic.Topic{t1, t2}, value)
}

// Close tears the hub down.
func (h *Hub2) Close() error { return h.hub.Close() }

// Count returns the current number of subscriptions.
func (h *Hub2) Count() int { return h.hub.Count() }

// Stats returns current hub statistics.
func (h *Hub2) Stats() Stats { return h.hub.Stats() }

// Hub3 is a three-dimension topic hub.
type Hub3 struct {
	hub *TopicHub
}

// NewHub3 creates a three-dimension topic hub.
func NewHub3(opts ...Option) *Hub3 {
	return &Hub3{hub: NewTopicHub(3, opts...)}
}

// Subscribe registers fn for notifications intersecting t1, t2, and t3.
func (h *Hub3) Subscribe(t1, t2, t3 []topic.Topic, fn Handler) (UnsubscribeFunc, error) {
	return h.hub.Subscribe([][]topic.Topic{t1, t2, t3}, fn)
}

// Notify delivers value to every subscription intersecting t1, t2, and t3.
func (h *Hub3) Notify(ctx context.Context, t1, t2, t3 []topic.Topic, value any) error {
	return h.hub.Notify(ctx, [][]topic.Topic{t1, t2, t3}, value)
}

// Close tears the hub down.
func (h *Hub3) Close() error { return h.hub.Close() }

// Count returns the current number of subscriptions.
func (h *Hub3) Count() int { return h.hub.Count() }

// Stats returns current hub statistics.
func (h *Hub3) Stats() Stats { return h.hub.Stats() }

// Hub4 is a four-dimension topic hub.
type Hub4 struct {
	hub *TopicHub
}

// NewHub4 creates a four-dimension topic hub.
func NewHub4(opts ...Option) *Hub4 {
	return &Hub4{hub: NewTopicHub(4, opts...)}
}

// Subscribe registers fn for notifications intersecting all four dimensions.
func (h *Hub4) Subscribe(t1, t2, t3, t4 []topic.Topic, fn Handler) (UnsubscribeFunc, error) {
	return h.hub.Subscribe([][]topic.Topic{t1, t2, t3, t4}, fn)
}

// Notify delivers value to every subscription intersecting all four dimensions.
func (h *Hub4) Notify(ctx context.Context, t1, t2, t3, t4 []topic.Topic, value any) error {
	return h.hub.Notify(ctx, [][]topic.Topic{t1, t2, t3, t4}, value)
}

// Close tears the hub down.
func (h *Hub4) Close() error { return h.hub.Close() }

// Count returns the current number of subscriptions.
func (h *Hub4) Count() int { return h.hub.Count() }

// Stats returns current hub statistics.
func (h *Hub4) Stats() Stats { return h.hub.Stats() }
