// Package filtered provides equality-only topic hubs over arbitrary
// comparable topic types.
//
// Unlike the string-topic TopicHub, a filtered hub has no wildcard sentinel
// and no index: matching is a plain set-intersection test performed inside
// each subscriber's wrapper callback. Every notify therefore costs O(total
// subscriber count), with a constant-time set lookup per notified topic. That is a
// deliberate trade of routing performance for genericity: topics can be ints,
// pointers, struct keys, or even other hubs used as identity tokens.
//
// Multi-dimensional filtered hubs are built by nesting single-dimension hubs:
// each additional dimension wraps the notified value in one more
// (topics, value) envelope, and each layer's wrapper callback tests one
// dimension's intersection before unwrapping.
//
//	h := filtered.New2[int, string]()
//	unsub, _ := h.Subscribe([]int{1, 2}, []string{"a"}, handler)
//	h.Notify(ctx, []int{2}, []string{"a", "b"}, payload) // delivered
//	h.Notify(ctx, []int{2}, []string{"c"}, payload)      // not delivered
//
// An empty topic set on either side matches nothing.
package filtered
