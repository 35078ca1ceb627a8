// Package hubbub provides in-process publish/subscribe hubs.
//
// A hub holds a registry of callbacks; publishers notify the hub with a
// value; the hub invokes every matching subscriber before returning. Layered
// variants add state retention, computed values, and topic-based routing.
//
// # Hub Variants
//
//   - Hub: plain broadcast, every notify reaches every subscriber.
//   - StateHub: retains the last notified value; State returns it, and new
//     subscribers can request one immediate delivery of it.
//   - ReactiveHub: the broadcast value comes from an injected zero-argument
//     producer instead of the notify call.
//   - TopicHub: N-dimensional topic routing with wildcard support; Hub1
//     through Hub4 are fixed-arity conveniences over it.
//   - filtered.Hub: topic routing over arbitrary comparable types, without
//     wildcards or indexing (see the filtered package).
//
// # Topic Matching
//
// A TopicHub subscription supplies one topic set per dimension and matches a
// notification when the two share at least one topic in every dimension:
//
//	hub := hubbub.NewHub2()
//	unsub, _ := hub.Subscribe(
//	    topic.Topics("sensor", "probe"),
//	    topic.Topics("temp"),
//	    hubbub.HandlerFunc(func(ctx context.Context, v any) error {
//	        fmt.Println("reading:", v)
//	        return nil
//	    }),
//	)
//	defer unsub()
//
//	// Matches: "probe" intersects dimension one, "temp" dimension two.
//	hub.Notify(ctx, topic.Topics("probe"), topic.Topics("temp", "rh"), 21.5)
//
// The wildcard topic "*" matches unconditionally within its dimension, on
// either the subscribing or the notifying side. An empty topic list matches
// nothing.
//
// # Delivery Contract
//
// Notify blocks until every matched callback has completed. Callbacks run
// concurrently, each panic-isolated: a failing callback never aborts its
// siblings and never surfaces to the notifier. The matched set is computed
// from the subscribers current at call time; invocation order is
// unspecified.
//
// Callbacks may re-enter the hub: subscribing, unsubscribing, or notifying
// from inside a callback is safe because the hub never runs callbacks while
// holding its lock.
//
// # Lifecycle
//
// Hubs are live from construction until Close. The With helpers scope a hub
// to a body function and guarantee teardown on all exit paths:
//
//	err := hubbub.WithTopics(2, func(h *hubbub.TopicHub) error {
//	    // subscribe, notify...
//	    return nil
//	})
//
// After Close, subscribe and notify fail fast with ErrHubClosed; unsubscribe
// closures remain safe no-ops.
package hubbub
