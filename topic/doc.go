// Package topic provides the topic type and the multi-dimensional topic index
// used by the topic-matching hub.
//
// # Topics and Dimensions
//
// A Topic is a plain string label. A subscription registers one set of topics
// per dimension; a notification supplies one list of topics per dimension. The
// two match when they share at least one topic in every dimension:
//
//	subscribe: ({"sensor", "probe"}, {"temp"})
//	notify:    (["probe"],           ["temp", "humidity"])   -> match
//	notify:    (["probe"],           ["pressure"])            -> no match
//
// Intersection is per dimension; equality of whole sets is never required.
//
// # Wildcard
//
// The literal topic "*" is a sentinel, not an ordinary label. Present in a
// subscription's set it matches any notification topic in that dimension;
// present in a notification's list it matches every subscription in that
// dimension. An empty topic list is not a wildcard: it matches nothing.
//
// # Index
//
// Index is a trie with one level per dimension. Children are keyed by topic
// string and subscription ids live only at the deepest level, so a
// subscription appears exactly along the topic combinations it registered
// for; the nesting itself encodes the AND across dimensions. Nodes left with
// no ids and no children are pruned on removal, so churn cannot grow the
// structure without bound.
package topic
