package topic

// Topic is a routing label used to direct notifications to interested
// subscribers. Examples: "buffer", "sensor-7", "warning".
type Topic string

// Wildcard is the sentinel topic that matches unconditionally within its
// dimension, whether it appears on the subscribing or the notifying side.
const Wildcard Topic = "*"

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// IsWildcard reports whether t is the wildcard sentinel.
func (t Topic) IsWildcard() bool {
	return t == Wildcard
}

// Topics converts a list of strings to a list of topics. It is a convenience
// for call sites that work with plain strings.
func Topics(ss ...string) []Topic {
	out := make([]Topic, len(ss))
	for i, s := range ss {
		out[i] = Topic(s)
	}
	return out
}
