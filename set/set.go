// Package set contains the small generic set type shared by the hub packages.
package set

// Set is a set of T.
type Set[T comparable] map[T]struct{}

// Of returns a new Set containing the given elements.
func Of[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add adds e to the set.
func (s Set[T]) Add(e T) { s[e] = struct{}{} }

// Delete removes e from the set.
func (s Set[T]) Delete(e T) { delete(s, e) }

// Contains reports whether s contains e.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Len reports the number of elements in s.
func (s Set[T]) Len() int { return len(s) }

// Slice returns the elements of s in unspecified order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Union adds every element of other to s.
func (s Set[T]) Union(other Set[T]) {
	for e := range other {
		s[e] = struct{}{}
	}
}

// Intersects reports whether s shares at least one element with elems.
func (s Set[T]) Intersects(elems []T) bool {
	for _, e := range elems {
		if s.Contains(e) {
			return true
		}
	}
	return false
}
