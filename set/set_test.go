package set

import (
	"sort"
	"testing"
)

func TestSet_Of(t *testing.T) {
	s := Of("a", "b", "a")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("Of should contain all given elements")
	}
	if s.Contains("c") {
		t.Error("Contains should return false for absent element")
	}
}

func TestSet_AddDelete(t *testing.T) {
	s := Of(1, 2)
	s.Add(3)
	if !s.Contains(3) {
		t.Error("Contains(3) = false after Add")
	}
	s.Delete(1)
	if s.Contains(1) {
		t.Error("Contains(1) = true after Delete")
	}
	s.Delete(99) // absent, no-op
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSet_Union(t *testing.T) {
	s := Of("a")
	s.Union(Of("b", "c"))
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	var empty Set[string]
	s.Union(empty) // nil other is a no-op
	if s.Len() != 3 {
		t.Errorf("Len() = %d after union with nil, want 3", s.Len())
	}
}

func TestSet_Intersects(t *testing.T) {
	s := Of("a", "b")

	tests := []struct {
		name  string
		elems []string
		want  bool
	}{
		{"shared element", []string{"b", "c"}, true},
		{"no shared element", []string{"c", "d"}, false},
		{"empty slice", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Intersects(tt.elems); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.elems, got, tt.want)
			}
		})
	}

	var empty Set[string]
	if empty.Intersects([]string{"a"}) {
		t.Error("empty set should intersect nothing")
	}
}

func TestSet_Slice(t *testing.T) {
	s := Of(3, 1, 2)
	got := s.Slice()
	sort.Ints(got)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Slice() has %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
