package hubbub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hubbub/set"
)

func nopHandler() Handler {
	return HandlerFunc(func(context.Context, any) error { return nil })
}

func TestRegistry_MonotonicIDs(t *testing.T) {
	r := NewRegistry()

	first := r.Add(nopHandler())
	second := r.Add(nopHandler())
	require.Equal(t, uint64(1), first, "ids start at 1")
	require.Equal(t, uint64(2), second)

	// Removal never frees an id for reuse.
	r.Remove(second)
	third := r.Add(nopHandler())
	assert.Equal(t, uint64(3), third)
}

func TestRegistry_RemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	id := r.Add(nopHandler())

	assert.True(t, r.Remove(id))
	assert.False(t, r.Remove(id), "second remove is a no-op")
	assert.False(t, r.Remove(999), "unknown id is a no-op")
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_Handlers(t *testing.T) {
	r := NewRegistry()
	a := r.Add(nopHandler())
	b := r.Add(nopHandler())
	c := r.Add(nopHandler())

	got := r.Handlers(set.Of(a, b, c))
	assert.Len(t, got, 3)

	// Ids removed after the match set was computed are skipped silently.
	r.Remove(b)
	got = r.Handlers(set.Of(a, b, c))
	assert.Len(t, got, 2)

	assert.Nil(t, r.Handlers(nil))
}

func TestRegistry_ClearKeepsCounter(t *testing.T) {
	r := NewRegistry()
	r.Add(nopHandler())
	r.Add(nopHandler())

	r.Clear()
	require.Equal(t, 0, r.Count())

	// Ids allocated after Clear still never collide with earlier ones.
	assert.Equal(t, uint64(3), r.Add(nopHandler()))
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	id := r.Add(nopHandler())

	_, ok := r.Get(id)
	assert.True(t, ok)
	_, ok = r.Get(id + 1)
	assert.False(t, ok)
}
