package hubbub

import (
	"sync"

	"github.com/dshills/hubbub/set"
)

// Registry maps subscription ids to callbacks. Ids are allocated
// monotonically starting at 1 and are never reused within a registry's
// lifetime, so a stale id can never resolve to someone else's callback.
// It is thread-safe for concurrent access.
type Registry struct {
	mu     sync.RWMutex
	nextID uint64
	byID   map[uint64]Handler
}

// NewRegistry creates a new callback registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uint64]Handler),
	}
}

// Add stores the handler under a freshly allocated id and returns the id.
func (r *Registry) Add(h Handler) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.byID[r.nextID] = h
	return r.nextID
}

// Remove deletes the handler for id. It reports whether the id was present;
// removing an absent id is a no-op, which makes duplicate unsubscribe calls
// safe.
func (r *Registry) Remove(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	if ok {
		delete(r.byID, id)
	}
	return ok
}

// Get returns the handler for id.
func (r *Registry) Get(id uint64) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	return h, ok
}

// Handlers resolves a set of ids to their handlers. Ids removed since the set
// was computed are skipped silently: a racing unsubscribe simply wins. The
// returned slice is a snapshot, safe to iterate while callbacks re-enter the
// registry.
func (r *Registry) Handlers(ids set.Set[uint64]) []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(ids) == 0 {
		return nil
	}

	out := make([]Handler, 0, len(ids))
	for id := range ids {
		if h, ok := r.byID[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

// All returns a snapshot of every registered handler.
func (r *Registry) All() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.byID) == 0 {
		return nil
	}

	out := make([]Handler, 0, len(r.byID))
	for _, h := range r.byID {
		out = append(out, h)
	}
	return out
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// Clear removes all handlers. The id counter is not reset, so ids allocated
// after a Clear still never collide with earlier ones.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uint64]Handler)
}
