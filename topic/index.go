package topic

import (
	"sync"

	"github.com/dshills/hubbub/set"
)

// Index is a thread-safe trie mapping topic combinations to subscription ids.
// It has one level per dimension: children are keyed by topic string and ids
// are stored only at depth-N nodes, so a subscription is reachable exactly
// along the combinations of topics it registered for.
type Index struct {
	mu   sync.RWMutex
	dims int
	root *indexNode
}

// indexNode represents one node in the index trie.
type indexNode struct {
	children map[Topic]*indexNode
	ids      set.Set[uint64] // ids terminating at this node; non-empty only at depth dims
}

// newIndexNode creates a new index node.
func newIndexNode() *indexNode {
	return &indexNode{
		children: make(map[Topic]*indexNode),
	}
}

// isEmpty returns true if the node has no children and no ids.
func (n *indexNode) isEmpty() bool {
	return len(n.children) == 0 && len(n.ids) == 0
}

// NewIndex creates an index routing on dims dimensions. dims must be at
// least 1; smaller values are clamped.
func NewIndex(dims int) *Index {
	if dims < 1 {
		dims = 1
	}
	return &Index{
		dims: dims,
		root: newIndexNode(),
	}
}

// Dims returns the number of dimensions the index routes on.
func (ix *Index) Dims() int {
	return ix.dims
}

// Insert registers id under every combination of one topic per dimension.
// Repeated topics within a dimension collapse onto the same child, so Insert
// is idempotent. A dimension with no topics creates no path: the subscription
// can never match (an empty set is not a wildcard).
//
// Insert is a no-op when len(sets) differs from the index's dimension count;
// callers validate arity before reaching the index.
func (ix *Index) Insert(id uint64, sets ...[]Topic) {
	if len(sets) != ix.dims {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.insert(ix.root, sets, id)
}

// insert performs the recursive descent for Insert.
func (ix *Index) insert(n *indexNode, sets [][]Topic, id uint64) {
	if len(sets) == 0 {
		if n.ids == nil {
			n.ids = set.Of(id)
			return
		}
		n.ids.Add(id)
		return
	}

	for _, t := range sets[0] {
		child := n.children[t]
		if child == nil {
			child = newIndexNode()
			n.children[t] = child
		}
		ix.insert(child, sets[1:], id)
	}
}

// Remove deletes id from every terminal node reachable through sets, pruning
// nodes left with no ids and no children on the way back up. Paths that were
// never inserted are skipped silently, so Remove is safe to call with topic
// sets that do not correspond to any registration.
func (ix *Index) Remove(id uint64, sets ...[]Topic) {
	if len(sets) != ix.dims {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.remove(ix.root, sets, id)
}

// remove performs the mirror descent for Remove, pruning bottom-up.
func (ix *Index) remove(n *indexNode, sets [][]Topic, id uint64) {
	if len(sets) == 0 {
		n.ids.Delete(id)
		return
	}

	for _, t := range sets[0] {
		child := n.children[t]
		if child == nil {
			continue // path never inserted
		}
		ix.remove(child, sets[1:], id)
		if child.isEmpty() {
			delete(n.children, t)
		}
	}
}

// Match returns the ids of every subscription whose registered topic set
// intersects the query's topic list in all dimensions. The wildcard on either
// side counts as an unconditional intersection for its dimension. An empty
// query list at any dimension matches nothing, and a query with the wrong
// number of dimensions matches nothing.
//
// The returned set is freshly allocated and owned by the caller.
func (ix *Index) Match(query ...[]Topic) set.Set[uint64] {
	matched := make(set.Set[uint64])
	if len(query) != ix.dims {
		return matched
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	ix.match(ix.root, query, matched)
	return matched
}

// match walks every candidate continuation at each level, collecting ids at
// the deepest level. The trie's nesting encodes the AND across dimensions: a
// path only exists for topic combinations some subscription registered.
func (ix *Index) match(n *indexNode, query [][]Topic, matched set.Set[uint64]) {
	if len(query) == 0 {
		matched.Union(n.ids)
		return
	}
	for _, child := range candidates(n, query[0]) {
		ix.match(child, query[1:], matched)
	}
}

// candidates returns the children consistent with a non-empty intersection at
// this level: the child named after each query topic, the wildcard child
// (a wildcard subscriber matches any query topic), and every child when the
// query list itself contains the wildcard. Each child appears at most once so
// no subtree is walked twice.
func candidates(n *indexNode, topics []Topic) []*indexNode {
	if len(topics) == 0 {
		return nil // no topics supplied never matches
	}

	seen := make(map[*indexNode]struct{}, len(topics)+1)
	out := make([]*indexNode, 0, len(topics)+1)
	add := func(c *indexNode) {
		if c == nil {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, t := range topics {
		if t == Wildcard {
			for _, c := range n.children {
				add(c)
			}
			continue
		}
		add(n.children[t])
	}
	add(n.children[Wildcard])

	return out
}

// Clear drops every registration.
func (ix *Index) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.root = newIndexNode()
}

// NodeCount returns the total number of trie nodes including the root. It is
// useful for verifying that removal prunes what insertion built.
func (ix *Index) NodeCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	count := 0
	countNodes(ix.root, &count)
	return count
}

// countNodes recursively counts nodes in the trie.
func countNodes(n *indexNode, count *int) {
	if n == nil {
		return
	}
	*count++
	for _, child := range n.children {
		countNodes(child, count)
	}
}

// IDs returns every id currently registered in the index.
func (ix *Index) IDs() set.Set[uint64] {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	ids := make(set.Set[uint64])
	collectIDs(ix.root, ids)
	return ids
}

// collectIDs recursively gathers ids from the trie.
func collectIDs(n *indexNode, ids set.Set[uint64]) {
	if n == nil {
		return
	}
	ids.Union(n.ids)
	for _, child := range n.children {
		collectIDs(child, ids)
	}
}
