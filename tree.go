package orderedtree

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/orderedtree/collection"
)

// node is a tree node. Every node is owned by exactly one parent, the root
// node is owned by the tree.
type node[K any] struct {
	key         K
	left, right *node[K]
}

// Tree is a binary search tree of keys of type K.
//
// The zero value is not usable; create trees with New, NewFunc or From.
type Tree[K any] struct {
	size    collection.Counter
	cfg     Config
	compare func(a, b K) int
	root    *node[K]
}

var _ collection.Collection = (*Tree[int])(nil)
var _ collection.Adder[int] = (*Tree[int])(nil)

// New creates an empty tree for an ordered key type.
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc creates an empty tree ordered by compare, which has to return a
// negative number for a < b, zero for a == b and a positive number for a > b.
//
// NewFunc panics if compare is nil or opts yield an invalid configuration; the
// panic value of the latter is an error wrapping ErrInvalidConfig.
func NewFunc[K any](compare func(a, b K) int, opts ...Option) *Tree[K] {
	if compare == nil {
		panic("orderedtree: compare function is required")
	}
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return &Tree[K]{
		cfg:     cfg.normalized(),
		compare: compare,
	}
}

// From creates a tree containing keys, inserted in the given order.
func From[K cmp.Ordered](keys ...K) *Tree[K] {
	t := New[K]()
	// without a depth budget, Add never fails
	_ = collection.AddSlice[K](t, keys...)
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// Len returns the number of keys stored in t.
func (t *Tree[K]) Len() int {
	return t.size.Len()
}

// IsEmpty reports whether t holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.size.IsEmpty()
}

// Clear makes t empty.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size.Reset()
}

// Find returns the stored key equal to key, if present.
func (t *Tree[K]) Find(key K) (K, bool) {
	for n := t.root; n != nil; {
		c := t.compare(key, n.key)
		switch {
		case c == 0:
			return n.key, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero K
	return zero, false
}

// Contains reports whether a key equal to key is stored in t.
func (t *Tree[K]) Contains(key K) bool {
	_, found := t.Find(key)
	return found
}

// Add inserts key. Keys equal to an existing key are inserted into the
// right subtree of the existing one.
//
// Add fails with ErrDepthExceeded if t has a depth budget and the new node
// would be placed below it. t is unchanged in this case.
func (t *Tree[K]) Add(key K) error {
	link, depth := &t.root, 0
	for *link != nil {
		n := *link
		if t.compare(key, n.key) < 0 {
			link = &n.left
		} else {
			link = &n.right
		}
		depth++
	}
	if t.cfg.exceeds(depth) {
		return fmt.Errorf("%w: node would be placed at depth %d, budget is %d",
			ErrDepthExceeded, depth, t.cfg.MaxDepth)
	}
	*link = &node[K]{key: key}
	t.size.Inc()
	return nil
}

// Remove deletes a key equal to key and returns the stored key.
// It returns ErrKeyNotFound if no such key is present.
//
// A node with two children is not unlinked. Instead it takes over the key
// of its in-order predecessor, i.e. the maximum of its left subtree, and
// the predecessor's node is unlinked.
func (t *Tree[K]) Remove(key K) (K, error) {
	if !t.Contains(key) {
		var zero K
		return zero, fmt.Errorf("%w: cannot remove %v", ErrKeyNotFound, key)
	}
	link, _, _ := t.locate(key)
	removed := (*link).key
	t.unlink(link)
	T().Debugf("orderedtree: removed %v, %d keys left", removed, t.Len())
	return removed, nil
}

// Replace overwrites a stored key equal to key with newKey and returns the
// key replaced. It returns false if no such key is present.
//
// If newKey keeps its node's position in key order, the node is updated in
// place. Otherwise the node is removed and newKey is inserted anew, without
// respecting the depth budget of t.
func (t *Tree[K]) Replace(key, newKey K) (K, bool) {
	link, lower, upper := t.locate(key)
	if *link == nil {
		var zero K
		return zero, false
	}
	n := *link
	old := n.key
	if n.left != nil {
		lower = maxNode(n.left)
	}
	if n.right != nil {
		upper = minNode(n.right)
	}
	if (lower == nil || t.compare(lower.key, newKey) <= 0) &&
		(upper == nil || t.compare(newKey, upper.key) <= 0) {
		n.key = newKey
		return old, true
	}
	T().Debugf("orderedtree: replacing %v by %v moves its node", old, newKey)
	t.unlink(link)
	t.insertUnbounded(newKey)
	return old, true
}

// locate returns the link which points to the first node found for key, or
// the vacant link where the search ended. lower and upper are the nearest
// ancestors bounding the located node from below and above, i.e. its
// in-order neighbours among its ancestors. Either may be nil.
func (t *Tree[K]) locate(key K) (link **node[K], lower, upper *node[K]) {
	link = &t.root
	for *link != nil {
		n := *link
		c := t.compare(key, n.key)
		if c == 0 {
			break
		}
		if c < 0 {
			upper = n
			link = &n.left
		} else {
			lower = n
			link = &n.right
		}
	}
	return link, lower, upper
}

// unlink removes the node *link points to and decrements the size of t.
func (t *Tree[K]) unlink(link **node[K]) {
	n := *link
	switch {
	case n.left != nil && n.right != nil:
		liftMaxOfLeftSubtree(n)
	case n.left == nil:
		*link = n.right
	default:
		*link = n.left
	}
	t.size.Dec()
}

// liftMaxOfLeftSubtree replaces top's key with the maximum key of its left
// subtree and unlinks the node which held that maximum.
// top must have a left child.
func liftMaxOfLeftSubtree[K any](top *node[K]) {
	parent, maxN := top, top.left
	for maxN.right != nil {
		parent, maxN = maxN, maxN.right
	}
	top.key = maxN.key
	if parent == top {
		top.left = maxN.left
	} else {
		parent.right = maxN.left
	}
}

func (t *Tree[K]) insertUnbounded(key K) {
	link := &t.root
	for *link != nil {
		if n := *link; t.compare(key, n.key) < 0 {
			link = &n.left
		} else {
			link = &n.right
		}
	}
	*link = &node[K]{key: key}
	t.size.Inc()
}

func minNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
