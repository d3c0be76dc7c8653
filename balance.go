package orderedtree

import (
	"math"
	"slices"

	"github.com/npillmayer/orderedtree/stack"
)

// Height returns the height of t, i.e. the number of links on the longest
// path from the root to a leaf. A tree consisting of a root only has
// height 0, an empty tree has height -1.
func (t *Tree[K]) Height() int {
	if t.root == nil {
		return -1
	}
	type frame struct {
		n     *node[K]
		depth int
	}
	var st stack.Stack[frame]
	st.Push(frame{t.root, 0})
	height := 0
	for !st.IsEmpty() {
		f, _ := st.Pop()
		height = max(height, f.depth)
		if f.n.right != nil {
			st.Push(frame{f.n.right, f.depth + 1})
		}
		if f.n.left != nil {
			st.Push(frame{f.n.left, f.depth + 1})
		}
	}
	return height
}

// IsBalanced reports whether the height of t is below 2·log2(n+1)-1 for a
// tree of n nodes. This is a heuristic, intended to let clients decide
// when to call Rebalance. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	if t.root == nil {
		return true
	}
	n := t.countNodes()
	return float64(t.Height()) < 2*math.Log2(float64(n+1))-1
}

func (t *Tree[K]) countNodes() int {
	n := 0
	for range t.Preorder() {
		n++
	}
	return n
}

// Rebalance rebuilds t to minimal height. The keys of t are collected in
// order and the tree is rebuilt by recursively making the middle key of
// each key range the root of the range's subtree. For n keys the resulting
// height is ⌈log2(n+1)⌉-1.
//
// Rebalance is deterministic: rebalancing a balanced tree yields a tree of
// the same shape.
func (t *Tree[K]) Rebalance() {
	keys := slices.Collect(t.Inorder())
	before := t.Height()
	t.root = buildBalanced(keys)
	T().Infof("orderedtree: rebalanced %d keys, height %d → %d", len(keys), before, t.Height())
}

// buildBalanced creates a tree of minimal height from sorted keys.
func buildBalanced[K any](keys []K) *node[K] {
	type span struct {
		lo, hi int // key range [lo…hi)
		link   **node[K]
	}
	var root *node[K]
	var st stack.Stack[span]
	st.Push(span{0, len(keys), &root})
	for !st.IsEmpty() {
		s, _ := st.Pop()
		if s.lo >= s.hi {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		n := &node[K]{key: keys[mid]}
		*s.link = n
		st.Push(span{mid + 1, s.hi, &n.right})
		st.Push(span{s.lo, mid, &n.left})
	}
	return root
}
