package orderedtree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/orderedtree/stack"
)

// Order is a tree traversal order.
type Order int8

// Traversal orders. Not all of them are supported, see Walk.
const (
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Supported reports whether Walk implements traversal order o.
func (o Order) Supported() bool {
	return o == InOrder || o == PreOrder
}

// Walk returns the keys of t in traversal order o.
//
// PostOrder and LevelOrder are not implemented; for these, and for every
// unknown order, Walk returns ErrUnsupportedOrder.
func (t *Tree[K]) Walk(o Order) (iter.Seq[K], error) {
	switch o {
	case InOrder:
		return t.Inorder(), nil
	case PreOrder:
		return t.Preorder(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOrder, o)
}

// All returns the keys of t in preorder. It is the default iteration of a
// tree, for callers not interested in key order.
func (t *Tree[K]) All() iter.Seq[K] {
	return t.Preorder()
}

// Inorder returns the keys of t in ascending order.
//
// Every iteration starts from the tree's current state. Modifying t while
// iterating has undefined results.
func (t *Tree[K]) Inorder() iter.Seq[K] {
	return func(yield func(K) bool) {
		var st stack.Stack[*node[K]]
		n := t.root
		for n != nil || !st.IsEmpty() {
			for ; n != nil; n = n.left {
				st.Push(n)
			}
			n, _ = st.Pop()
			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// Preorder returns the keys of t in preorder, i.e. every node's key
// preceding the keys of the node's left and then right subtree.
func (t *Tree[K]) Preorder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == nil {
			return
		}
		st := stack.New(t.root)
		for !st.IsEmpty() {
			n, _ := st.Pop()
			if !yield(n.key) {
				return
			}
			if n.right != nil {
				st.Push(n.right)
			}
			if n.left != nil {
				st.Push(n.left)
			}
		}
	}
}

// RangeFind returns all keys k of t with low ≤ k ≤ high, in ascending order.
func (t *Tree[K]) RangeFind(low, high K) []K {
	var keys []K
	for k := range t.Inorder() {
		if t.compare(k, high) > 0 {
			break
		}
		if t.compare(low, k) <= 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Successor returns the smallest key of t which is greater than key.
func (t *Tree[K]) Successor(key K) (K, bool) {
	for k := range t.Inorder() {
		if t.compare(k, key) > 0 {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Predecessor returns the largest key of t which is less than key.
func (t *Tree[K]) Predecessor(key K) (K, bool) {
	var prev K
	found := false
	for k := range t.Inorder() {
		if t.compare(k, key) >= 0 {
			break
		}
		prev, found = k, true
	}
	return prev, found
}
