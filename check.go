package orderedtree

import (
	"fmt"

	"github.com/npillmayer/orderedtree/stack"
)

// Check validates structural tree invariants: every key in the left subtree
// of a node is less than or equal to the node's key, every key in the right
// subtree is greater or equal, and the size of t matches the number of its
// nodes.
//
// Equal keys may end up in a node's left subtree after a removal or a
// rebalance, therefore the left bound is not strict.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if !t.IsEmpty() {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvalidTree, t.Len())
		}
		return nil
	}
	type frame struct {
		n            *node[K]
		lower, upper *node[K] // nil means unbounded
	}
	var st stack.Stack[frame]
	st.Push(frame{n: t.root})
	count := 0
	for !st.IsEmpty() {
		f, _ := st.Pop()
		if count++; count > t.Len() {
			return fmt.Errorf("%w: more nodes than size %d", ErrInvalidTree, t.Len())
		}
		if f.lower != nil && t.compare(f.lower.key, f.n.key) > 0 {
			return fmt.Errorf("%w: key %v in right subtree of %v", ErrInvalidTree, f.n.key, f.lower.key)
		}
		if f.upper != nil && t.compare(f.n.key, f.upper.key) > 0 {
			return fmt.Errorf("%w: key %v in left subtree of %v", ErrInvalidTree, f.n.key, f.upper.key)
		}
		if f.n.right != nil {
			st.Push(frame{f.n.right, f.n, f.upper})
		}
		if f.n.left != nil {
			st.Push(frame{f.n.left, f.lower, f.n})
		}
	}
	if count != t.Len() {
		return fmt.Errorf("%w: size %d, but %d nodes", ErrInvalidTree, t.Len(), count)
	}
	return nil
}
