package orderedtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/orderedtree/stack"
)

// String returns a drawing of t, rotated 90° counter-clockwise: the root
// is at the left margin, every level of depth is indented by "| ", and the
// right subtree of a node is printed above it.
func (t *Tree[K]) String() string {
	type frame struct {
		n     *node[K]
		depth int
	}
	var b strings.Builder
	var st stack.Stack[frame]
	n, depth := t.root, 0
	for n != nil || !st.IsEmpty() {
		for ; n != nil; n, depth = n.right, depth+1 {
			st.Push(frame{n, depth})
		}
		f, _ := st.Pop()
		b.WriteString(strings.Repeat("| ", f.depth))
		fmt.Fprintf(&b, "%v\n", f.n.key)
		n, depth = f.n.left, f.depth+1
	}
	return b.String()
}
