package orderedtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/orderedtree/stack"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// A node with a single child gets an empty placeholder node for its
// missing child, to tell left and right children apart.
func Tree2Dot[K any](t *Tree[K], w io.Writer) error {
	ids := newtable[K]()
	var nodes, edges strings.Builder
	if t.root != nil {
		st := stack.New(t.root)
		for !st.IsEmpty() {
			n, _ := st.Pop()
			ID := ids.alloc(n)
			fmt.Fprintf(&nodes, "\"%d\" [label=\"%v\" %s];\n", ID, n.key, nodeDotStyles(n))
			if n.left == nil && n.right == nil {
				continue
			}
			for _, child := range [2]*node[K]{n.left, n.right} {
				if child == nil {
					nilid := -ID
					fmt.Fprintf(&nodes, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", ID, nilid)
					continue
				}
				fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
			if n.right != nil {
				st.Push(n.right)
			}
			if n.left != nil {
				st.Push(n.left)
			}
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodes.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edges.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[K any](n *node[K]) string {
	s := ",style=filled,shape=circle"
	if n.left == nil && n.right == nil {
		s += ",fillcolor=\"#CCDDFF\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
