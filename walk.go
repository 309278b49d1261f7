package rtree

import (
	"strings"
)

// Walk visits every node in pre-order. depth is 0 for the root. Returning
// false from fn skips the node's children.
func (t *Tree[V]) Walk(fn func(n Node[V], depth int) bool) {
	if t.root != nil {
		walk(t.root, 0, fn)
	}
}

func walk[V comparable](n Node[V], depth int, fn func(Node[V], int) bool) {
	if !fn(n, depth) {
		return
	}
	if nl, ok := n.(*NonLeaf[V]); ok {
		for _, c := range nl.children {
			walk(c, depth+1, fn)
		}
	}
}

// String returns an indented dump of the tree, one line per node and
// entry. An empty tree yields "".
func (t *Tree[V]) String() string {
	var sb strings.Builder
	t.Walk(func(n Node[V], depth int) bool {
		indent := strings.Repeat("  ", depth)
		switch n := n.(type) {
		case *Leaf[V]:
			sb.WriteString(indent + "leaf mbr=" + n.mbr.String() + "\n")
			for _, e := range n.entries {
				sb.WriteString(indent + "  " + e.String() + "\n")
			}
		case *NonLeaf[V]:
			sb.WriteString(indent + "node mbr=" + n.mbr.String() + "\n")
		}
		return true
	})
	return sb.String()
}
