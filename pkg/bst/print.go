package bst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Graph renders the tree structure, each child prefixed by its side.
func (t *Tree) Graph() string {
	if t.IsEmpty() {
		return "<empty>\n"
	}

	type branch struct {
		node  *Node
		graph treeprint.Tree
	}

	root := treeprint.NewWithRoot(t.root.value)
	stack := []branch{{node: t.root, graph: root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.node.left != nil {
			stack = append(stack, branch{
				node:  b.node.left,
				graph: b.graph.AddBranch(fmt.Sprintf("L %d", b.node.left.value)),
			})
		}

		if b.node.right != nil {
			stack = append(stack, branch{
				node:  b.node.right,
				graph: b.graph.AddBranch(fmt.Sprintf("R %d", b.node.right.value)),
			})
		}
	}

	return root.String()
}

func (t *Tree) Print(w io.Writer) {
	fmt.Fprint(w, t.Graph())
}
