package bst

// Node is one element of the tree. A parent exclusively owns its children,
// nodes never point back to their parent.
type Node struct {
	value       int
	left, right *Node
}

func newNode(value int) *Node {
	return &Node{value: value}
}

func (n *Node) Value() int {
	return n.value
}

// Left returns the root of the left subtree, or nil if absent.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the root of the right subtree, or nil if absent.
func (n *Node) Right() *Node {
	return n.right
}

func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// child returns the only child of a node that has at most one child.
func (n *Node) child() *Node {
	if n.left != nil {
		return n.left
	}

	return n.right
}
