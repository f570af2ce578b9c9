package bst

// removeNode unlinks node, whose parent is parent (nil for the root).
//
// A node with two children keeps its place in the tree: it takes the value of
// its in-order successor and the successor, which has no left child, is
// removed instead.
func (t *Tree) removeNode(parent, node *Node) {
	if node.left != nil && node.right != nil {
		min, minParent := minNode(node.right)
		if minParent == nil {
			minParent = node
		}

		node.value = min.value
		t.removeNode(minParent, min)
		return
	}

	child := node.child()
	if parent == nil {
		t.root = child
	} else if parent.left == node {
		parent.left = child
	} else {
		parent.right = child
	}

	t.release(node)
}

// minNode returns the leftmost node of the subtree and its parent. The parent
// is nil when root itself is the minimum.
func minNode(root *Node) (*Node, *Node) {
	if root == nil {
		return nil, nil
	}

	var parent *Node
	node := root

	for node.left != nil {
		parent = node
		node = node.left
	}

	return node, parent
}

// maxNode returns the rightmost node of the subtree and its parent.
func maxNode(root *Node) (*Node, *Node) {
	if root == nil {
		return nil, nil
	}

	var parent *Node
	node := root

	for node.right != nil {
		parent = node
		node = node.right
	}

	return node, parent
}
