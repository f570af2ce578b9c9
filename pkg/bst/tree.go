package bst

// Stats counts the node allocations and releases done by a tree.
type Stats struct {
	Alloc int64
	Free  int64
}

// Tree is a handle to the current root of an unbalanced binary search tree
// of int keys. The zero value is an empty tree.
//
// Tree is not safe for concurrent use, callers must serialize access.
type Tree struct {
	root  *Node
	size  int
	stats Stats
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// CreateTree returns a tree with a single root node holding value.
func CreateTree(value int) *Tree {
	tree := New()
	tree.root = tree.newNode(value)
	tree.size = 1
	return tree
}

func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}

	return t.root
}

func (t *Tree) Size() int {
	if t == nil {
		return 0
	}

	return t.size
}

func (t *Tree) IsEmpty() bool {
	return t.Root() == nil
}

func (t *Tree) Stats() Stats {
	if t == nil {
		return Stats{}
	}

	return t.stats
}

// Search returns the node holding key, or nil when the key is not stored.
func (t *Tree) Search(key int) *Node {
	current := t.Root()
	for current != nil && current.value != key {
		if key < current.value {
			current = current.left
		} else {
			current = current.right
		}
	}

	return current
}

// Insert adds value to the tree and reports whether a node was added.
// Inserting a value that is already stored leaves the tree untouched.
// Inserting into an empty tree makes value the root. A nil *Tree is not a
// tree handle, so nothing is inserted.
func (t *Tree) Insert(value int) bool {
	if t == nil {
		return false
	}

	if t.root == nil {
		t.root = t.newNode(value)
		t.size++
		return true
	}

	current := t.root
	for {
		switch {
		case value < current.value:
			if current.left == nil {
				current.left = t.newNode(value)
				t.size++
				return true
			}
			current = current.left

		case value > current.value:
			if current.right == nil {
				current.right = t.newNode(value)
				t.size++
				return true
			}
			current = current.right

		default:
			// duplicated key, skip
			return false
		}
	}
}

// Delete removes key from the tree and reports whether it was stored.
// Deleting from an empty tree is a no-op.
func (t *Tree) Delete(key int) bool {
	if t == nil {
		return false
	}

	var parent *Node
	node := t.root
	for node != nil && node.value != key {
		parent = node
		if key < node.value {
			node = node.left
		} else {
			node = node.right
		}
	}

	if node == nil {
		return false
	}

	t.removeNode(parent, node)
	t.size--
	return true
}

// Min returns the smallest stored value.
func (t *Tree) Min() (int, bool) {
	min, _ := minNode(t.Root())
	if min == nil {
		return 0, false
	}

	return min.value, true
}

// Max returns the largest stored value.
func (t *Tree) Max() (int, bool) {
	max, _ := maxNode(t.Root())
	if max == nil {
		return 0, false
	}

	return max.value, true
}

// Destroy releases every node of the tree in post-order and leaves the tree
// empty. It returns the number of released nodes, so a second call returns 0.
func (t *Tree) Destroy() int {
	if t == nil || t.root == nil {
		return 0
	}

	// order holds the nodes in reverse post-order: every parent comes
	// before its children
	var order []*Node
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, node)

		if node.left != nil {
			stack = append(stack, node.left)
		}

		if node.right != nil {
			stack = append(stack, node.right)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		t.release(order[i])
	}

	released := len(order)
	t.root = nil
	t.size = 0
	return released
}

func (t *Tree) newNode(value int) *Node {
	t.stats.Alloc++
	return newNode(value)
}

// release detaches the node from its children
func (t *Tree) release(n *Node) {
	n.left = nil
	n.right = nil
	t.stats.Free++
}
