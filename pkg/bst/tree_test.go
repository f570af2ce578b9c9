package bst

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func buildTree(values ...int) *Tree {
	tree := New()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// inorder collects the values of a subtree in ascending order
func inorder(n *Node) (values []int) {
	var stack []*Node
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, n.value)
		n = n.right
	}
	return values
}

func TestCreateTree(t *testing.T) {
	tree := CreateTree(10)
	require.NotNil(t, tree.Root())
	assert.Equal(t, 10, tree.Root().Value())
	assert.Nil(t, tree.Root().Left())
	assert.Nil(t, tree.Root().Right())
	assert.True(t, tree.Root().IsLeaf())
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, Stats{Alloc: 1}, tree.Stats())
}

func TestTree_Scenario(t *testing.T) {
	tree := CreateTree(10)
	for _, v := range []int{5, 15, 3, 7} {
		assert.True(t, tree.Insert(v))
	}

	root := tree.Root()
	assert.Equal(t, 5, root.Left().Value())
	assert.Equal(t, 15, root.Right().Value())
	assert.Equal(t, 3, root.Left().Left().Value())
	assert.Equal(t, 7, root.Left().Right().Value())

	found := tree.Search(7)
	if assert.NotNil(t, found) {
		assert.Equal(t, 7, found.Value())
	}
	assert.Nil(t, tree.Search(20))

	// leaf
	assert.True(t, tree.Delete(3))
	assert.Nil(t, tree.Root().Left().Left())

	// one child
	assert.True(t, tree.Delete(5))
	assert.Equal(t, 7, tree.Root().Left().Value())

	// two children, the successor is the right child itself
	assert.True(t, tree.Delete(10))
	assert.Equal(t, 15, tree.Root().Value())
	assert.Equal(t, 7, tree.Root().Left().Value())
	assert.Nil(t, tree.Root().Right())

	assert.False(t, tree.Insert(15))
	assert.Nil(t, tree.Root().Right())
	assert.Equal(t, 2, tree.Size())
	assert.NoError(t, tree.Validate())

	assert.Equal(t, 2, tree.Destroy())
	assert.True(t, tree.IsEmpty())
}

func TestInsertAndRemove(t *testing.T) {
	values := []int{2, 1, 3, 4, 0, 6, 6, 10, -1, 9}

	tree := New()

	for _, value := range values {
		tree.Insert(value)
	}

	assert.Equal(t, 9, tree.Size())

	seen := map[int]bool{}
	for _, value := range values {
		removed := tree.Delete(value)
		if seen[value] {
			assert.False(t, removed, "duplicated value %d is stored only once", value)
			continue
		}

		seen[value] = true
		if !removed {
			t.Fatalf("unable to remove %d", value)
		}
		assert.NoError(t, tree.Validate())
	}

	assert.True(t, tree.IsEmpty())
}

func TestMinAndMax(t *testing.T) {
	values := []int{2, 1, 3, 4, 0, 6, 7, 10, -1, 9}
	mins := []int{2, 1, 1, 1, 0, 0, 0, 0, -1, -1}
	maxs := []int{2, 2, 3, 4, 4, 6, 7, 10, 10, 10}

	tree := New()

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	for i := 0; i < len(values); i++ {
		tree.Insert(values[i])

		min, _ := tree.Min()
		if min != mins[i] {
			t.Fatalf("at %d actual %d expected %d", i, min, mins[i])
		}

		max, _ := tree.Max()
		if max != maxs[i] {
			t.Fatalf("at %d actual %d expected %d", i, max, maxs[i])
		}
	}

	for i := len(values) - 1; i > 0; i-- {
		tree.Delete(values[i])

		min, _ := tree.Min()
		if min != mins[i-1] {
			t.Fatalf("at %d actual %d expected %d", i, min, mins[i-1])
		}

		max, _ := tree.Max()
		if max != maxs[i-1] {
			t.Fatalf("at %d actual %d expected %d", i, max, maxs[i-1])
		}
	}
}

func TestTree_Insert(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		tree := New()
		assert.True(t, tree.Insert(42))
		assert.Equal(t, 42, tree.Root().Value())
		assert.Equal(t, 1, tree.Size())
	})

	t.Run("nil tree", func(t *testing.T) {
		var tree *Tree
		assert.False(t, tree.Insert(42))
		assert.True(t, tree.IsEmpty())
	})

	t.Run("duplicate keeps the shape", func(t *testing.T) {
		tree := buildTree(10, 5, 15, 3, 7)
		before := tree.Graph()
		for _, v := range []int{10, 5, 15, 3, 7} {
			assert.False(t, tree.Insert(v))
		}
		assert.Equal(t, before, tree.Graph())
		assert.Equal(t, 5, tree.Size())
		assert.Equal(t, int64(5), tree.Stats().Alloc)
	})

	t.Run("only one link changes", func(t *testing.T) {
		tree := buildTree(10, 5, 15)
		left, right := tree.Root().Left(), tree.Root().Right()
		tree.Insert(12)
		assert.Same(t, left, tree.Root().Left())
		assert.Same(t, right, tree.Root().Right())
		assert.Equal(t, 12, right.Left().Value())
		assert.Nil(t, right.Right())
	})
}

func TestTree_Search(t *testing.T) {
	tree := buildTree(50, 30, 70, 20, 40, 60, 80)
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		n := tree.Search(v)
		if assert.NotNil(t, n, "value %d", v) {
			assert.Equal(t, v, n.Value())
		}
	}

	for _, v := range []int{0, 25, 55, 100, -1} {
		assert.Nil(t, tree.Search(v), "value %d", v)
	}

	assert.Nil(t, New().Search(1))

	var nilTree *Tree
	assert.Nil(t, nilTree.Search(1))
}

func TestTree_Delete(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
		key    int
		root   int
		want   []int
		check  func(t *testing.T, tree *Tree)
	}{
		{
			name:   "leaf keeps sibling",
			values: []int{10, 5, 15, 3, 7},
			key:    3,
			root:   10,
			want:   []int{5, 7, 10, 15},
			check: func(t *testing.T, tree *Tree) {
				assert.Nil(t, tree.Root().Left().Left())
				assert.Equal(t, 7, tree.Root().Left().Right().Value())
			},
		},
		{
			name:   "root leaf",
			values: []int{10},
			key:    10,
			want:   nil,
		},
		{
			name:   "one left child",
			values: []int{10, 5, 15, 3},
			key:    5,
			root:   10,
			want:   []int{3, 10, 15},
			check: func(t *testing.T, tree *Tree) {
				assert.Equal(t, 3, tree.Root().Left().Value())
			},
		},
		{
			name:   "one right child",
			values: []int{10, 5, 15, 20, 17},
			key:    15,
			root:   10,
			want:   []int{5, 10, 17, 20},
			check: func(t *testing.T, tree *Tree) {
				assert.Equal(t, 20, tree.Root().Right().Value())
				assert.Equal(t, 17, tree.Root().Right().Left().Value())
			},
		},
		{
			name:   "root with only a left child",
			values: []int{10, 5, 3, 7},
			key:    10,
			root:   5,
			want:   []int{3, 5, 7},
		},
		{
			name:   "root with only a right child",
			values: []int{10, 15, 12},
			key:    10,
			root:   15,
			want:   []int{12, 15},
		},
		{
			name:   "two children with a deep successor",
			values: []int{10, 5, 20, 15, 25, 12, 17, 13},
			key:    10,
			root:   12,
			want:   []int{5, 12, 13, 15, 17, 20, 25},
			check: func(t *testing.T, tree *Tree) {
				// the successor's right child takes its place
				assert.Equal(t, 13, tree.Root().Right().Left().Left().Value())
			},
		},
		{
			name:   "two children below the root",
			values: []int{50, 30, 70, 20, 40, 35, 45},
			key:    30,
			root:   50,
			want:   []int{20, 35, 40, 45, 50, 70},
			check: func(t *testing.T, tree *Tree) {
				left := tree.Root().Left()
				assert.Equal(t, 35, left.Value())
				assert.Nil(t, left.Right().Left())
			},
		},
		{
			name:   "missing key",
			values: []int{10, 5, 15},
			key:    7,
			root:   10,
			want:   []int{5, 10, 15},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.values...)
			size := tree.Size()
			removed := tree.Delete(tc.key)

			assert.Equal(t, tc.want, inorder(tree.Root()))
			assert.NoError(t, tree.Validate())
			assert.Nil(t, tree.Search(tc.key))

			if removed {
				assert.Equal(t, size-1, tree.Size())
				assert.Equal(t, int64(1), tree.Stats().Free)
			} else {
				assert.Equal(t, size, tree.Size())
			}

			if len(tc.want) == 0 {
				assert.True(t, tree.IsEmpty())
			} else {
				assert.Equal(t, tc.root, tree.Root().Value())
			}

			if tc.check != nil {
				tc.check(t, tree)
			}
		})
	}
}

func TestTree_DeleteKeepsTargetNode(t *testing.T) {
	tree := buildTree(10, 5, 15, 12)
	root := tree.Root()
	assert.True(t, tree.Delete(10))
	assert.Same(t, root, tree.Root())
	assert.Equal(t, 12, root.Value())
}

func TestTree_DeleteEmpty(t *testing.T) {
	tree := New()
	assert.NotPanics(t, func() {
		assert.False(t, tree.Delete(5))
	})
	assert.True(t, tree.IsEmpty())

	var nilTree *Tree
	assert.NotPanics(t, func() {
		assert.False(t, nilTree.Delete(5))
	})
}

func TestTree_Destroy(t *testing.T) {
	tree := buildTree(10, 5, 15, 3, 7, 12, 20, 1)
	nodes := []*Node{tree.Root(), tree.Search(5), tree.Search(3)}

	assert.Equal(t, 8, tree.Destroy())
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, tree.Stats().Alloc, tree.Stats().Free)

	for _, n := range nodes {
		assert.True(t, n.IsLeaf(), "released node %d still owns children", n.Value())
	}

	// a second destroy releases nothing
	assert.Equal(t, 0, tree.Destroy())
	assert.Equal(t, int64(8), tree.Stats().Free)

	var nilTree *Tree
	assert.Equal(t, 0, nilTree.Destroy())
}

func TestTree_DestroyReleasesEveryNode(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
	}{
		{name: "root with only a left child", values: []int{15, 7}},
		{name: "root with only a right child", values: []int{7, 15}},
		{name: "left spine", values: []int{10, 5, 3, 1, 15}},
		{name: "right spine", values: []int{1, 3, 5, 10}},
		{name: "zigzag", values: []int{10, 2, 8, 4, 6}},
		{name: "full", values: []int{50, 30, 70, 20, 40, 60, 80}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.values...)
			var nodes []*Node
			for _, v := range tc.values {
				nodes = append(nodes, tree.Search(v))
			}

			assert.Equal(t, len(tc.values), tree.Destroy())
			assert.Equal(t, int64(len(tc.values)), tree.Stats().Free)
			assert.Equal(t, tree.Stats().Alloc, tree.Stats().Free)
			for _, n := range nodes {
				assert.True(t, n.IsLeaf(), "node %d still owns children", n.Value())
			}
		})
	}
}

func TestTree_DegenerateChain(t *testing.T) {
	const n = 10_000
	tree := New()
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}

	assert.Equal(t, n, tree.Size())
	assert.NotNil(t, tree.Search(n-1))
	assert.NoError(t, tree.Validate())
	assert.Equal(t, n, tree.Destroy())
}

func TestTree_RandomInsertSearchAndDelete(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tree := New()
	ref := map[int]bool{}

	for step := 0; step < 5_000; step++ {
		v := rnd.Intn(200) - 100
		if rnd.Intn(3) == 0 {
			assert.Equal(t, ref[v], tree.Delete(v), "delete %d at step %d", v, step)
			delete(ref, v)
		} else {
			assert.Equal(t, !ref[v], tree.Insert(v), "insert %d at step %d", v, step)
			ref[v] = true
		}

		require.NoError(t, tree.Validate(), "step %d", step)
	}

	var keys []int
	for k := range ref {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	assert.Equal(t, keys, inorder(tree.Root()))
	for v := -100; v < 100; v++ {
		assert.Equal(t, ref[v], tree.Search(v) != nil, "search %d", v)
	}

	stats := tree.Stats()
	assert.Equal(t, int64(len(keys)), stats.Alloc-stats.Free)
}

func TestTree_Validate(t *testing.T) {
	tree := buildTree(10, 5, 15)
	assert.NoError(t, tree.Validate())

	// break the order by hand: 12 cannot live in the left subtree of 10
	tree.Root().Left().right = &Node{value: 12}
	tree.size++
	// and 1 cannot be on the right of 10
	tree.Root().Right().left = &Node{value: 1}

	err := tree.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	assert.True(t, errors.Is(errs[0], ErrOrderViolation))
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestTree_Graph(t *testing.T) {
	assert.Equal(t, "<empty>\n", New().Graph())

	graph := buildTree(10, 5, 15, 3, 7).Graph()
	assert.Contains(t, graph, "10")
	assert.Contains(t, graph, "L 5")
	assert.Contains(t, graph, "R 15")
	assert.Contains(t, graph, "L 3")
	assert.Contains(t, graph, "R 7")
}
