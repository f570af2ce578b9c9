package bst

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// bound is the open interval every value of a subtree must fall into. A nil
// limit means the side is unbounded.
type bound struct {
	node   *Node
	lo, hi *int
}

func (b bound) contains(v int) bool {
	return (b.lo == nil || v > *b.lo) && (b.hi == nil || v < *b.hi)
}

// Validate walks the whole tree and returns every violation of the ordering
// invariant it finds, combined into one error. It returns nil for a valid
// tree, including the empty one.
func (t *Tree) Validate() (err error) {
	if t == nil {
		return nil
	}

	count := 0
	stack := []bound{{node: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := b.node
		if n == nil {
			continue
		}

		count++

		if !b.contains(n.value) {
			err = multierr.Append(err, errors.Wrapf(ErrOrderViolation,
				"value %d is out of its subtree range (%s, %s)", n.value, limit(b.lo), limit(b.hi)))
		}

		stack = append(stack,
			bound{node: n.right, lo: &n.value, hi: b.hi},
			bound{node: n.left, lo: b.lo, hi: &n.value},
		)
	}

	if count != t.size {
		err = multierr.Append(err, errors.Wrapf(ErrSizeMismatch,
			"counted %d nodes, tree size is %d", count, t.size))
	}

	return err
}

func limit(v *int) string {
	if v == nil {
		return "inf"
	}

	return strconv.Itoa(*v)
}
