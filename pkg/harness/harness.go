// Package harness replays the acceptance scenario of the tree: creation,
// insertion, search, the three deletion cases, duplicate insertion, deletion
// from an empty tree and teardown.
package harness

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bstree/pkg/bst"
	"github.com/c9s/bstree/pkg/style"
)

type CaseResult struct {
	ID      string
	Name    string
	Passed  bool
	Message string
}

type step struct {
	id, name string
	pass     string
	fail     string
	check    func(s *state) bool
}

// state is shared by the steps, they run in order on the same tree
type state struct {
	tree   *bst.Tree
	result *bst.Node
	size   int
}

var steps = []step{
	{
		id: "1", name: "basic tree creation",
		pass: "tree created successfully", fail: "tree creation issue",
		check: func(s *state) bool {
			s.tree = bst.CreateTree(10)
			root := s.tree.Root()
			return root != nil && root.Value() == 10 && root.IsLeaf()
		},
	},
	{
		id: "2", name: "insertion",
		pass: "insertion works correctly", fail: "insertion issue",
		check: func(s *state) bool {
			for _, v := range []int{5, 15, 3, 7} {
				s.tree.Insert(v)
			}

			root := s.tree.Root()
			return value(root.Left()) == 5 && value(root.Right()) == 15 &&
				value(root.Left().Left()) == 3 && value(root.Left().Right()) == 7
		},
	},
	{
		id: "3.1", name: "search existing",
		pass: "found existing element 7", fail: "could not find element 7",
		check: func(s *state) bool {
			s.result = s.tree.Search(7)
			return s.result != nil && s.result.Value() == 7
		},
	},
	{
		id: "3.2", name: "search missing",
		pass: "correctly identified missing element 20", fail: "incorrectly found non-existent element",
		check: func(s *state) bool {
			s.result = s.tree.Search(20)
			return s.result == nil
		},
	},
	{
		id: "4.1", name: "delete leaf",
		pass: "leaf node deleted successfully", fail: "leaf node deletion issue",
		check: func(s *state) bool {
			s.tree.Delete(3)
			return s.tree.Root().Left().Left() == nil
		},
	},
	{
		id: "4.2", name: "delete node with one child",
		pass: "node with one child deleted successfully", fail: "node with one child deletion issue",
		check: func(s *state) bool {
			s.tree.Delete(5)
			return value(s.tree.Root().Left()) == 7
		},
	},
	{
		id: "4.3", name: "delete node with two children",
		pass: "node with two children deleted successfully", fail: "node with two children deletion issue",
		check: func(s *state) bool {
			s.tree.Delete(10)
			return value(s.tree.Root()) == 15
		},
	},
	{
		id: "5.1", name: "duplicate insertion",
		pass: "duplicate elements not inserted", fail: "duplicate insertion issue",
		check: func(s *state) bool {
			s.size = s.tree.Size()
			s.tree.Insert(15)
			right := s.tree.Root().Right()
			return (right == nil || right.Value() != 15) && s.tree.Size() == s.size
		},
	},
	{
		id: "5.2", name: "delete from empty tree",
		pass: "deleting from empty tree did not crash", fail: "deleting from empty tree changed the tree",
		check: func(s *state) bool {
			var empty *bst.Tree
			empty.Delete(5)

			fresh := bst.New()
			fresh.Delete(5)
			return empty.IsEmpty() && fresh.IsEmpty()
		},
	},
	{
		id: "6", name: "destroy tree",
		pass: "tree destroyed successfully", fail: "tree destruction issue",
		check: func(s *state) bool {
			released := s.tree.Destroy()
			stats := s.tree.Stats()
			return released == s.size && s.tree.IsEmpty() && stats.Alloc == stats.Free
		},
	},
}

// value returns the value of n, or a sentinel for an absent node so that
// shape checks on missing children fail instead of panicking
func value(n *bst.Node) interface{} {
	if n == nil {
		return nil
	}

	return n.Value()
}

// Run executes every case in order. A case that panics is reported as failed
// and the remaining cases still run on a fresh state.
func Run(logger logrus.FieldLogger) []CaseResult {
	s := &state{}

	var results []CaseResult
	for _, st := range steps {
		passed, err := runStep(st, s)
		r := CaseResult{ID: st.id, Name: st.name, Passed: passed, Message: st.pass}
		if !passed {
			r.Message = st.fail
		}
		if err != nil {
			r.Message = fmt.Sprintf("%s: %v", st.fail, err)
			s = &state{tree: bst.New()}
		}

		log := logger.WithFields(logrus.Fields{"case": st.id, "passed": passed})
		if passed {
			log.Debug(r.Message)
		} else {
			log.Warn(r.Message)
		}

		results = append(results, r)
	}

	return results
}

func runStep(st step, s *state) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = errors.Errorf("panic: %v", r)
		}
	}()

	return st.check(s), nil
}

// AllPassed reports whether every case passed.
func AllPassed(results []CaseResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}

	return true
}

// Render writes the results as a table.
func Render(w io.Writer, results []CaseResult, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.TableStyle(withColor))
	t.AppendHeader(table.Row{"case", "name", "result", "message"})

	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}

		t.AppendRow(table.Row{r.ID, r.Name, style.ResultMark(r.Passed, withColor), r.Message})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d/%d", passed, len(results)), ""})
	t.Render()
}
