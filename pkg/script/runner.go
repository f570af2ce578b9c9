package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/c9s/bstree/pkg/bst"
	"github.com/c9s/bstree/pkg/metrics"
)

// StepResult is the outcome of one executed op.
type StepResult struct {
	Op     Op
	Detail string
	Err    error
}

func (r StepResult) Passed() bool {
	return r.Err == nil
}

type Report struct {
	Steps    []StepResult
	Failures int
}

// Runner executes script ops against a tree.
type Runner struct {
	// Name labels the tree in metrics
	Name string

	Tree   *bst.Tree
	Logger logrus.FieldLogger

	// Output receives the graphs of print ops, nil discards them
	Output io.Writer

	// StopOnFailure aborts the run at the first failed expectation
	StopOnFailure bool
}

func NewRunner(name string, logger logrus.FieldLogger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Runner{
		Name:   name,
		Tree:   bst.New(),
		Logger: logger.WithField("tree", name),
	}
}

// Run executes ops in order. Failed expectations are recorded in the report;
// with StopOnFailure the first one is also returned as the error.
func (r *Runner) Run(ops []Op) (*Report, error) {
	if r.Tree == nil {
		r.Tree = bst.New()
	}

	if r.Logger == nil {
		r.Logger = logrus.StandardLogger()
	}

	report := &Report{}
	for _, op := range ops {
		detail, err := r.exec(op)
		if errors.Is(err, ErrUnknownOp) || errors.Is(err, ErrBadArgument) {
			return report, err
		}

		report.Steps = append(report.Steps, StepResult{Op: op, Detail: detail, Err: err})

		log := r.Logger.WithField("op", op.String())
		if err != nil {
			report.Failures++
			log.WithError(err).Warn("step failed")
			if r.StopOnFailure {
				return report, err
			}
		} else {
			log.Debugf("step done: %s", detail)
		}
	}

	return report, nil
}

func (r *Runner) exec(op Op) (string, error) {
	if err := op.Validate(); err != nil {
		return "", err
	}

	defer r.observeSize()

	switch op.Type {
	case OpCreate:
		r.Tree.Destroy()
		r.Tree = bst.CreateTree(op.Values[0])
		r.count(op.Type, metrics.ResultOK)
		return fmt.Sprintf("created tree with root %d", op.Values[0]), nil

	case OpInsert:
		inserted := 0
		for _, v := range op.Values {
			if r.Tree.Insert(v) {
				inserted++
				r.count(op.Type, metrics.ResultOK)
			} else {
				r.count(op.Type, metrics.ResultNoop)
			}
		}
		return fmt.Sprintf("inserted %d, skipped %d", inserted, len(op.Values)-inserted), nil

	case OpDelete:
		deleted := 0
		for _, v := range op.Values {
			if r.Tree.Delete(v) {
				deleted++
				r.count(op.Type, metrics.ResultOK)
			} else {
				r.count(op.Type, metrics.ResultNoop)
			}
		}
		return fmt.Sprintf("deleted %d, missing %d", deleted, len(op.Values)-deleted), nil

	case OpSearch:
		var found, missing []string
		for _, v := range op.Values {
			if r.Tree.Search(v) != nil {
				found = append(found, strconv.Itoa(v))
				r.count(op.Type, metrics.ResultFound)
			} else {
				missing = append(missing, strconv.Itoa(v))
				r.count(op.Type, metrics.ResultNotFound)
			}
		}
		return fmt.Sprintf("found [%s], missing [%s]", strings.Join(found, " "), strings.Join(missing, " ")), nil

	case OpDestroy:
		released := r.Tree.Destroy()
		r.count(op.Type, metrics.ResultOK)
		return fmt.Sprintf("released %d nodes", released), nil

	case OpPrint:
		if r.Output != nil {
			r.Tree.Print(r.Output)
		}
		return fmt.Sprintf("%d nodes", r.Tree.Size()), nil

	case OpCheck:
		return r.expect(op.Type, invalidTree(r.Tree.Validate()), "tree is valid")

	case OpExpectRoot:
		return r.expect(op.Type, r.expectRoot(op.Values), "root matches")

	case OpExpectFound, OpExpectMissing:
		want := op.Type == OpExpectFound
		for _, v := range op.Values {
			if got := r.Tree.Search(v) != nil; got != want {
				return r.expect(op.Type, errors.Wrapf(ErrExpectationFailed, "value %d: found = %v, want %v", v, got, want), "")
			}
		}
		return r.expect(op.Type, nil, "all values matched")

	case OpExpectSize:
		var err error
		if size := r.Tree.Size(); size != op.Values[0] {
			err = errors.Wrapf(ErrExpectationFailed, "size = %d, want %d", size, op.Values[0])
		}
		return r.expect(op.Type, err, "size matches")
	}

	return "", errors.Wrapf(ErrUnknownOp, "%q", op.Type)
}

// invalidTree marks a validation error as a failed expectation, keeping the
// validation causes reachable with errors.Is.
func invalidTree(err error) error {
	if err == nil {
		return nil
	}

	return multierr.Append(errors.Wrap(ErrExpectationFailed, "invalid tree"), err)
}

func (r *Runner) expectRoot(values []int) error {
	root := r.Tree.Root()
	if len(values) == 0 {
		if root != nil {
			return errors.Wrapf(ErrExpectationFailed, "root = %d, want an empty tree", root.Value())
		}
		return nil
	}

	if root == nil {
		return errors.Wrapf(ErrExpectationFailed, "tree is empty, want root %d", values[0])
	}

	if root.Value() != values[0] {
		return errors.Wrapf(ErrExpectationFailed, "root = %d, want %d", root.Value(), values[0])
	}

	return nil
}

func (r *Runner) expect(op OpType, err error, detail string) (string, error) {
	if err != nil {
		r.count(op, metrics.ResultFailed)
		return "", err
	}

	r.count(op, metrics.ResultPassed)
	return detail, nil
}

func (r *Runner) count(op OpType, result string) {
	metrics.TreeOperationsTotal.WithLabelValues(r.Name, string(op), result).Inc()
}

func (r *Runner) observeSize() {
	metrics.TreeNodes.WithLabelValues(r.Name).Set(float64(r.Tree.Size()))
}
