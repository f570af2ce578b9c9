package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownOp         = errors.New("unknown op")
	ErrBadArgument       = errors.New("bad argument")
	ErrExpectationFailed = errors.New("expectation failed")
)

type OpType string

const (
	OpCreate        OpType = "create"
	OpInsert        OpType = "insert"
	OpDelete        OpType = "delete"
	OpSearch        OpType = "search"
	OpDestroy       OpType = "destroy"
	OpCheck         OpType = "check"
	OpPrint         OpType = "print"
	OpExpectRoot    OpType = "expect-root"
	OpExpectFound   OpType = "expect-found"
	OpExpectMissing OpType = "expect-missing"
	OpExpectSize    OpType = "expect-size"
)

// valueRange is the accepted number of values of an op, max < 0 means
// unlimited.
type valueRange struct{ min, max int }

func (r valueRange) String() string {
	switch {
	case r.max < 0:
		return fmt.Sprintf("at least %d value(s)", r.min)
	case r.min == r.max:
		return fmt.Sprintf("exactly %d value(s)", r.min)
	}

	return fmt.Sprintf("%d to %d value(s)", r.min, r.max)
}

var arity = map[OpType]valueRange{
	OpCreate:        {1, 1},
	OpInsert:        {1, -1},
	OpDelete:        {1, -1},
	OpSearch:        {1, -1},
	OpDestroy:       {0, 0},
	OpCheck:         {0, 0},
	OpPrint:         {0, 0},
	OpExpectRoot:    {0, 1},
	OpExpectFound:   {1, -1},
	OpExpectMissing: {1, -1},
	OpExpectSize:    {1, 1},
}

// Op is one step of a script. For expect-root, no value means the tree is
// expected to be empty.
type Op struct {
	Type   OpType `yaml:"op"`
	Values []int  `yaml:"values,omitempty"`

	// Value is a shorthand of a single element Values in YAML scripts
	Value *int `yaml:"value,omitempty"`

	// Line is the 1-based source line of the op, 0 when unknown
	Line int `yaml:"-"`
}

func (op Op) String() string {
	if len(op.Values) == 0 {
		return string(op.Type)
	}

	s := make([]string, len(op.Values))
	for i, v := range op.Values {
		s[i] = strconv.Itoa(v)
	}

	return string(op.Type) + " " + strings.Join(s, " ")
}

// Validate checks the op type and the number of its values.
func (op *Op) Validate() error {
	if op.Value != nil {
		op.Values = append([]int{*op.Value}, op.Values...)
		op.Value = nil
	}

	a, ok := arity[op.Type]
	if !ok {
		return errors.Wrapf(ErrUnknownOp, "%s%q", linePrefix(op.Line), op.Type)
	}

	n := len(op.Values)
	if n < a.min || (a.max >= 0 && n > a.max) {
		return errors.Wrapf(ErrBadArgument, "%s%s takes %s, got %d", linePrefix(op.Line), op.Type, a, n)
	}

	return nil
}

func linePrefix(line int) string {
	if line == 0 {
		return ""
	}

	return fmt.Sprintf("line %d: ", line)
}
