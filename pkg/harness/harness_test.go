package harness

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bstree/pkg/style"
)

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()

	results := Run(logger)
	require.Len(t, results, len(steps))

	for _, r := range results {
		assert.True(t, r.Passed, "case %s (%s): %s", r.ID, r.Name, r.Message)
	}

	assert.True(t, AllPassed(results))
	assert.Empty(t, hook.AllEntries(), "passing cases are only logged at debug level")
}

func TestRun_RecoversPanic(t *testing.T) {
	saved := steps
	defer func() { steps = saved }()

	steps = []step{
		{id: "a", name: "panics", fail: "boom", check: func(s *state) bool {
			var n *struct{ v int }
			return n.v == 1
		}},
		{id: "b", name: "runs after panic", pass: "ok", check: func(s *state) bool {
			return s.tree != nil && s.tree.IsEmpty()
		}},
	}

	logger, hook := test.NewNullLogger()
	results := Run(logger)
	require.Len(t, results, 2)

	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "panic")
	assert.True(t, results[1].Passed)
	assert.False(t, AllPassed(results))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []CaseResult{
		{ID: "1", Name: "creation", Passed: true, Message: "created"},
		{ID: "2", Name: "insertion", Passed: false, Message: "insertion issue"},
	}, false)

	out := buf.String()
	assert.Contains(t, out, style.PassMark)
	assert.Contains(t, out, style.FailMark)
	assert.Contains(t, out, "insertion issue")
	assert.Contains(t, out, "1/2")
}
