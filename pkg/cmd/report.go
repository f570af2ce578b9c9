package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/bstree/pkg/metrics"
	"github.com/c9s/bstree/pkg/script"
	"github.com/c9s/bstree/pkg/style"
)

func renderReport(w io.Writer, report *script.Report, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.TableStyle(withColor))
	t.AppendHeader(table.Row{"line", "op", "result", "detail"})

	for _, step := range report.Steps {
		detail := step.Detail
		if step.Err != nil {
			detail = step.Err.Error()
		}

		line := ""
		if step.Op.Line > 0 {
			line = fmt.Sprint(step.Op.Line)
		}

		t.AppendRow(table.Row{line, step.Op.String(), style.ResultMark(step.Passed(), withColor), detail})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d failed", report.Failures), ""})
	t.Render()
}

func renderMetrics(w io.Writer, samples []metrics.Sample, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.TableStyle(withColor))
	t.AppendHeader(table.Row{"metric", "labels", "value"})

	for _, s := range samples {
		t.AppendRow(table.Row{s.Name, formatLabels(s.Labels), s.Value})
	}

	t.Render()
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + labels[k]
	}

	return strings.Join(pairs, ",")
}
