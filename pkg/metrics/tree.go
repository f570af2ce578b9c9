package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	ResultOK       = "ok"
	ResultNoop     = "noop"
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultPassed   = "passed"
	ResultFailed   = "failed"
)

var TreeOperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bstree_operations_total",
		Help: "number of tree operations by operation and result",
	}, []string{"tree", "op", "result"})

var TreeNodes = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bstree_nodes",
		Help: "number of nodes currently stored in the tree",
	}, []string{"tree"})

// Registry holds the bstree collectors. It is separated from the default
// registry so that snapshots only contain tree metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(TreeOperationsTotal, TreeNodes)
}

// Sample is one metric value flattened from the registry.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers the current values of all bstree metrics, sorted by name.
func Snapshot() ([]Sample, error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			samples = append(samples, Sample{
				Name:   family.GetName(),
				Labels: labelMap(m.GetLabel()),
				Value:  metricValue(family.GetType(), m),
			})
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})

	return samples, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	labels := make(map[string]string, len(pairs))
	for _, p := range pairs {
		labels[p.GetName()] = p.GetValue()
	}
	return labels
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	}

	return 0
}
