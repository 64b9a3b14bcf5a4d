// Package report joins the per-directory extraction results of two cache
// policies into a single per-trace table and derives the IPC speedup of
// the comparison policy over the baseline.
package report

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/champsim-tools/traceplot/simlog"
)

// Row is one trace's worth of joined metrics. Either side may be entirely
// NaN when that policy's directory had no file for the trace.
type Row struct {
	Trace      int
	Baseline   simlog.Metrics
	Comparison simlog.Metrics
	Speedup    float64
}

// MetricTable is the outer join of two policies' trace results, keyed by
// trace number and sorted ascending.
type MetricTable struct {
	BaselineLabel   string
	ComparisonLabel string
	Rows            []Row
}

// Join outer-joins two result sequences by trace number. Traces present on
// only one side still get a row, with the missing side undefined. Within a
// side, trace numbers are expected to be unique; a duplicate keeps the
// first occurrence and is logged. The join is deterministic: the same
// inputs always produce the same table.
func Join(baseline, comparison []simlog.TraceResult, baselineLabel, comparisonLabel string) *MetricTable {
	byTrace := func(results []simlog.TraceResult, side string) map[int]simlog.Metrics {
		m := make(map[int]simlog.Metrics, len(results))
		for _, r := range results {
			if _, dup := m[r.Trace]; dup {
				logrus.Warnf("duplicate trace%d in %s results (%s), keeping first", r.Trace, side, r.Path)
				continue
			}
			m[r.Trace] = r.Metrics
		}
		return m
	}
	base := byTrace(baseline, baselineLabel)
	comp := byTrace(comparison, comparisonLabel)

	seen := make(map[int]bool, len(base)+len(comp))
	var traces []int
	for trace := range base {
		seen[trace] = true
		traces = append(traces, trace)
	}
	for trace := range comp {
		if !seen[trace] {
			traces = append(traces, trace)
		}
	}
	sort.Ints(traces)

	t := &MetricTable{BaselineLabel: baselineLabel, ComparisonLabel: comparisonLabel}
	for _, trace := range traces {
		row := Row{Trace: trace, Speedup: math.NaN()}
		if m, ok := base[trace]; ok {
			row.Baseline = m
		} else {
			row.Baseline = simlog.UndefinedMetrics()
		}
		if m, ok := comp[trace]; ok {
			row.Comparison = m
		} else {
			row.Comparison = simlog.UndefinedMetrics()
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// PolicyValues holds one metric's values for a single trace, keyed by
// policy label.
type PolicyValues map[string]float64

// Pivot returns, for the given metric, each trace's value per policy, in
// table row order.
func (t *MetricTable) Pivot(metric string) map[int]PolicyValues {
	out := make(map[int]PolicyValues, len(t.Rows))
	for _, row := range t.Rows {
		out[row.Trace] = PolicyValues{
			t.BaselineLabel:   row.Baseline[metric],
			t.ComparisonLabel: row.Comparison[metric],
		}
	}
	return out
}

// Traces returns the table's trace numbers in row order.
func (t *MetricTable) Traces() []int {
	traces := make([]int, 0, len(t.Rows))
	for _, row := range t.Rows {
		traces = append(traces, row.Trace)
	}
	return traces
}
