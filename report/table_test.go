package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champsim-tools/traceplot/simlog"
)

func result(trace int, policy string, ipc float64) simlog.TraceResult {
	m := simlog.UndefinedMetrics()
	m[simlog.MetricIPC] = ipc
	return simlog.TraceResult{Trace: trace, Policy: policy, Metrics: m}
}

func TestJoin_OuterJoinByTraceNumber(t *testing.T) {
	baseline := []simlog.TraceResult{result(1, "noninclusive", 1.0), result(3, "noninclusive", 0.8)}
	comparison := []simlog.TraceResult{result(1, "exclusive", 1.2), result(2, "exclusive", 0.9)}

	table := Join(baseline, comparison, "noninclusive", "exclusive")

	require.Len(t, table.Rows, 3)
	assert.Equal(t, []int{1, 2, 3}, table.Traces())

	// Trace 2 exists only on the comparison side.
	assert.True(t, math.IsNaN(table.Rows[1].Baseline[simlog.MetricIPC]))
	assert.Equal(t, 0.9, table.Rows[1].Comparison[simlog.MetricIPC])

	// Trace 3 exists only on the baseline side.
	assert.Equal(t, 0.8, table.Rows[2].Baseline[simlog.MetricIPC])
	assert.True(t, math.IsNaN(table.Rows[2].Comparison[simlog.MetricIPC]))
}

func TestJoin_Idempotent(t *testing.T) {
	baseline := []simlog.TraceResult{result(2, "b", 1.0), result(1, "b", 2.0)}
	comparison := []simlog.TraceResult{result(1, "c", 3.0)}

	first := Join(baseline, comparison, "b", "c")
	second := Join(baseline, comparison, "b", "c")
	first.AddSpeedup()
	second.AddSpeedup()

	require.Equal(t, len(first.Rows), len(second.Rows))
	assert.Equal(t, first.Cells(), second.Cells())
}

func TestJoin_DuplicateTraceKeepsFirst(t *testing.T) {
	baseline := []simlog.TraceResult{result(1, "b", 1.0), result(1, "b", 9.9)}

	table := Join(baseline, nil, "b", "c")

	require.Len(t, table.Rows, 1)
	assert.Equal(t, 1.0, table.Rows[0].Baseline[simlog.MetricIPC])
}

func TestPivot(t *testing.T) {
	baseline := []simlog.TraceResult{result(1, "b", 1.0)}
	comparison := []simlog.TraceResult{result(1, "c", 1.5)}

	table := Join(baseline, comparison, "b", "c")
	pivot := table.Pivot(simlog.MetricIPC)

	require.Contains(t, pivot, 1)
	assert.Equal(t, 1.0, pivot[1]["b"])
	assert.Equal(t, 1.5, pivot[1]["c"])
}
