package report

import (
	"math"

	"github.com/champsim-tools/traceplot/simlog"
)

// Speedup returns comparison/baseline. The ratio is undefined (NaN) when
// either input is undefined or the baseline is exactly zero; it is never
// infinite and never faults.
func Speedup(comparison, baseline float64) float64 {
	if !simlog.IsDefined(comparison) || !simlog.IsDefined(baseline) || baseline == 0 {
		return math.NaN()
	}
	return comparison / baseline
}

// AddSpeedup fills each row's Speedup column from its two IPC values.
func (t *MetricTable) AddSpeedup() {
	for i := range t.Rows {
		row := &t.Rows[i]
		row.Speedup = Speedup(row.Comparison[simlog.MetricIPC], row.Baseline[simlog.MetricIPC])
	}
}
