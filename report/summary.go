package report

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/champsim-tools/traceplot/simlog"
)

// Summary aggregates the defined speedup rows of a table.
type Summary struct {
	Traces  int // rows in the table
	Defined int // rows with a defined speedup
	Mean    float64
	Geomean float64
}

// Summarize computes the arithmetic and geometric mean speedup across all
// rows whose speedup is defined. With zero defined rows both means are NaN.
func Summarize(t *MetricTable) Summary {
	s := Summary{Traces: len(t.Rows), Mean: math.NaN(), Geomean: math.NaN()}
	var defined []float64
	for _, row := range t.Rows {
		if simlog.IsDefined(row.Speedup) {
			defined = append(defined, row.Speedup)
		}
	}
	s.Defined = len(defined)
	if len(defined) == 0 {
		return s
	}
	s.Mean = stat.Mean(defined, nil)
	s.Geomean = stat.GeometricMean(defined, nil)
	return s
}
