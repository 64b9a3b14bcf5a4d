// Package simlog parses ChampSim-style simulator output logs. It locates
// per-trace result files in a directory and extracts scalar performance
// metrics (cumulative IPC, per-level MPKI) from their text.
//
// A metric that cannot be found in a log is represented as math.NaN(), not
// zero: NaN propagates through joins and ratio computations and renders as
// a "-" placeholder, so a missing data point can never masquerade as a
// measured zero.
package simlog

import (
	"fmt"
	"math"
)

// Metric identifiers, also the base names of the rendered chart files.
const (
	MetricIPC     = "ipc"
	MetricL1DMPKI = "l1d_mpki"
	MetricL2MPKI  = "l2_mpki"
	MetricLLCMPKI = "llc_mpki"

	// MetricSpeedup is derived by report.Join, never extracted from a log.
	MetricSpeedup = "speedup"
)

// MetricOrder lists the extracted metrics in display order.
var MetricOrder = []string{MetricIPC, MetricL1DMPKI, MetricL2MPKI, MetricLLCMPKI}

var metricLabels = map[string]string{
	MetricIPC:     "Cumulative IPC",
	MetricL1DMPKI: "L1D MPKI",
	MetricL2MPKI:  "L2 (L2C) MPKI",
	MetricLLCMPKI: "LLC MPKI",
	MetricSpeedup: "IPC speedup",
}

// MetricLabel returns the human-readable axis/table label for a metric.
func MetricLabel(metric string) string {
	if l, ok := metricLabels[metric]; ok {
		return l
	}
	return metric
}

// Metrics maps metric identifiers to extracted values. Absent patterns are
// stored as NaN.
type Metrics map[string]float64

// UndefinedMetrics returns a Metrics with every known metric set to NaN,
// used when a trace file exists but cannot be read.
func UndefinedMetrics() Metrics {
	m := make(Metrics, len(MetricOrder))
	for _, name := range MetricOrder {
		m[name] = math.NaN()
	}
	return m
}

// IsDefined reports whether v holds a measured value.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// FormatValue renders a metric value at its fixed display precision:
// three decimals for IPC and speedup, two for MPKI figures. Undefined
// values render as "-".
func FormatValue(metric string, v float64) string {
	if !IsDefined(v) {
		return "-"
	}
	switch metric {
	case MetricIPC, MetricSpeedup:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
