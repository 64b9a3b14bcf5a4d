package simlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// TraceResult holds the metrics extracted from one trace's result file.
// Instances are built once per file read and not mutated afterwards.
type TraceResult struct {
	Trace   int
	Policy  string
	Path    string
	Metrics Metrics
}

// Collect locates and extracts every trace result file in dir, tagging the
// results with the given policy label. A file that cannot be read degrades
// to an all-NaN result with a warning rather than failing the batch; only
// directory-level problems (missing directory, zero matching files) return
// an error.
func Collect(dir, policy string, names []string) ([]TraceResult, error) {
	located, err := Locate(dir, names, DefaultGlob)
	if err != nil {
		return nil, err
	}

	results := make([]TraceResult, 0, len(located))
	for _, f := range located {
		metrics := UndefinedMetrics()
		data, err := os.ReadFile(f.Path)
		if err != nil {
			logrus.Warnf("could not read %s: %v", f.Path, err)
		} else {
			metrics = Extract(string(data))
		}
		results = append(results, TraceResult{
			Trace:   f.Trace,
			Policy:  policy,
			Path:    f.Path,
			Metrics: metrics,
		})
		logrus.Debugf("extracted trace%d (%s): ipc=%s l1d=%s l2=%s llc=%s",
			f.Trace, policy,
			FormatValue(MetricIPC, metrics[MetricIPC]),
			FormatValue(MetricL1DMPKI, metrics[MetricL1DMPKI]),
			FormatValue(MetricL2MPKI, metrics[MetricL2MPKI]),
			FormatValue(MetricLLCMPKI, metrics[MetricLLCMPKI]))
	}
	return results, nil
}
