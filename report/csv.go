package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/champsim-tools/traceplot/simlog"
)

// Cells renders the summary table as formatted text, header first. The same
// cells back both the CSV export and the rendered table image, so the two
// artifacts always agree. Undefined values appear as "-".
func (t *MetricTable) Cells() [][]string {
	header := []string{
		"Trace",
		t.ComparisonLabel + "_ipc",
		t.BaselineLabel + "_ipc",
		"speedup_ipc",
	}
	for _, metric := range simlog.MetricOrder {
		if metric == simlog.MetricIPC {
			continue
		}
		header = append(header,
			fmt.Sprintf("%s_%s", t.ComparisonLabel, metric),
			fmt.Sprintf("%s_%s", t.BaselineLabel, metric))
	}

	cells := [][]string{header}
	for _, row := range t.Rows {
		record := []string{
			strconv.Itoa(row.Trace),
			simlog.FormatValue(simlog.MetricIPC, row.Comparison[simlog.MetricIPC]),
			simlog.FormatValue(simlog.MetricIPC, row.Baseline[simlog.MetricIPC]),
			simlog.FormatValue(simlog.MetricSpeedup, row.Speedup),
		}
		for _, metric := range simlog.MetricOrder {
			if metric == simlog.MetricIPC {
				continue
			}
			record = append(record,
				simlog.FormatValue(metric, row.Comparison[metric]),
				simlog.FormatValue(metric, row.Baseline[metric]))
		}
		cells = append(cells, record)
	}
	return cells
}

// WriteCSV writes the summary table to path, overwriting any previous file.
func (t *MetricTable) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(t.Cells()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
