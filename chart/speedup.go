package chart

import (
	"fmt"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/champsim-tools/traceplot/report"
	"github.com/champsim-tools/traceplot/simlog"
)

// RenderSpeedup writes the per-trace IPC speedup chart into outDir. Each
// bar is annotated at three decimals ("-" when undefined) and a dashed
// reference line at ratio 1.0 anchors "no change".
func RenderSpeedup(t *report.MetricTable, outDir string) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrNoData
	}

	speedups := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		speedups[i] = row.Speedup
	}
	heights, labels := barSeries(simlog.MetricSpeedup, speedups)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("IPC speedup: %s / %s (baseline)", t.ComparisonLabel, t.BaselineLabel)
	p.X.Label.Text = "Trace number"
	p.Y.Label.Text = fmt.Sprintf("IPC speedup (%s / %s)", t.ComparisonLabel, t.BaselineLabel)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	bars, err := plotter.NewBarChart(heights, vg.Points(30))
	if err != nil {
		return "", fmt.Errorf("speedup bar chart: %w", err)
	}
	bars.Color = colorSpeedup
	bars.LineStyle.Width = vg.Points(0.6)
	p.Add(bars)
	p.Add(&barLabels{heights: heights, labels: labels})

	// Reference line at speedup = 1.0 spanning the full category axis.
	ref, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1.0},
		{X: float64(len(t.Rows)) - 0.5, Y: 1.0},
	})
	if err != nil {
		return "", fmt.Errorf("reference line: %w", err)
	}
	ref.Color = colorRefLine
	ref.Width = vg.Points(1)
	ref.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ref)
	p.Legend.Add("baseline = 1.0", ref)
	p.Legend.Top = true

	tickLabels := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		tickLabels[i] = strconv.Itoa(row.Trace)
	}
	p.NominalX(tickLabels...)

	// The unit ratio must stay on the chart even when every bar is above
	// or below it.
	if p.Y.Min > 1 {
		p.Y.Min = 1
	}
	if p.Y.Max < 1 {
		p.Y.Max = 1
	}
	if p.Y.Max > p.Y.Min {
		p.Y.Max += 0.12 * (p.Y.Max - p.Y.Min)
	}

	path := filepath.Join(outDir, SpeedupFile)
	if err := writePNG(p, plotWidth(len(t.Rows)), plotHeight, path); err != nil {
		return "", err
	}
	return path, nil
}
