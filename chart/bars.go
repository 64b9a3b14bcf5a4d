package chart

import (
	"fmt"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/champsim-tools/traceplot/report"
	"github.com/champsim-tools/traceplot/simlog"
)

// barLabels writes a formatted value above each bar of a series. Undefined
// bars (height zero, drawn empty) still get their "-" placeholder so a
// missing measurement is visible on the chart rather than blank.
//
// The plotter pattern (Plot + plt.Transforms) follows gonum/plot's own
// composable plotters.
type barLabels struct {
	heights []float64 // bar heights in data coordinates (0 for undefined)
	labels  []string
	offset  vg.Length // horizontal bar offset within the group
}

func (bl *barLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := plt.X.Tick.Label
	sty.Font.Size = 9
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YBottom
	for i, label := range bl.labels {
		pt := vg.Point{
			X: trX(float64(i)) + bl.offset,
			Y: trY(bl.heights[i]) + vg.Points(3),
		}
		if !c.ContainsX(pt.X) {
			continue
		}
		c.FillText(sty, pt, label)
	}
}

// barSeries turns one policy's values for a metric into bar heights and
// their annotations. NaN becomes a zero-height bar labeled "-".
func barSeries(metric string, values []float64) (plotter.Values, []string) {
	heights := make(plotter.Values, len(values))
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = simlog.FormatValue(metric, v)
		if simlog.IsDefined(v) {
			heights[i] = v
		}
	}
	return heights, labels
}

// RenderMetric writes the grouped bar chart for one metric (comparison
// policy on the left, baseline on the right) into outDir and returns the
// written path.
func RenderMetric(t *report.MetricTable, metric, outDir string) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrNoData
	}

	pivot := t.Pivot(metric)
	traces := t.Traces()
	comp := make([]float64, len(traces))
	base := make([]float64, len(traces))
	for i, trace := range traces {
		comp[i] = pivot[trace][t.ComparisonLabel]
		base[i] = pivot[trace][t.BaselineLabel]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s vs %s", simlog.MetricLabel(metric), t.ComparisonLabel, t.BaselineLabel)
	p.X.Label.Text = "Trace number"
	p.Y.Label.Text = simlog.MetricLabel(metric)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	barWidth := vg.Points(22)
	barSpacing := vg.Points(4)

	compHeights, compLabels := barSeries(metric, comp)
	baseHeights, baseLabels := barSeries(metric, base)

	compBars, err := plotter.NewBarChart(compHeights, barWidth)
	if err != nil {
		return "", fmt.Errorf("bar chart for %s: %w", metric, err)
	}
	compBars.Color = colorComparison
	compBars.LineStyle.Width = vg.Points(0.4)
	compBars.Offset = -(barWidth + barSpacing) / 2

	baseBars, err := plotter.NewBarChart(baseHeights, barWidth)
	if err != nil {
		return "", fmt.Errorf("bar chart for %s: %w", metric, err)
	}
	baseBars.Color = colorBaseline
	baseBars.LineStyle.Width = vg.Points(0.4)
	baseBars.Offset = (barWidth + barSpacing) / 2

	p.Add(compBars, baseBars)
	p.Add(&barLabels{heights: compHeights, labels: compLabels, offset: compBars.Offset})
	p.Add(&barLabels{heights: baseHeights, labels: baseLabels, offset: baseBars.Offset})

	p.Legend.Add(t.ComparisonLabel, compBars)
	p.Legend.Add(t.BaselineLabel+" (baseline)", baseBars)
	p.Legend.Top = true

	tickLabels := make([]string, len(traces))
	for i, trace := range traces {
		tickLabels[i] = strconv.Itoa(trace)
	}
	p.NominalX(tickLabels...)

	// Headroom for the value annotations.
	if p.Y.Max > p.Y.Min {
		p.Y.Max += 0.12 * (p.Y.Max - p.Y.Min)
	}

	path := filepath.Join(outDir, MetricFile(metric))
	if err := writePNG(p, plotWidth(len(traces)), plotHeight, path); err != nil {
		return "", err
	}
	return path, nil
}
