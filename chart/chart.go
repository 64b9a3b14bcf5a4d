// Package chart renders the joined metric table to PNG artifacts: one
// grouped bar chart per metric, an IPC speedup chart, and a summary table
// image. Rendering is idempotent; artifacts of the same name are
// overwritten in place.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when a renderer is handed a table with no rows.
// Nothing is written in that case, so a failed run can never leave a
// partial image behind.
var ErrNoData = errors.New("no data to render")

// Fixed artifact names, one per metric plus the speedup chart and the
// summary table.
const (
	SpeedupFile = "ipc_speedup.png"
	TableFile   = "metrics_summary_table.png"
)

// MetricFile returns the artifact name for a metric chart.
func MetricFile(metric string) string {
	return metric + ".png"
}

// tab10-style palette, matching a colorblind-friendly qualitative scheme.
var (
	colorComparison = color.NRGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF} // blue
	colorBaseline   = color.NRGBA{R: 0xFF, G: 0x7F, B: 0x0E, A: 0xFF} // orange
	colorSpeedup    = color.NRGBA{R: 0x94, G: 0x67, B: 0xBD, A: 0xFF} // purple
	colorRefLine    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xB3}
)

// plotWidth scales the canvas with the number of traces so bar groups stay
// readable.
func plotWidth(traces int) vg.Length {
	return vg.Length(math.Max(7, float64(traces)*1.4)) * vg.Inch
}

const plotHeight = 5 * vg.Inch

// writePNG renders the plot onto a 150 DPI image canvas and writes it to
// path. The file is created (or truncated) only after the plot has been
// assembled, so render-time panics cannot corrupt an existing artifact.
func writePNG(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := can.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
