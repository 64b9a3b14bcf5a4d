package chart

import (
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/champsim-tools/traceplot/report"
)

var (
	tableHeaderFill = color.NRGBA{R: 0x2E, G: 0x40, B: 0x53, A: 0xFF}
	tableRowFills   = []color.Color{
		color.White,
		color.NRGBA{R: 0xF7, G: 0xFB, B: 0xFC, A: 0xFF},
	}
	tableBorder = color.NRGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
)

// tablePlotter draws a text grid over the plot area: a filled header row,
// alternating row backgrounds, cell borders, and centered cell text. The
// plot's axes are hidden and pinned to cell units (x: columns, y: rows,
// row 0 of cells at the top).
type tablePlotter struct {
	cells [][]string
}

func (tp *tablePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	rows := len(tp.cells)
	if rows == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)

	sty := plt.X.Tick.Label
	sty.Font.Size = 10
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	border := draw.LineStyle{Color: tableBorder, Width: vg.Points(0.5)}

	for r, record := range tp.cells {
		yTop := trY(float64(rows - r))
		yBot := trY(float64(rows - r - 1))

		fill := tableRowFills[(r+1)%len(tableRowFills)]
		textColor := color.Color(color.Black)
		if r == 0 {
			fill = tableHeaderFill
			textColor = color.White
		}

		for col, cell := range record {
			xLeft := trX(float64(col))
			xRight := trX(float64(col + 1))
			c.FillPolygon(fill, []vg.Point{
				{X: xLeft, Y: yBot},
				{X: xLeft, Y: yTop},
				{X: xRight, Y: yTop},
				{X: xRight, Y: yBot},
			})
			c.StrokeLines(border,
				[]vg.Point{{X: xLeft, Y: yBot}, {X: xLeft, Y: yTop}, {X: xRight, Y: yTop}, {X: xRight, Y: yBot}, {X: xLeft, Y: yBot}})

			sty.Color = textColor
			c.FillText(sty, vg.Point{X: (xLeft + xRight) / 2, Y: (yTop + yBot) / 2}, cell)
		}
	}
}

// RenderTable writes the summary table image into outDir and returns the
// written path. Cell text mirrors the CSV export exactly.
func RenderTable(t *report.MetricTable, title, outDir string) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrNoData
	}

	cells := t.Cells()
	rows := len(cells)
	cols := len(cells[0])

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.X.Min, p.X.Max = 0, float64(cols)
	p.Y.Min, p.Y.Max = 0, float64(rows)
	p.Add(&tablePlotter{cells: cells})

	w := vg.Length(cols) * 1.3 * vg.Inch
	if w < 6*vg.Inch {
		w = 6 * vg.Inch
	}
	h := vg.Length(rows)*0.5*vg.Inch + 0.8*vg.Inch

	path := filepath.Join(outDir, TableFile)
	if err := writePNG(p, w, h, path); err != nil {
		return "", err
	}
	return path, nil
}
