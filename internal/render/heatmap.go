package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/mandelscope/internal/export"
	"github.com/san-kum/mandelscope/internal/palette"
)

// HeatmapOptions controls the heatmap layout. Zero values pick defaults.
type HeatmapOptions struct {
	// Size is the target edge length of the cell area in pixels.
	Size int
	// Margin surrounds the cell area and the colorbar.
	Margin     int
	BarWidth   int
	Background color.NRGBA
}

func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		Size:       1000,
		Margin:     40,
		BarWidth:   30,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (o HeatmapOptions) withDefaults() HeatmapOptions {
	d := DefaultHeatmapOptions()
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.BarWidth <= 0 {
		o.BarWidth = d.BarWidth
	}
	if o.Background.A == 0 {
		o.Background = d.Background
	}
	return o
}

var (
	borderColor = color.NRGBA{A: 255}
	textColor   = color.NRGBA{A: 255}
	labelFace   = basicfont.Face7x13
)

// labelPad separates labels from the cell area and the colorbar.
const labelPad = 4

// Heatmap draws every table cell as a square block and a vertical colorbar
// (high values on top) to the right. The first and last x and y keys label
// the axes; the colorbar is labeled with the value range. Masked cells show
// the background.
func Heatmap(t *export.Table, cm palette.Colormap, opts HeatmapOptions) *image.NRGBA {
	opts = opts.withDefaults()
	cols, rows := t.N.Xn, t.N.Yn

	cell := 1
	if longest := max(cols, rows); longest > 0 && opts.Size/longest > 1 {
		cell = opts.Size / longest
	}
	areaW, areaH := cols*cell, max(rows*cell, 1)

	lo, hi, ok := t.N.Range()
	yLabels := endLabels(t.Y)
	barLabels := []string{}
	if ok {
		barLabels = []string{strconv.Itoa(hi), strconv.Itoa(lo)}
	}

	area := image.Rect(0, 0, areaW, areaH).Add(image.Pt(opts.Margin+labelWidth(yLabels), opts.Margin))
	barX := area.Max.X + opts.Margin/2
	bar := image.Rect(barX, area.Min.Y, barX+opts.BarWidth, area.Max.Y)
	width := bar.Max.X + labelWidth(barLabels) + opts.Margin
	height := area.Max.Y + labelHeight() + opts.Margin

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	if ok {
		shade := lookup(cm, lo, hi)
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				v := t.N.At(i, j)
				if v == 0 {
					continue
				}
				r := image.Rect(i*cell, j*cell, (i+1)*cell, (j+1)*cell).Add(area.Min)
				draw.Draw(img, r, &image.Uniform{C: shade.color(v)}, image.Point{}, draw.Src)
			}
		}
	}

	drawColorbar(img, cm, bar)
	drawAxisLabels(img, t, area, cell)
	if ok {
		// Max beside the top of the bar, min beside the bottom.
		drawText(img, barLabels[0], bar.Max.X+labelPad, bar.Min.Y+ascent())
		drawText(img, barLabels[1], bar.Max.X+labelPad, bar.Max.Y)
	}
	return img
}

// endLabels formats the first and last key of an axis, or the only one.
func endLabels(keys []float64) []string {
	switch len(keys) {
	case 0:
		return nil
	case 1:
		return []string{formatKey(keys[0])}
	}
	return []string{formatKey(keys[0]), formatKey(keys[len(keys)-1])}
}

func formatKey(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, font.MeasureString(labelFace, l).Ceil())
	}
	if w == 0 {
		return 0
	}
	return w + labelPad
}

func labelHeight() int {
	return labelFace.Metrics().Height.Ceil() + labelPad
}

func ascent() int {
	return labelFace.Metrics().Ascent.Ceil()
}

// drawAxisLabels writes the end keys of y to the left of the first and
// last rows and the end keys of x below the first and last columns.
func drawAxisLabels(img *image.NRGBA, t *export.Table, area image.Rectangle, cell int) {
	rows := []int{0, len(t.Y) - 1}
	for k, label := range endLabels(t.Y) {
		w := font.MeasureString(labelFace, label).Ceil()
		mid := area.Min.Y + rows[k]*cell + cell/2
		drawText(img, label, area.Min.X-labelPad-w, mid+ascent()/2)
	}

	base := area.Max.Y + labelPad + ascent()
	for k, label := range endLabels(t.X) {
		x := area.Min.X
		if k == 1 {
			x = area.Max.X - font.MeasureString(labelFace, label).Ceil()
		}
		drawText(img, label, x, base)
	}
}

// drawText draws s with its baseline starting at (x, y).
func drawText(img *image.NRGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawColorbar(img *image.NRGBA, cm palette.Colormap, r image.Rectangle) {
	h := r.Dy()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := 1.0
		if h > 1 {
			t = 1 - float64(y-r.Min.Y)/float64(h-1)
		}
		c := palette.NRGBA(cm.At(t))
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	outline(img, r.Inset(-1), borderColor)
}

func outline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}

func WriteHeatmap(path string, t *export.Table, cm palette.Colormap, opts HeatmapOptions) error {
	return writePNG(path, Heatmap(t, cm, opts))
}

// WriteHeatmapFromCSV reads an export back, pivots it and writes the heatmap.
func WriteHeatmapFromCSV(csvPath, path string, cm palette.Colormap, opts HeatmapOptions) (*export.Table, error) {
	samples, err := export.ReadCSVFile(csvPath)
	if err != nil {
		return nil, err
	}
	table, err := export.Pivot(samples)
	if err != nil {
		return nil, err
	}
	return table, WriteHeatmap(path, table, cm, opts)
}
