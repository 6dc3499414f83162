package render_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelscope/internal/export"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
)

var _ = Describe("Heatmap", func() {
	var (
		table *export.Table
		opts  render.HeatmapOptions
	)

	BeforeEach(func() {
		n := fractal.NewGrid(2, 2)
		n.Set(0, 0, 1)
		n.Set(1, 1, 9)
		table = &export.Table{X: []float64{0, 1}, Y: []float64{0, 1}, N: n}
		opts = render.HeatmapOptions{Size: 100, Margin: 10, BarWidth: 8}
	})

	// Margin 10, one-character labels 7px wide plus 4px padding: the cell
	// area starts at (21, 10) and the colorbar at x = 21+100+5.
	const (
		areaX = 10 + 7 + 4
		areaY = 10
		barX  = areaX + 100 + 5
	)

	It("scales cells to the target size and leaves room for labels and the colorbar", func() {
		img := render.Heatmap(table, palette.Rocket, opts)
		Expect(img.Bounds().Dx()).To(Equal(barX + 8 + 11 + 10))
		Expect(img.Bounds().Dy()).To(Equal(areaY + 100 + 13 + 4 + 10))
	})

	It("fills blocks with the colormap and masked blocks with the background", func() {
		img := render.Heatmap(table, palette.Rocket, opts)
		Expect(img.NRGBAAt(areaX+25, areaY+25)).To(Equal(palette.NRGBA(palette.Rocket.At(0))))
		Expect(img.NRGBAAt(areaX+75, areaY+75)).To(Equal(palette.NRGBA(palette.Rocket.At(1))))
		Expect(img.NRGBAAt(areaX+75, areaY+25)).To(Equal(render.DefaultHeatmapOptions().Background))
	})

	It("draws the colorbar with high values on top", func() {
		img := render.Heatmap(table, palette.Rocket, opts)
		x := barX + 4
		Expect(img.NRGBAAt(x, areaY)).To(Equal(palette.NRGBA(palette.Rocket.At(1))))
		Expect(img.NRGBAAt(x, areaY+99)).To(Equal(palette.NRGBA(palette.Rocket.At(0))))
	})

	It("labels both axes and the colorbar range", func() {
		img := render.Heatmap(table, palette.Rocket, opts)
		Expect(hasInk(img, image.Rect(10, areaY, areaX, areaY+100))).To(BeTrue(), "y labels")
		Expect(hasInk(img, image.Rect(areaX, areaY+100, areaX+100, img.Bounds().Dy()))).To(BeTrue(), "x labels")
		Expect(hasInk(img, image.Rect(barX+8+1, areaY, img.Bounds().Dx(), areaY+100))).To(BeTrue(), "colorbar labels")
	})

	It("omits colorbar labels when every cell is masked", func() {
		table.N = fractal.NewGrid(2, 2)
		img := render.Heatmap(table, palette.Rocket, opts)
		Expect(img.Bounds().Dx()).To(Equal(barX + 8 + 10))
	})

	It("colors wide value ranges without a full lookup table", func() {
		table.N.Set(1, 1, 1_000_000_000)
		img := render.Heatmap(table, palette.Rocket, opts)
		Expect(img.NRGBAAt(areaX+25, areaY+25)).To(Equal(palette.NRGBA(palette.Rocket.At(0))))
		Expect(img.NRGBAAt(areaX+75, areaY+75)).To(Equal(palette.NRGBA(palette.Rocket.At(1))))
	})

	It("round-trips through the CSV export", func() {
		dir := GinkgoT().TempDir()
		csvPath := filepath.Join(dir, "mandelbrot.csv")
		pngPath := filepath.Join(dir, "mandelbrot_heatmap.png")

		res := &fractal.Result{X: []float32{-1, 0}, Y: []float32{-1, 1}, N: table.N}
		Expect(export.WriteCSVFile(csvPath, res)).To(Succeed())

		got, err := render.WriteHeatmapFromCSV(csvPath, pngPath, palette.Rocket, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.N.Equal(table.N)).To(BeTrue())

		f, err := os.Open(pngPath)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		_, err = png.Decode(f)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an export with an out-of-range count", func() {
		dir := GinkgoT().TempDir()
		csvPath := filepath.Join(dir, "bad.csv")
		Expect(os.WriteFile(csvPath, []byte("x,y,n\n0,0,-3\n1,1,1\n"), 0644)).To(Succeed())
		_, err := render.WriteHeatmapFromCSV(csvPath, filepath.Join(dir, "h.png"), palette.Rocket, opts)
		Expect(err).To(MatchError(export.ErrCount))
	})

	It("reports a missing export as an I/O error", func() {
		dir := GinkgoT().TempDir()
		_, err := render.WriteHeatmapFromCSV(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "h.png"), palette.Rocket, opts)
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})

// hasInk reports whether any pixel in r is the opaque black used for text.
func hasInk(img *image.NRGBA, r image.Rectangle) bool {
	ink := color.NRGBA{A: 255}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) == ink {
				return true
			}
		}
	}
	return false
}
