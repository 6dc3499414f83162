package render_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
)

var _ = Describe("Image", func() {
	var n *fractal.Grid

	BeforeEach(func() {
		n = fractal.NewGrid(3, 2)
		n.Set(0, 0, 2)
		n.Set(1, 0, 5)
		n.Set(2, 1, 8)
	})

	It("has one pixel per cell", func() {
		img := render.Image(n, palette.Hot)
		Expect(img.Bounds().Dx()).To(Equal(3))
		Expect(img.Bounds().Dy()).To(Equal(2))
	})

	It("leaves masked cells transparent", func() {
		img := render.Image(n, palette.Hot)
		Expect(img.NRGBAAt(2, 0).A).To(BeZero())
		Expect(img.NRGBAAt(0, 1)).To(Equal(color.NRGBA{}))
	})

	It("maps the unmasked range onto the whole colormap", func() {
		img := render.Image(n, palette.Hot)
		Expect(img.NRGBAAt(0, 0)).To(Equal(palette.NRGBA(palette.Hot.At(0))))
		Expect(img.NRGBAAt(2, 1)).To(Equal(palette.NRGBA(palette.Hot.At(1))))
		Expect(img.NRGBAAt(1, 0)).To(Equal(palette.NRGBA(palette.Hot.At(0.5))))
	})

	It("draws the first grid row at the top", func() {
		img := render.Image(n, palette.Hot)
		Expect(img.NRGBAAt(0, 0).A).To(BeEquivalentTo(255))
		Expect(img.NRGBAAt(0, 1).A).To(BeZero())
	})

	It("renders a fully masked grid as blank", func() {
		img := render.Image(fractal.NewGrid(4, 4), palette.Hot)
		for _, b := range img.Pix {
			Expect(b).To(BeZero())
		}
	})

	It("writes a decodable PNG", func() {
		path := filepath.Join(GinkgoT().TempDir(), "mandelbrot.png")
		Expect(render.WriteImage(path, n, palette.Hot)).To(Succeed())

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		img, err := png.Decode(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(3))
	})

	It("fails on an unwritable path", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing", "out.png")
		Expect(render.WriteImage(path, n, palette.Hot)).NotTo(Succeed())
	})
})
