package render_test

import (
	"context"
	"errors"
	"image/gif"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
)

var _ = Describe("Animation", func() {
	var p fractal.Params

	BeforeEach(func() {
		p = fractal.NewParams(fractal.ClassicBounds, fractal.Resolution{Xn: 24, Yn: 20}, 80)
	})

	Describe("BudgetFrames", func() {
		It("returns an all-masked grid for budget zero", func() {
			n, err := render.BudgetFrames(p)(context.Background(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(n.MaskedCount()).To(Equal(24 * 20))
		})

		It("recomputes the grid with the frame's budget", func() {
			n, err := render.BudgetFrames(p)(context.Background(), 3)
			Expect(err).NotTo(HaveOccurred())
			for _, v := range n.Cells {
				Expect(v).To(BeNumerically("<", 3))
			}
		})
	})

	Describe("Palette", func() {
		It("reserves index 0 for transparency", func() {
			pal := render.Palette(palette.Hot)
			Expect(pal).To(HaveLen(256))
			_, _, _, a := pal[0].RGBA()
			Expect(a).To(BeZero())
			_, _, _, a = pal[255].RGBA()
			Expect(a).To(BeEquivalentTo(0xffff))
		})
	})

	Describe("Frame", func() {
		It("uses a fixed scale", func() {
			n := fractal.NewGrid(3, 1)
			n.Set(1, 0, 79)
			n.Set(2, 0, 200)
			img := render.Frame(n, render.Palette(palette.Hot), 79)
			Expect(img.ColorIndexAt(0, 0)).To(BeEquivalentTo(0))
			Expect(img.ColorIndexAt(1, 0)).To(BeEquivalentTo(255))
			Expect(img.ColorIndexAt(2, 0)).To(BeEquivalentTo(255))
		})
	})

	Describe("Animate", func() {
		It("emits one frame per budget at the requested rate", func() {
			var seen []int
			opts := render.AnimationOptions{
				Frames:   6,
				FPS:      20,
				Progress: func(frame, total int) { seen = append(seen, frame) },
			}
			anim, err := render.Animate(context.Background(), render.BudgetFrames(p), palette.Hot, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(anim.Image).To(HaveLen(6))
			Expect(anim.Delay).To(HaveEach(5))
			Expect(anim.LoopCount).To(BeZero())
			Expect(seen).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		})

		It("stops on the first source error", func() {
			boom := errors.New("boom")
			src := func(ctx context.Context, budget int) (*fractal.Grid, error) {
				if budget == 2 {
					return nil, boom
				}
				return fractal.NewGrid(2, 2), nil
			}
			_, err := render.Animate(context.Background(), src, palette.Hot, render.AnimationOptions{Frames: 5, FPS: 10})
			Expect(err).To(MatchError(boom))
		})

		It("writes a decodable GIF", func() {
			path := filepath.Join(GinkgoT().TempDir(), "mandelbrot_animation.gif")
			opts := render.AnimationOptions{Frames: 4, FPS: 20}
			Expect(render.WriteAnimation(context.Background(), path, render.BudgetFrames(p), palette.Hot, opts)).To(Succeed())

			f, err := os.Open(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			anim, err := gif.DecodeAll(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(anim.Image).To(HaveLen(4))
			Expect(anim.Image[0].Bounds().Dx()).To(Equal(24))
		})
	})
})
