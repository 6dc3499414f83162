package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
)

// Image colors each unmasked cell by its value normalized over the grid's
// unmasked range. Masked cells stay fully transparent.
func Image(n *fractal.Grid, cm palette.Colormap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n.Xn, n.Yn))
	lo, hi, ok := n.Range()
	if !ok {
		return img
	}

	shade := lookup(cm, lo, hi)
	for j := 0; j < n.Yn; j++ {
		row := n.Row(j)
		for i, v := range row {
			if v == 0 {
				continue
			}
			img.SetNRGBA(i, j, shade.color(int(v)))
		}
	}
	return img
}

// maxTable bounds the precomputed color table. Wider value ranges are
// colored cell by cell.
const maxTable = 1 << 16

// shader maps values in [lo, hi] to colors.
type shader struct {
	cm     palette.Colormap
	lo, hi int
	table  []color.NRGBA
}

func lookup(cm palette.Colormap, lo, hi int) *shader {
	s := &shader{cm: cm, lo: lo, hi: hi}
	if hi-lo < maxTable {
		s.table = make([]color.NRGBA, hi-lo+1)
		for v := lo; v <= hi; v++ {
			s.table[v-lo] = palette.NRGBA(cm.At(palette.Normalize(v, lo, hi)))
		}
	}
	return s
}

func (s *shader) color(v int) color.NRGBA {
	if s.table != nil {
		return s.table[v-s.lo]
	}
	return palette.NRGBA(s.cm.At(palette.Normalize(v, s.lo, s.hi)))
}

func WriteImage(path string, n *fractal.Grid, cm palette.Colormap) error {
	return writePNG(path, Image(n, cm))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
