// Package palette maps normalized escape counts to colors.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps t in [0, 1] to a color. Values outside the range are clamped.
type Colormap interface {
	Name() string
	At(t float64) colorful.Color
}

var colormaps = map[string]Colormap{}

func register(c Colormap) { colormaps[c.Name()] = c }

func Get(name string) (Colormap, error) {
	c, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette: %s (available: %v)", name, Names())
	}
	return c, nil
}

func Names() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize maps v from [lo, hi] to [0, 1]. A flat range maps to 0.
func Normalize(v, lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01(float64(v-lo) / float64(hi-lo))
}

// NRGBA converts c to an opaque 8-bit color.
func NRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Table samples c at n evenly spaced points, first at t=0 and last at t=1.
func Table(c Colormap, n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for k := range out {
		t := 0.0
		if n > 1 {
			t = float64(k) / float64(n-1)
		}
		out[k] = NRGBA(c.At(t))
	}
	return out
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
