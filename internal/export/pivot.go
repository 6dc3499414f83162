package export

import (
	"fmt"
	"sort"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Table is a pivoted export: rows keyed by y, columns keyed by x, both
// ascending. Cells with no sample, or a masked one, hold 0.
type Table struct {
	X, Y []float64
	N    *fractal.Grid
}

// Pivot reshapes samples into a table. Each (y, x) pair may appear once.
func Pivot(samples []Sample) (*Table, error) {
	xs := uniqueSorted(samples, func(s Sample) float64 { return s.X })
	ys := uniqueSorted(samples, func(s Sample) float64 { return s.Y })

	col := index(xs)
	row := index(ys)

	n := fractal.NewGrid(len(xs), len(ys))
	seen := make([]bool, len(n.Cells))
	for _, s := range samples {
		i, j := col[s.X], row[s.Y]
		k := j*n.Xn + i
		if seen[k] {
			return nil, fmt.Errorf("%w: y=%g x=%g", ErrDuplicate, s.Y, s.X)
		}
		seen[k] = true
		if !s.Masked {
			n.Set(i, j, s.N)
		}
	}

	return &Table{X: xs, Y: ys, N: n}, nil
}

func uniqueSorted(samples []Sample, key func(Sample) float64) []float64 {
	set := make(map[float64]struct{})
	for _, s := range samples {
		set[key(s)] = struct{}{}
	}
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func index(values []float64) map[float64]int {
	m := make(map[float64]int, len(values))
	for k, v := range values {
		m[v] = k
	}
	return m
}
