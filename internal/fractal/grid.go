package fractal

// Grid is a Yn x Xn row-major grid of escape counts. Row j holds the
// samples with imaginary part Y[j]; column i those with real part X[i].
type Grid struct {
	Xn, Yn int
	Cells  []int32
}

// NewGrid allocates a zeroed (fully masked) grid.
func NewGrid(xn, yn int) *Grid {
	if xn < 0 {
		xn = 0
	}
	if yn < 0 {
		yn = 0
	}
	return &Grid{Xn: xn, Yn: yn, Cells: make([]int32, xn*yn)}
}

func (g *Grid) At(i, j int) int { return int(g.Cells[j*g.Xn+i]) }

func (g *Grid) Set(i, j, n int) { g.Cells[j*g.Xn+i] = int32(n) }

// Row returns row j without copying.
func (g *Grid) Row(j int) []int32 { return g.Cells[j*g.Xn : (j+1)*g.Xn] }

// Masked reports whether cell (i, j) carries no escape data.
func (g *Grid) Masked(i, j int) bool { return g.Cells[j*g.Xn+i] == 0 }

func (g *Grid) MaskedCount() int {
	count := 0
	for _, v := range g.Cells {
		if v == 0 {
			count++
		}
	}
	return count
}

// Range returns the smallest and largest unmasked values; ok is false when
// every cell is masked.
func (g *Grid) Range() (lo, hi int, ok bool) {
	for _, v := range g.Cells {
		if v == 0 {
			continue
		}
		if !ok {
			lo, hi, ok = int(v), int(v), true
			continue
		}
		if int(v) < lo {
			lo = int(v)
		}
		if int(v) > hi {
			hi = int(v)
		}
	}
	return lo, hi, ok
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Xn != other.Xn || g.Yn != other.Yn {
		return false
	}
	for k, v := range g.Cells {
		if other.Cells[k] != v {
			return false
		}
	}
	return true
}

// Result is the output of one grid computation.
type Result struct {
	Params Params
	X, Y   []float32
	N      *Grid
}
