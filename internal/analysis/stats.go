package analysis

import "github.com/san-kum/mandelscope/internal/fractal"

// Summary describes one grid.
type Summary struct {
	Cells   int
	Masked  int
	Escaped int
	Min     int
	Max     int
	Mean    float64
}

func (s Summary) MaskedFraction() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Masked) / float64(s.Cells)
}

func Summarize(n *fractal.Grid) Summary {
	s := Summary{Cells: len(n.Cells)}
	sum := 0
	for _, v := range n.Cells {
		if v == 0 {
			s.Masked++
			continue
		}
		sum += int(v)
	}
	s.Escaped = s.Cells - s.Masked
	s.Min, s.Max, _ = n.Range()
	if s.Escaped > 0 {
		s.Mean = float64(sum) / float64(s.Escaped)
	}
	return s
}

// Histogram counts escaped cells by iteration. Index k holds the number of
// cells equal to k; index 0 counts masked cells. The slice has length
// maxIter, or max+1 when a cell exceeds it.
func Histogram(n *fractal.Grid, maxIter int) []int {
	size := maxIter
	if _, hi, ok := n.Range(); ok && hi+1 > size {
		size = hi + 1
	}
	if size < 1 {
		size = 1
	}
	hist := make([]int, size)
	for _, v := range n.Cells {
		hist[v]++
	}
	return hist
}
