package fractal

// Linspace returns n evenly spaced samples over [start, stop], inclusive at
// both ends. Positions are computed in float64 and stored as float32; the
// last sample is exactly float32(stop). n <= 0 yields an empty axis and
// n == 1 yields [start].
func Linspace(start, stop float64, n int) []float32 {
	if n <= 0 {
		return []float32{}
	}
	axis := make([]float32, n)
	if n == 1 {
		axis[0] = float32(start)
		return axis
	}
	step := (stop - start) / float64(n-1)
	for k := 0; k < n; k++ {
		axis[k] = float32(float64(k)*step + start)
	}
	axis[n-1] = float32(stop)
	return axis
}

// Axes builds the X (real) and Y (imaginary) sample axes.
func Axes(b Bounds, r Resolution) (x, y []float32) {
	return Linspace(b.Xmin, b.Xmax, r.Xn), Linspace(b.Ymin, b.Ymax, r.Yn)
}
