package fractal

import (
	"math"
	"math/cmplx"
)

// Escape returns the iteration at which the orbit of c first leaves the
// disc of radius DefaultHorizon, or 0 if it stays inside for maxIter
// iterations. An orbit that starts outside the disc also reports 0.
func Escape(c complex128, maxIter int) int {
	return EscapeHorizon(c, maxIter, DefaultHorizon)
}

// EscapeHorizon is Escape with an explicit escape radius.
func EscapeHorizon(c complex128, maxIter int, horizon float64) int {
	z := c
	for n := 0; n < maxIter; n++ {
		if cmplx.Abs(z) > horizon {
			return n
		}
		z = z*z + c
	}
	return 0
}

// Escape64 runs the recurrence in complex64. Every product is rounded to
// float32 explicitly so that no fused multiply-add changes the result.
func Escape64(c complex64, maxIter int, horizon float32) int {
	cr, ci := real(c), imag(c)
	zr, zi := cr, ci
	for n := 0; n < maxIter; n++ {
		if abs32(zr, zi) > horizon {
			return n
		}
		rr := float32(zr * zr)
		ii := float32(zi * zi)
		ri := float32(zr * zi)
		zr = float32(rr-ii) + cr
		zi = float32(ri+ri) + ci
	}
	return 0
}

func abs32(re, im float32) float32 {
	return float32(math.Hypot(float64(re), float64(im)))
}

// EscapeAt evaluates one sample under p's horizon and precision.
func (p Params) EscapeAt(x, y float32) int {
	if p.Precision == Single {
		return Escape64(complex(x, y), p.MaxIter, float32(p.Horizon))
	}
	return EscapeHorizon(complex(float64(x), float64(y)), p.MaxIter, p.Horizon)
}
