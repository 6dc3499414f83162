package fractal

import (
	"fmt"
	"math"
	"strings"
)

// DefaultHorizon is the escape threshold used by every default call site.
const DefaultHorizon = 2.0

// Bounds is the sampled rectangle of the complex plane.
type Bounds struct {
	Xmin float64 `yaml:"xmin" json:"xmin"`
	Xmax float64 `yaml:"xmax" json:"xmax"`
	Ymin float64 `yaml:"ymin" json:"ymin"`
	Ymax float64 `yaml:"ymax" json:"ymax"`
}

// ClassicBounds frames the whole set.
var ClassicBounds = Bounds{Xmin: -2.25, Xmax: 0.75, Ymin: -1.25, Ymax: 1.25}

func (b Bounds) Width() float64  { return b.Xmax - b.Xmin }
func (b Bounds) Height() float64 { return b.Ymax - b.Ymin }

func (b Bounds) Center() (float64, float64) {
	return (b.Xmin + b.Xmax) / 2, (b.Ymin + b.Ymax) / 2
}

// Zoom scales the box around its center; factor < 1 zooms in.
func (b Bounds) Zoom(factor float64) Bounds {
	cx, cy := b.Center()
	hw, hh := b.Width()/2*factor, b.Height()/2*factor
	return Bounds{Xmin: cx - hw, Xmax: cx + hw, Ymin: cy - hh, Ymax: cy + hh}
}

// Pan shifts the box by fractions of its own width and height.
func (b Bounds) Pan(fx, fy float64) Bounds {
	dx, dy := b.Width()*fx, b.Height()*fy
	return Bounds{Xmin: b.Xmin + dx, Xmax: b.Xmax + dx, Ymin: b.Ymin + dy, Ymax: b.Ymax + dy}
}

func (b Bounds) Validate() error {
	for _, v := range []float64{b.Xmin, b.Xmax, b.Ymin, b.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrBounds, v)
		}
	}
	if b.Xmin >= b.Xmax {
		return fmt.Errorf("%w: xmin %g must be below xmax %g", ErrBounds, b.Xmin, b.Xmax)
	}
	if b.Ymin >= b.Ymax {
		return fmt.Errorf("%w: ymin %g must be below ymax %g", ErrBounds, b.Ymin, b.Ymax)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", b.Xmin, b.Xmax, b.Ymin, b.Ymax)
}

// Resolution is the pixel count along each axis.
type Resolution struct {
	Xn int `yaml:"xn" json:"xn"`
	Yn int `yaml:"yn" json:"yn"`
}

func (r Resolution) Cells() int { return r.Xn * r.Yn }

func (r Resolution) Validate() error {
	if r.Xn < 1 || r.Yn < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrResolution, r.Xn, r.Yn)
	}
	return nil
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Xn, r.Yn)
}

// Precision selects the arithmetic of the orbit recurrence. Sample axes are
// always stored as float32.
type Precision string

const (
	// Double iterates in complex128 over the float32 samples.
	Double Precision = "double"
	// Single iterates in complex64, matching reduced-precision reference output bit for bit.
	Single Precision = "single"
)

func ParsePrecision(s string) (Precision, error) {
	switch Precision(strings.ToLower(strings.TrimSpace(s))) {
	case Double, "":
		return Double, nil
	case Single:
		return Single, nil
	}
	return "", fmt.Errorf("%w: %q", ErrPrecision, s)
}

// Params is everything one grid computation depends on.
type Params struct {
	Bounds     Bounds
	Resolution Resolution
	MaxIter    int
	Horizon    float64
	Precision  Precision
}

// NewParams returns params with the default horizon and double precision.
func NewParams(b Bounds, r Resolution, maxIter int) Params {
	return Params{
		Bounds:     b,
		Resolution: r,
		MaxIter:    maxIter,
		Horizon:    DefaultHorizon,
		Precision:  Double,
	}
}

func (p Params) Validate() error {
	if err := p.Resolution.Validate(); err != nil {
		return err
	}
	if err := p.Bounds.Validate(); err != nil {
		return err
	}
	if p.MaxIter < 1 {
		return fmt.Errorf("%w: got %d", ErrBudget, p.MaxIter)
	}
	if !(p.Horizon > 0) || math.IsInf(p.Horizon, 0) {
		return fmt.Errorf("%w: got %v", ErrHorizon, p.Horizon)
	}
	if _, err := ParsePrecision(string(p.Precision)); err != nil {
		return err
	}
	return nil
}
