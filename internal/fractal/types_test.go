package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestParams_Validate(t *testing.T) {
	good := NewParams(ClassicBounds, Resolution{100, 100}, 80)

	tests := []struct {
		name   string
		mutate func(p *Params)
		want   error
	}{
		{"valid", func(p *Params) {}, nil},
		{"zero xn", func(p *Params) { p.Resolution.Xn = 0 }, ErrResolution},
		{"negative yn", func(p *Params) { p.Resolution.Yn = -1 }, ErrResolution},
		{"inverted x", func(p *Params) { p.Bounds.Xmin, p.Bounds.Xmax = 1, -1 }, ErrBounds},
		{"degenerate y", func(p *Params) { p.Bounds.Ymin = p.Bounds.Ymax }, ErrBounds},
		{"nan bound", func(p *Params) { p.Bounds.Xmin = math.NaN() }, ErrBounds},
		{"inf bound", func(p *Params) { p.Bounds.Ymax = math.Inf(1) }, ErrBounds},
		{"zero budget", func(p *Params) { p.MaxIter = 0 }, ErrBudget},
		{"zero horizon", func(p *Params) { p.Horizon = 0 }, ErrHorizon},
		{"nan horizon", func(p *Params) { p.Horizon = math.NaN() }, ErrHorizon},
		{"bad precision", func(p *Params) { p.Precision = "quad" }, ErrPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := good
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in   string
		want Precision
		ok   bool
	}{
		{"", Double, true},
		{"double", Double, true},
		{" Single ", Single, true},
		{"half", "", false},
	}
	for _, tt := range tests {
		got, err := ParsePrecision(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParsePrecision(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestBounds_ZoomPan(t *testing.T) {
	b := Bounds{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}

	z := b.Zoom(0.5)
	if z.Xmin != -1 || z.Xmax != 1 || z.Ymin != -0.5 || z.Ymax != 0.5 {
		t.Errorf("Zoom(0.5) = %v", z)
	}

	p := b.Pan(0.25, -0.5)
	if p.Xmin != -1 || p.Xmax != 3 || p.Ymin != -2 || p.Ymax != 0 {
		t.Errorf("Pan = %v", p)
	}
	if p.Width() != b.Width() || p.Height() != b.Height() {
		t.Error("Pan changed box size")
	}
}
