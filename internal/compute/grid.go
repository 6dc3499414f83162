package compute

import (
	"context"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// ComputeGrid evaluates p on the active backend. It returns the sample axes
// and a freshly allocated grid; nothing is cached between calls.
func ComputeGrid(p fractal.Params) (*fractal.Result, error) {
	return ComputeGridWith(context.Background(), activeBackend, p)
}

// ComputeGridContext is ComputeGrid with cancellation. A canceled call
// returns ctx.Err() and no grid.
func ComputeGridContext(ctx context.Context, p fractal.Params) (*fractal.Result, error) {
	return ComputeGridWith(ctx, activeBackend, p)
}

func ComputeGridWith(ctx context.Context, b Backend, p fractal.Params) (*fractal.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Precision == "" {
		p.Precision = fractal.Double
	}

	x, y := fractal.Axes(p.Bounds, p.Resolution)
	n := fractal.NewGrid(p.Resolution.Xn, p.Resolution.Yn)

	if err := b.Fill(ctx, p, x, y, n); err != nil {
		return nil, err
	}

	return &fractal.Result{Params: p, X: x, Y: y, N: n}, nil
}
