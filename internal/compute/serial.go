package compute

import (
	"context"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// SerialBackend visits columns in the outer loop and rows in the inner
// loop, one cell at a time.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string { return "serial" }

func (s *SerialBackend) Fill(ctx context.Context, p fractal.Params, x, y []float32, n *fractal.Grid) error {
	for i := range x {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := range y {
			n.Set(i, j, p.EscapeAt(x[i], y[j]))
		}
	}
	return nil
}
