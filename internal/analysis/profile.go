package analysis

import (
	"context"

	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/fractal"
)

// ProfilePoint is the grid summary at one iteration budget.
type ProfilePoint struct {
	Budget int
	Summary
}

// Budgets returns steps evenly spaced budgets from lo to hi inclusive,
// without duplicates.
func Budgets(lo, hi, steps int) []int {
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if steps <= 1 || hi == lo {
		return []int{hi}
	}

	out := make([]int, 0, steps)
	for k := 0; k < steps; k++ {
		b := lo + (hi-lo)*k/(steps-1)
		if len(out) > 0 && out[len(out)-1] == b {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BudgetProfile recomputes p at every budget and summarizes each grid.
func BudgetProfile(ctx context.Context, p fractal.Params, budgets []int) ([]ProfilePoint, error) {
	points := make([]ProfilePoint, 0, len(budgets))
	for _, b := range budgets {
		q := p
		q.MaxIter = b
		res, err := compute.ComputeGridContext(ctx, q)
		if err != nil {
			return nil, err
		}
		points = append(points, ProfilePoint{Budget: b, Summary: Summarize(res.N)})
	}
	return points, nil
}

// MaskedSeries extracts the masked fraction of each point, for plotting.
func MaskedSeries(points []ProfilePoint) []float64 {
	out := make([]float64, len(points))
	for k, pt := range points {
		out[k] = pt.MaskedFraction()
	}
	return out
}
