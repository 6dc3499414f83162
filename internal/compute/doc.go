// Package compute schedules escape-time evaluation over a grid.
//
// The package automatically selects the best available backend:
//
//   - CPU: rows partitioned across one goroutine per core
//   - Serial: the literal nested loop, one cell after another
//
// Both backends write every cell exactly once and produce identical grids,
// so the choice only affects wall time:
//
//	res, err := compute.ComputeGrid(fractal.NewParams(fractal.ClassicBounds,
//	    fractal.Resolution{Xn: 3000, Yn: 3000}, 80))
//
// At 3000x3000 the CPU backend is roughly NumCPU times faster than serial.
package compute
