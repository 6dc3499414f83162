// Package fractal provides the escape-time core of mandelscope.
//
// The package maps a rectangle of the complex plane onto a pixel grid and
// evaluates the Mandelbrot recurrence z = z*z + c for every sample:
//
//   - [Linspace]: evenly spaced 32-bit sample axis (inclusive at both ends)
//   - [Escape]: escape-time kernel with the fixed horizon 2.0
//   - [Grid]: dense row-major grid of escape counts
//   - [Params]: bounds, resolution, iteration budget and precision
//
// # Sentinel
//
// A cell value of 0 means either "escaped before the first iteration"
// (|c| > horizon) or "never escaped within the budget". Both cases are
// reported as 0 and consumers treat such cells as masked:
//
//	if grid.Masked(i, j) {
//	    // draw background
//	}
//
// Scheduling (serial or parallel) lives in package compute; this package
// is pure and holds no global state.
package fractal
