package fractal

import "errors"

// Validation errors returned by [Params.Validate].
var (
	// ErrResolution indicates a non-positive pixel count on either axis.
	ErrResolution = errors.New("fractal: resolution must be at least 1x1")

	// ErrBounds indicates an inverted, degenerate or non-finite bounding box.
	ErrBounds = errors.New("fractal: invalid bounding box")

	// ErrBudget indicates a non-positive iteration budget.
	ErrBudget = errors.New("fractal: iteration budget must be positive")

	// ErrHorizon indicates a non-positive or non-finite escape horizon.
	ErrHorizon = errors.New("fractal: horizon must be positive and finite")

	// ErrPrecision indicates an unknown arithmetic precision name.
	ErrPrecision = errors.New("fractal: unknown precision")
)
