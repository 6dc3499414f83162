// Package viz renders escape grids in the terminal.
//
// The package provides a static preview and an interactive explorer built
// on the Bubble Tea framework:
//
//   - [Preview]: half-block rendering, two grid rows per terminal line
//   - [Explorer]: pan, zoom and budget changes with live recomputation
//   - Theme selection with 4 built-in color schemes for the chrome
//
// # Key Bindings
//
//	Arrows/hjkl - Pan
//	+/-         - Zoom in/out
//	[/]         - Lower/raise iteration budget
//	P           - Cycle palette
//	T           - Cycle theme
//	R           - Reset view
//	Q           - Quit
package viz
