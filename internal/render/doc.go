// Package render turns escape grids into image files.
//
//   - [Image]: one pixel per cell through a colormap, masked cells transparent
//   - [Heatmap]: block cells with a colorbar, from a pivoted CSV table
//   - [Animate]: one GIF frame per iteration budget
//
// Row 0 of a grid (the smallest imaginary part) is drawn at the top of the
// image.
package render
