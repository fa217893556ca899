// Package raster draws pixels, rectangles, Bresenham-style lines, and
// filled/stroked triangles onto a surface.Surface of any supported pixel
// format. Every operation mutates an existing Surface; none of them
// allocate.
//
// The rasterizer always writes as if the Surface's origin were TopLeft —
// pixel coordinates passed to these functions are storage-space coordinates,
// not display-space ones. A Surface's Origin only changes how an external
// codec or previewer interprets row 0.
//
// Preconditions (non-null data, in-bounds coordinates, positive dimensions)
// are programmer errors, not runtime failure modes: violating them panics
// rather than returning an error.
package raster
