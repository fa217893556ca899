package raster

import "github.com/MartinNikolovMarinov/rendering-technique/surface"

// Point is an integer pixel coordinate in storage space.
type Point struct {
	X, Y int
}

// StrokeTriangle draws the outline of the triangle a-b-c as three calls to
// FillLine. No vertex ordering is assumed.
func StrokeTriangle(s *surface.Surface, a, b, c Point, color Color) {
	FillLine(s, a.X, a.Y, b.X, b.Y, color)
	FillLine(s, b.X, b.Y, c.X, c.Y, color)
	FillLine(s, c.X, c.Y, a.X, a.Y, color)
}

// FillTriangle rasterizes the triangle a-b-c by scanning its axis-aligned
// bounding box and filling every pixel whose center has non-negative
// barycentric weights with respect to the three vertices (ties are filled).
// A degenerate (zero-area) triangle draws nothing. No vertex ordering is
// assumed.
func FillTriangle(s *surface.Surface, a, b, c Point, color Color) {
	minX, maxX := minInt3(a.X, b.X, c.X), maxInt3(a.X, b.X, c.X)
	minY, maxY := minInt3(a.Y, b.Y, c.Y), maxInt3(a.Y, b.Y, c.Y)

	area := edgeFn(a, b, c)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{X: x, Y: y}

			w0 := edgeFn(b, c, p)
			w1 := edgeFn(c, a, p)
			w2 := edgeFn(a, b, p)

			// Normalize sign against the triangle's own winding so the
			// "non-negative" rule works regardless of vertex order.
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}

			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				FillPixel(s, x, y, color)
			}
		}
	}
}

// edgeFn is the 2D cross product (b-a) x (p-a), i.e. twice the signed area
// of triangle a-b-p.
func edgeFn(a, b, p Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
