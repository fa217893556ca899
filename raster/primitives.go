package raster

import (
	"fmt"
	"math"

	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// FillPixel writes color at pixel (x, y) in storage space.
//
// x and y must be in bounds ([0, width) and [0, height) respectively); this
// is a programmer precondition and violating it panics.
func FillPixel(s *surface.Surface, x, y int, color Color) {
	assertf(s.Data() != nil, "raster: surface data is nil")
	assertf(y >= 0 && y < s.Height(), "raster: y=%d out of bounds [0,%d)", y, s.Height())
	assertf(x >= 0 && x < s.Width(), "raster: x=%d out of bounds [0,%d)", x, s.Width())

	idx := y*s.Pitch() + x*s.Bpp()
	assertf(idx+s.Bpp() <= s.Size(), "raster: pixel write past end of surface")

	pickSetPixelFn(s.Format())(s.Data(), idx, color)
}

// FillRect fills the axis-aligned rectangle [x, x+w) x [y, y+h) with color.
//
// w and h must be positive and the rectangle must lie entirely within the
// surface; violating this is a programmer error and panics.
func FillRect(s *surface.Surface, x, y, w, h int, color Color) {
	assertf(s.Data() != nil, "raster: surface data is nil")
	assertf(w > 0 && h > 0, "raster: rect has non-positive size %dx%d", w, h)
	assertf(x >= 0 && y >= 0, "raster: rect origin (%d,%d) out of bounds", x, y)
	assertf(y+h <= s.Height(), "raster: rect extends past surface height")
	assertf(x+w <= s.Width(), "raster: rect extends past surface width")

	setPixel := pickSetPixelFn(s.Format())
	data := s.Data()
	pitch := s.Pitch()
	bpp := s.Bpp()

	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			idx := row*pitch + col*bpp
			setPixel(data, idx, color)
		}
	}
}

// FillLine draws an integer Bresenham-equivalent line between (ax, ay) and
// (bx, by), inclusive of both endpoints. fillLine(a, b) and fillLine(b, a)
// produce identical pixel sets.
//
// Both endpoints must already be in bounds; the caller is responsible for
// clipping. Violating this is a programmer error and panics.
func FillLine(s *surface.Surface, ax, ay, bx, by int, color Color) {
	assertf(s.Data() != nil, "raster: surface data is nil")
	assertf(ax >= 0 && ay >= 0 && bx >= 0 && by >= 0, "raster: line endpoint out of bounds (negative)")
	assertf(ax < s.Width() && bx < s.Width(), "raster: line x out of bounds")
	assertf(ay < s.Height() && by < s.Height(), "raster: line y out of bounds")
	assertf(s.Bpp() > 0, "raster: invalid bytes-per-pixel")

	setPixel := pickSetPixelFn(s.Format())
	data := s.Data()
	pitch := s.Pitch()
	bpp := s.Bpp()

	transpose := iabs(ax-bx) < iabs(ay-by)
	if transpose {
		ax, ay = ay, ax
		bx, by = by, bx
	}

	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	for x := ax; x <= bx; x++ {
		var t float64
		if bx != ax {
			t = float64(x-ax) / float64(bx-ax)
		}
		y := int(math.Round(float64(ay) + float64(by-ay)*t))

		var idx int
		if transpose {
			idx = x*pitch + y*bpp
		} else {
			idx = y*pitch + x*bpp
		}
		setPixel(data, idx, color)
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
