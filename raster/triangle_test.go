package raster

import (
	"testing"

	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

func TestStrokeTriangleDrawsThreeEdges(t *testing.T) {
	s := newTestSurface(t, 20, 20, surface.BGR888)
	StrokeTriangle(s, Point{2, 2}, Point{10, 2}, Point{2, 15}, White)

	// Each vertex must be covered, since every edge includes its endpoints.
	for _, p := range []Point{{2, 2}, {10, 2}, {2, 15}} {
		idx := p.Y*s.Pitch() + p.X*s.Bpp()
		if s.Data()[idx] == 0 && s.Data()[idx+1] == 0 && s.Data()[idx+2] == 0 {
			t.Fatalf("vertex %v not covered by stroke", p)
		}
	}
}

func TestFillTriangleCoversInterior(t *testing.T) {
	s := newTestSurface(t, 20, 20, surface.BGR888)
	FillTriangle(s, Point{0, 0}, Point{10, 0}, Point{0, 10}, White)

	// The centroid of this right triangle is well inside it.
	idx := 3*s.Pitch() + 3*s.Bpp()
	if s.Data()[idx] == 0 && s.Data()[idx+1] == 0 && s.Data()[idx+2] == 0 {
		t.Fatal("centroid pixel not filled")
	}

	// A point outside the hypotenuse (x+y > 10) must stay empty.
	idx = 9*s.Pitch() + 9*s.Bpp()
	if s.Data()[idx] != 0 || s.Data()[idx+1] != 0 || s.Data()[idx+2] != 0 {
		t.Fatal("pixel outside the triangle was filled")
	}
}

func TestFillTriangleWindingIndependence(t *testing.T) {
	s1 := newTestSurface(t, 20, 20, surface.BGR888)
	s2 := newTestSurface(t, 20, 20, surface.BGR888)

	FillTriangle(s1, Point{1, 1}, Point{15, 2}, Point{3, 16}, White)
	FillTriangle(s2, Point{1, 1}, Point{3, 16}, Point{15, 2}, White)

	if countNonZeroPixels(s1) != countNonZeroPixels(s2) {
		t.Fatalf("fill coverage depends on vertex order: %d vs %d",
			countNonZeroPixels(s1), countNonZeroPixels(s2))
	}
}

func TestFillTriangleDegenerateDrawsNothing(t *testing.T) {
	s := newTestSurface(t, 10, 10, surface.BGR888)
	// Collinear points: zero area.
	FillTriangle(s, Point{0, 0}, Point{5, 5}, Point{9, 9}, White)

	if n := countNonZeroPixels(s); n != 0 {
		t.Fatalf("degenerate triangle filled %d pixels, want 0", n)
	}
}

func TestFillTriangleCoverageCount(t *testing.T) {
	s := newTestSurface(t, 20, 20, surface.BGR888)
	a, b, c := Point{1, 1}, Point{15, 2}, Point{3, 16}
	FillTriangle(s, a, b, c, White)

	// Coverage must equal the triangle's area to within O(perimeter):
	// edgeFn gives twice the signed area, and no edge exceeds its
	// manhattan length in boundary pixels.
	area := iabs(edgeFn(a, b, c)) / 2
	perim := iabs(a.X-b.X) + iabs(a.Y-b.Y) +
		iabs(b.X-c.X) + iabs(b.Y-c.Y) +
		iabs(c.X-a.X) + iabs(c.Y-a.Y)

	got := countNonZeroPixels(s)
	if got < area-perim || got > area+perim {
		t.Fatalf("coverage = %d pixels, want %d +/- %d", got, area, perim)
	}
}
