package render

import (
	"fmt"

	math "github.com/chewxy/math32"

	"github.com/MartinNikolovMarinov/rendering-technique/obj"
	"github.com/MartinNikolovMarinov/rendering-technique/raster"
	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

// project maps a vertex's x/y plane from [-1,1]^2 to pixel coordinates
// [0,width-1] x [0,height-1], orthographically (z is ignored).
func project(v obj.Vertex, width, height int) raster.Point {
	x := (v.X + 1) * float32(width-1) / 2
	y := (v.Y + 1) * float32(height-1) / 2
	return raster.Point{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
	}
}

// RenderModel projects every face of m onto s and draws it with color,
// either as a wireframe outline (StrokeTriangle) or solid fill (FillTriangle).
//
// Vertices outside [-1,1]^2 project outside the surface; the caller is
// responsible for ensuring bounds, since the rasterizer's fill/stroke
// operations are assertion-fatal on out-of-bounds coordinates. No clipping
// is implemented here.
func RenderModel(s *surface.Surface, m *Model, color raster.Color, wireframe bool) error {
	w, h := s.Width(), s.Height()

	for faceIdx, face := range m.Faces {
		var pts [3]raster.Point
		for corner, vi := range face {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("render: face %d corner %d vertex index %d out of range (%d vertices)",
					faceIdx, corner, vi, len(m.Vertices))
			}
			pts[corner] = project(m.Vertices[vi], w, h)
		}

		if wireframe {
			raster.StrokeTriangle(s, pts[0], pts[1], pts[2], color)
		} else {
			raster.FillTriangle(s, pts[0], pts[1], pts[2], color)
		}
	}

	return nil
}
