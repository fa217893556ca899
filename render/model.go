package render

import (
	"fmt"

	"github.com/MartinNikolovMarinov/rendering-technique/obj"
)

// Model holds owned copies of a mesh's 4-component vertex array and a
// triangular face list of 0-based indices into it.
type Model struct {
	Vertices []obj.Vertex
	Faces    [][3]int
}

// NewModelFromObj converts o into a Model, copying the vertex array as-is
// and converting each face's v indices from 1-based to 0-based.
//
// A positive index i converts to i-1. A negative index i converts to
// len(vertices)+i, counting back from the end of the whole vertex array:
// index -1 is the last vertex in the file, not the last vertex read before
// the face line. An index of 0, which the format never produces validly, is
// rejected.
func NewModelFromObj(o *obj.WavefrontObj) (*Model, error) {
	m := &Model{
		Vertices: append([]obj.Vertex(nil), o.Vertices...),
		Faces:    make([][3]int, 0, o.FacesCount()),
	}

	for faceIdx, face := range o.Faces {
		var tri [3]int
		for corner := 0; corner < 3; corner++ {
			if !face.HasV(corner) {
				return nil, fmt.Errorf("render: face %d corner %d has no v index", faceIdx, corner)
			}
			zero, err := toZeroBased(int(face.V[corner]), len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("render: face %d corner %d: %w", faceIdx, corner, err)
			}
			tri[corner] = zero
		}
		m.Faces = append(m.Faces, tri)
	}

	return m, nil
}

func toZeroBased(idx, vertexCount int) (int, error) {
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0:
		zero := vertexCount + idx
		if zero < 0 {
			return 0, fmt.Errorf("negative index %d out of range for %d vertices", idx, vertexCount)
		}
		return zero, nil
	default:
		return 0, fmt.Errorf("index 0 is not a valid 1-based OBJ index")
	}
}
