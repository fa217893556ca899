package obj

import "github.com/MartinNikolovMarinov/rendering-technique/surface"

// Vertex is a homogeneous 4-component vertex as read from a `v` line. W is
// left at its zero value when the line supplies only x, y, z — this package
// never substitutes a conventional default of 1.0; callers that need the
// homogeneous convention apply it themselves.
type Vertex struct {
	X, Y, Z, W float32
}

// maskBit returns the set-mask bit position for dimension dim (0=v, 1=vt,
// 2=vn) at triangle corner corner (0, 1, or 2).
func maskBit(dim, corner int) uint {
	return uint(dim*3 + corner)
}

// Face is a triangular face as read from an `f` line: three corners, each
// with up to three index fields (v, vt, vn). A field that was not present in
// the source line is stored as -1 and its corresponding Mask bit is 0.
// Indices are stored exactly as read: 1-based, and possibly negative (the
// format allows indices relative to the end of the vertex list; this
// package does not normalize them — see render.NewModelFromObj for the one
// place indices, positive and negative, are converted to 0-based).
type Face struct {
	V, VT, VN [3]int32
	// Mask is a 9-bit field; bit (dim*3+corner) is set iff that slot was
	// present in the source line, where dim is 0 for v, 1 for vt, 2 for vn.
	Mask uint16
}

// HasV reports whether corner's v field was present.
func (f Face) HasV(corner int) bool { return f.Mask&(1<<maskBit(0, corner)) != 0 }

// HasVT reports whether corner's vt field was present.
func (f Face) HasVT(corner int) bool { return f.Mask&(1<<maskBit(1, corner)) != 0 }

// HasVN reports whether corner's vn field was present.
func (f Face) HasVN(corner int) bool { return f.Mask&(1<<maskBit(2, corner)) != 0 }

// WavefrontObj is the in-memory result of parsing an OBJ file's `v` and `f`
// directives.
type WavefrontObj struct {
	alloc surface.Allocator

	Vertices []Vertex
	Faces    []Face
}

// VerticesCount returns the number of parsed vertex records.
func (o *WavefrontObj) VerticesCount() int { return len(o.Vertices) }

// FacesCount returns the number of parsed face records.
func (o *WavefrontObj) FacesCount() int { return len(o.Faces) }

// Free drops this WavefrontObj's allocator reference, if any. It releases
// no buffer: LoadFile frees the file buffer it allocated before returning,
// and the Vertices and Faces slices are ordinary garbage-collected Go memory.
func (o *WavefrontObj) Free() {
	if o == nil || o.alloc == nil {
		return
	}
	o.alloc = nil
}
