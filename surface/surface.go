package surface

import (
	"fmt"
	"image"
	"image/color"
)

// Surface is a 2-D pixel buffer with an explicit pixel format, origin, and
// pitch (bytes per row, which may exceed width*bpp for alignment).
//
// A Surface constructed with an Allocator owns its bytes; IsOwner reports
// this. A non-owning Surface (constructed via NewView) wraps caller-supplied
// bytes and Free is a no-op for it — the invariant "owning objects release
// exactly once" is the caller's responsibility to uphold by calling Free
// exactly once on an owning Surface.
type Surface struct {
	alloc  Allocator
	origin Origin
	format PixelFormat
	width  int
	height int
	pitch  int
	data   []byte
}

// New allocates a new owning Surface of width x height pixels in the given
// format and origin, using alloc to obtain its backing bytes. The pitch is
// exactly width*bpp; the rasterizer always writes as if the origin were
// TopLeft and the stored Origin only affects how codecs and previewers
// interpret row 0.
func New(width, height int, format PixelFormat, origin Origin, alloc Allocator) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: non-positive dimensions %dx%d", width, height)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("surface: invalid pixel format %v", format)
	}
	if alloc == nil {
		return nil, fmt.Errorf("surface: nil allocator")
	}

	pitch := width * format.BytesPerPixel()
	size := pitch * height
	if size == 0 {
		return nil, fmt.Errorf("surface: zero-size surface")
	}

	data, err := alloc.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("surface: alloc failed: %w", err)
	}

	return &Surface{
		alloc:  alloc,
		origin: origin,
		format: format,
		width:  width,
		height: height,
		pitch:  pitch,
		data:   data,
	}, nil
}

// NewView wraps existing bytes as a non-owning Surface. data must already
// hold at least height*pitch bytes; Free on the returned Surface is a no-op.
func NewView(width, height, pitch int, format PixelFormat, origin Origin, data []byte) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: non-positive dimensions %dx%d", width, height)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("surface: invalid pixel format %v", format)
	}
	if pitch < width*format.BytesPerPixel() {
		return nil, fmt.Errorf("surface: pitch %d too small for width %d in format %v", pitch, width, format)
	}
	if len(data) < pitch*height {
		return nil, fmt.Errorf("surface: data too small: have %d bytes, need %d", len(data), pitch*height)
	}

	return &Surface{
		origin: origin,
		format: format,
		width:  width,
		height: height,
		pitch:  pitch,
		data:   data,
	}, nil
}

// Free releases the Surface's backing bytes through its Allocator. It is a
// no-op for a non-owning Surface (one created via NewView, or the zero
// value). Calling Free more than once on an owning Surface is a programmer
// error; this type does not guard against it.
func (s *Surface) Free() {
	if s == nil || s.alloc == nil {
		return
	}
	s.alloc.Free(s.data)
	s.data = nil
}

// IsOwner reports whether this Surface owns its backing bytes.
func (s *Surface) IsOwner() bool { return s.alloc != nil }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Pitch returns the number of bytes per scan line in storage.
func (s *Surface) Pitch() int { return s.pitch }

// Format returns the surface's pixel format.
func (s *Surface) Format() PixelFormat { return s.format }

// Origin returns the surface's stored origin.
func (s *Surface) Origin() Origin { return s.origin }

// Bpp returns the bytes-per-pixel of the surface's format.
func (s *Surface) Bpp() int { return s.format.BytesPerPixel() }

// Size returns height*pitch, the number of bytes backing the surface.
func (s *Surface) Size() int { return s.height * s.pitch }

// Data returns the raw backing bytes in storage order. Callers that mutate
// it directly bypass pixel-format packing; prefer the raster package.
func (s *Surface) Data() []byte { return s.data }

// Compile-time interface checks: a Surface can stand in for the stdlib
// image.Image contract a read-only external previewer would consume.
var _ image.Image = (*Surface)(nil)

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image by unpacking the pixel at (x, y) in storage
// space into a standard color.Color, regardless of pixel format.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}
	}

	idx := y*s.pitch + x*s.Bpp()
	b := s.data

	switch s.format {
	case BGRA8888:
		return color.NRGBA{R: b[idx+2], G: b[idx+1], B: b[idx+0], A: b[idx+3]}
	case BGRX8888:
		return color.NRGBA{R: b[idx+2], G: b[idx+1], B: b[idx+0], A: 255}
	case BGR888:
		return color.NRGBA{R: b[idx+2], G: b[idx+1], B: b[idx+0], A: 255}
	case BGRA5551:
		packed := uint16(b[idx]) | uint16(b[idx+1])<<8
		return color.NRGBA{
			R: expand5(uint8(packed>>10) & 0x1F),
			G: expand5(uint8(packed>>5) & 0x1F),
			B: expand5(uint8(packed) & 0x1F),
			A: alpha1(uint8(packed>>15) & 0x1),
		}
	case BGR555:
		packed := uint16(b[idx]) | uint16(b[idx+1])<<8
		return color.NRGBA{
			R: expand5(uint8(packed>>10) & 0x1F),
			G: expand5(uint8(packed>>5) & 0x1F),
			B: expand5(uint8(packed) & 0x1F),
			A: 255,
		}
	default:
		return color.NRGBA{}
	}
}

// expand5 widens a 5-bit channel to 8 bits by replicating the top bits,
// the inverse of the >>3 truncation the raster package's pixel writers use.
func expand5(v uint8) uint8 {
	return (v << 3) | (v >> 2)
}

func alpha1(v uint8) uint8 {
	if v != 0 {
		return 255
	}
	return 0
}
