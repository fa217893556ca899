package tga

import "github.com/MartinNikolovMarinov/rendering-technique/surface"

// FileType selects which TGA layout the encoder writes.
type FileType int

const (
	// Original is the v1 layout: header followed by image data, no footer.
	Original FileType = iota
	// New is the v2 layout: header, image data, then a 26-byte footer.
	New
)

// TGAImage is a decoded TGA file: the whole on-disk byte buffer plus the
// offsets LoadFile discovered within it. Offsets that mark an absent region
// are -1, except that in a v2 file DeveloperAreaOffset and
// ExtensionAreaOffset hold the footer's stored values, where 0 means absent.
// The -1 sentinel mirrors the source format's own sentinel convention (see the
// design note on tagged sum types vs. sentinels — a faithful port keeps this
// single representation rather than mixing in an optional-int type for only
// some of the fields).
type TGAImage struct {
	alloc surface.Allocator

	// Data is the entire file contents, owned by alloc if alloc is non-nil.
	Data []byte

	Header Header
	// Footer is nil for a v1 (Original) file.
	Footer *Footer

	HeaderOffset        int
	ImageIDOffset       int
	ColorMapDataOffset  int
	ImageDataOffset     int
	DeveloperAreaOffset int
	ExtensionAreaOffset int
	FooterOffset        int
}

// Free releases the owned byte buffer, if any. It is a no-op if the
// TGAImage was not constructed with an allocator.
func (t *TGAImage) Free() {
	if t == nil || t.alloc == nil {
		return
	}
	t.alloc.Free(t.Data)
	t.Data = nil
}

// IsNew reports whether this image carries a v2 footer.
func (t *TGAImage) IsNew() bool {
	return t.Footer != nil
}
