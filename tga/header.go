package tga

import (
	"encoding/binary"
	"fmt"

	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

// HeaderSize is the fixed size in bytes of a TGA header.
const HeaderSize = 18

// Header is the 18-byte packed header present at the start of every TGA
// file. Field order and widths match the on-disk layout exactly; all
// multi-byte integers are little-endian.
type Header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapFirst   uint16
	ColorMapLength  uint16
	ColorMapEntSize uint8
	OffsetX         uint16
	OffsetY         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	Descriptor      uint8
}

// ParseHeader reads a Header from the first HeaderSize bytes of b. b must be
// at least HeaderSize bytes long.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrInvalidFileFormat, HeaderSize, len(b))
	}

	h := Header{
		IDLength:        b[0],
		ColorMapType:    b[1],
		ImageType:       b[2],
		ColorMapFirst:   binary.LittleEndian.Uint16(b[3:5]),
		ColorMapLength:  binary.LittleEndian.Uint16(b[5:7]),
		ColorMapEntSize: b[7],
		OffsetX:         binary.LittleEndian.Uint16(b[8:10]),
		OffsetY:         binary.LittleEndian.Uint16(b[10:12]),
		Width:           binary.LittleEndian.Uint16(b[12:14]),
		Height:          binary.LittleEndian.Uint16(b[14:16]),
		PixelDepth:      b[16],
		Descriptor:      b[17],
	}
	return h, nil
}

// AlphaBits returns the low 4 bits of the descriptor byte.
func (h Header) AlphaBits() int {
	return int(h.Descriptor & 0b1111)
}

// Origin returns the origin encoded in bits 4-5 of the descriptor byte.
func (h Header) Origin() surface.Origin {
	return surface.OriginFromBits(h.Descriptor >> 4)
}

// ColorMapDataSize returns the number of bytes the color-map data occupies,
// or 0 if ColorMapType indicates no color map is present.
func (h Header) ColorMapDataSize() int {
	if h.ColorMapType != 1 {
		return 0
	}
	return int(h.ColorMapLength) * int(h.ColorMapEntSize)
}

// Encode writes h into an 18-byte slice in on-disk layout.
func (h Header) Encode() []byte {
	b := make([]byte, HeaderSize)
	b[0] = h.IDLength
	b[1] = h.ColorMapType
	b[2] = h.ImageType
	binary.LittleEndian.PutUint16(b[3:5], h.ColorMapFirst)
	binary.LittleEndian.PutUint16(b[5:7], h.ColorMapLength)
	b[7] = h.ColorMapEntSize
	binary.LittleEndian.PutUint16(b[8:10], h.OffsetX)
	binary.LittleEndian.PutUint16(b[10:12], h.OffsetY)
	binary.LittleEndian.PutUint16(b[12:14], h.Width)
	binary.LittleEndian.PutUint16(b[14:16], h.Height)
	b[16] = h.PixelDepth
	b[17] = h.Descriptor
	return b
}

// descriptorByte composes a descriptor byte from alpha bits and an origin,
// ORing the two fields rather than overwriting one with the other.
func descriptorByte(alphaBits int, origin surface.Origin) (byte, error) {
	originBits, err := origin.Bits()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	return byte(alphaBits&0b1111) | (originBits << 4), nil
}
