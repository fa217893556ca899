package surface

import "fmt"

// Origin is the orientation of the first stored pixel relative to the image
// rectangle. It is encoded on disk in two bits (see OriginFromBits/Bits) and
// must round-trip exactly through a TGA header descriptor byte.
type Origin int

const (
	// UndefinedOrigin is the zero value, used only as a parse result before
	// an Origin has been established.
	UndefinedOrigin Origin = iota
	BottomLeft
	BottomRight
	TopLeft
	TopRight
)

// String implements fmt.Stringer.
func (o Origin) String() string {
	switch o {
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	default:
		return "Undefined"
	}
}

// Bits encodes o as the two-bit value stored in a TGA image descriptor byte:
// BottomLeft=00, BottomRight=01, TopLeft=10, TopRight=11.
func (o Origin) Bits() (uint8, error) {
	switch o {
	case BottomLeft:
		return 0b00, nil
	case BottomRight:
		return 0b01, nil
	case TopLeft:
		return 0b10, nil
	case TopRight:
		return 0b11, nil
	default:
		return 0, fmt.Errorf("surface: origin %v has no TGA descriptor encoding", o)
	}
}

// OriginFromBits decodes the two-bit TGA descriptor encoding into an Origin.
// Only the low two bits of b are consulted.
func OriginFromBits(b uint8) Origin {
	switch b & 0b11 {
	case 0b00:
		return BottomLeft
	case 0b01:
		return BottomRight
	case 0b10:
		return TopLeft
	default:
		return TopRight
	}
}
