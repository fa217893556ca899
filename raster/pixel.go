package raster

import "github.com/MartinNikolovMarinov/rendering-technique/surface"

// setPixelFn writes color into data at byte offset idx, in a layout
// specific to one pixel format. idx always points at the first byte of the
// target pixel.
type setPixelFn func(data []byte, idx int, c Color)

func setPixelBGRA8888(data []byte, idx int, c Color) {
	data[idx+0] = c.B
	data[idx+1] = c.G
	data[idx+2] = c.R
	data[idx+3] = c.A
}

func setPixelBGRX8888(data []byte, idx int, c Color) {
	data[idx+0] = c.B
	data[idx+1] = c.G
	data[idx+2] = c.R
	data[idx+3] = 0
}

func setPixelBGR888(data []byte, idx int, c Color) {
	data[idx+0] = c.B
	data[idx+1] = c.G
	data[idx+2] = c.R
}

// setPixelBGRA5551 packs the color into a little-endian uint16: bits 0-4
// blue, 5-9 green, 10-14 red, bit 15 alpha — each channel truncated to its
// top bits (>>3 for color, >>7 for alpha).
func setPixelBGRA5551(data []byte, idx int, c Color) {
	b := uint16(c.B >> 3)
	g := uint16(c.G >> 3)
	r := uint16(c.R >> 3)
	a := uint16(c.A >> 7)
	packed := b | (g << 5) | (r << 10) | (a << 15)
	data[idx+0] = uint8(packed & 0xFF)
	data[idx+1] = uint8(packed >> 8)
}

// setPixelBGR555 packs the same way as setPixelBGRA5551 but always clears
// bit 15 — there is no alpha channel in this format.
func setPixelBGR555(data []byte, idx int, c Color) {
	b := uint16(c.B >> 3)
	g := uint16(c.G >> 3)
	r := uint16(c.R >> 3)
	packed := b | (g << 5) | (r << 10)
	data[idx+0] = uint8(packed & 0xFF)
	data[idx+1] = uint8(packed >> 8)
}

func pickSetPixelFn(format surface.PixelFormat) setPixelFn {
	switch format {
	case surface.BGRA8888:
		return setPixelBGRA8888
	case surface.BGRX8888:
		return setPixelBGRX8888
	case surface.BGR888:
		return setPixelBGR888
	case surface.BGRA5551:
		return setPixelBGRA5551
	case surface.BGR555:
		return setPixelBGR555
	default:
		panic("raster: invalid pixel format")
	}
}
