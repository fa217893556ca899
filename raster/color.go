package raster

// Color is an 8-bit-per-channel RGBA color used by every drawing operation
// in this package. Pixel writers below pack it into whatever byte layout
// the target surface's pixel format requires.
type Color struct {
	R, G, B, A uint8
}

// Common colors mirrored from the toolchain's original palette.
var (
	Blue   = Color{R: 0, G: 0, B: 255, A: 255}
	Red    = Color{R: 255, G: 0, B: 0, A: 255}
	Green  = Color{R: 0, G: 255, B: 0, A: 255}
	Yellow = Color{R: 255, G: 255, B: 0, A: 255}
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	Gray   = Color{R: 128, G: 128, B: 128, A: 255}
)
