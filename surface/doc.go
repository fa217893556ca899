// Package surface defines the pixel-buffer data model shared by the rest of
// the toolchain: closed enumerations for PixelFormat and Origin, and the
// Surface type itself.
//
// A Surface owns its backing bytes iff it was constructed with an
// Allocator; ownership is decided once, at construction, and never changes.
// Freeing a non-owning Surface is a no-op. All coordinate operations used by
// callers of this package (notably the raster package) are in pixel units
// and address storage space directly — Origin only changes how an external
// reader (a file codec or a previewer) is meant to interpret row 0.
package surface
