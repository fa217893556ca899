// Package rendertech is the shared root of a small graphics toolchain: a
// bit-exact TGA (Truevision Targa) codec, a Wavefront OBJ parser, and an
// integer software rasterizer, tied together by a model loader that renders
// triangle meshes onto a pixel surface.
//
// # Subsystems
//
//   - surface: pixel formats, origin semantics, and the Surface pixel buffer.
//   - raster: pixel/rect/line/triangle drawing onto a Surface.
//   - tga: decodes and encodes Original (v1) and New (v2) TGA files.
//   - obj: parses the `v`/`f` subset of Wavefront OBJ v3.0 ASCII files.
//   - render: orthographic projection and triangle-fill glue between obj and raster.
//
// # Logging
//
// This package only carries shared, package-wide logging configuration.
// By default nothing is logged; call SetLogger to observe the Debug-level
// diagnostics emitted by the tga and obj packages (parsed TGA header fields
// and v1/v2 classification, parsed OBJ vertex and face counts).
package rendertech
