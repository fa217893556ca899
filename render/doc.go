// Package render converts a parsed Wavefront mesh into draw calls against a
// surface: it owns the 1-based-to-0-based face index conversion and the
// orthographic projection that maps a vertex's [-1,1]^2 xy plane onto pixel
// coordinates.
package render
