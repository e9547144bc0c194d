// Package raster provides the collaborators the mask builder consumes: block
// oriented raster sources, the no-data classifier, an observational debug
// plot, and progress reporting.
//
// # Source Contract
//
// A Source exposes pixel samples band by band in blocks of a source-defined
// size. Bands are 1-based. Sources advertise whether a band can be read on
// the 8-bit fast path; wider data is read as float64. Both paths must yield
// the same classification results for the same pixels.
//
// # Image-Backed Sources
//
// ImageSource adapts a decoded image.Image: bands 1..4 are the red, green,
// blue, and alpha planes; the luminance variant exposes a single grayscale
// band. RasterCache caches decoded images across operations the same way
// repeated tool calls expect.
//
// # Observational Collaborators
//
// DebugPlot and ProgressFunc never influence mask results; a nil plot or
// progress function is a no-op everywhere.
package raster
