// Package mask builds binary validity masks from raster band samples.
//
// A BitGrid is a dense row-major boolean grid addressed by pixel coordinates.
// BuildMask classifies each pixel of one or more bands against a no-data
// definition: the first band initializes the mask, and later bands either
// widen it (any band having data keeps the pixel, the default) or narrow it
// (all bands must agree, invert mode). Erode removes weakly connected pixels
// and Centroid reports the mean valid-pixel coordinate.
//
// Pixel coordinates are 0-based with (0, 0) at the top-left; reads outside
// the grid return false rather than faulting, which is what the erosion
// kernel relies on at the border.
//
// Scans are single-threaded and run to completion or fail with a
// configuration error before any pixel is written; no partial mask is ever
// returned.
package mask
