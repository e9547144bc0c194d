// Package geom models raster footprints as polygon rings and multi-polygons.
//
// The package provides the small set of geometric primitives the footprint
// pipeline needs: bounding boxes, signed ring area and orientation, crossing
// number point containment, ring-to-ring relation classification, and segment
// intersection predicates. It is not a general polygon-clipping library; the
// predicates exist so that mask outlines, their holes, and their mutual
// relationships stay topologically consistent.
//
// # Coordinate System
//
// Coordinates are double-precision (x, y) pairs. The sign convention for
// OrientedArea treats counterclockwise rings as positive in a y-up coordinate
// system; in the y-down pixel coordinate system used by the mask package the
// same sign corresponds to visually clockwise rings. All predicates (IsCCW,
// Contains, RingRelation) share this one convention.
//
// # Rings and Holes
//
// A Ring is an ordered closed vertex sequence; the last point does not repeat
// the first. Hole rings reference their containing outer ring by index
// (ParentID) within an Mpoly. The reference is positional, so any operation
// that removes or reorders rings must fix the references up; DeleteRing does
// this explicitly.
//
// # Boundary Rule
//
// A point exactly on a ring edge counts as outside. The crossing test uses
// half-open vertical spans and a strict comparison against the edge crossing,
// which makes the rule exact for axis-parallel edges — the only kind produced
// by rings traced from a pixel mask.
//
// # Error Handling
//
// Degenerate inputs (coincident segments when disallowed, intersection of
// parallel lines) are reported as typed sentinel errors, never as NaN results.
package geom
