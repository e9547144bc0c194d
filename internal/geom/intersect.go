package geom

import (
	"errors"
	"fmt"
	"math"
)

// Typed degeneracy errors. Callers decide whether to skip or abort; no
// predicate returns NaN or a sentinel coordinate in place of one of these.
var (
	// ErrCoincident is returned when two segments lie on the same line and
	// overlap, and the caller asked for that condition to be fatal.
	ErrCoincident = errors.New("segments are coincident")

	// ErrParallel is returned when an intersection point is requested for
	// parallel lines.
	ErrParallel = errors.New("lines are parallel")
)

// Relation classifies how two rings relate topologically.
type Relation int

const (
	// RelContains: r1 fully contains r2.
	RelContains Relation = iota
	// RelContainedBy: r1 is fully inside r2.
	RelContainedBy
	// RelCrosses: the ring boundaries properly intersect.
	RelCrosses
	// RelDisjoint: the rings share no area.
	RelDisjoint
)

// String returns the relation name.
func (rel Relation) String() string {
	switch rel {
	case RelContains:
		return "contains"
	case RelContainedBy:
		return "contained_by"
	case RelCrosses:
		return "crosses"
	case RelDisjoint:
		return "disjoint"
	}
	return fmt.Sprintf("relation(%d)", int(rel))
}

// LineIntersectsLine reports whether segment p1-p2 properly crosses segment
// p3-p4. Touches at shared endpoints do not count as crossings.
//
// Coincident segments (same line, overlapping) return ErrCoincident when
// failOnCoincident is set, since a caller walking ring edges cannot safely
// classify such a pair; otherwise they are reported as non-intersecting.
// Parallel but non-coincident segments never intersect.
func LineIntersectsLine(p1, p2, p3, p4 Vertex, failOnCoincident bool) (bool, error) {
	if math.Max(p1.X, p2.X) < math.Min(p3.X, p4.X) ||
		math.Min(p1.X, p2.X) > math.Max(p3.X, p4.X) ||
		math.Max(p1.Y, p2.Y) < math.Min(p3.Y, p4.Y) ||
		math.Min(p1.Y, p2.Y) > math.Max(p3.Y, p4.Y) {
		return false, nil
	}

	numerA := (p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)
	numerB := (p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)

	if denom == 0 {
		if numerA == 0 && numerB == 0 {
			if failOnCoincident {
				return false, ErrCoincident
			}
			return false, nil
		}
		return false, nil
	}

	ua := numerA / denom
	ub := numerB / denom
	return ua > 0 && ua < 1 && ub > 0 && ub < 1, nil
}

// LineLineIntersection returns the intersection point of the two infinite
// lines through p1-p2 and p3-p4. Parallel lines return ErrParallel; callers
// should run the intersects check first.
func LineLineIntersection(p1, p2, p3, p4 Vertex) (Vertex, error) {
	numerA := (p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if denom == 0 {
		return Vertex{}, ErrParallel
	}
	ua := numerA / denom
	return Vertex{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}, nil
}

// RingRelation classifies the topological relation between two rings.
//
// Disjoint bounding boxes short-circuit to RelDisjoint without per-edge work.
// Otherwise any proper edge crossing yields RelCrosses; coincident edge pairs
// are tolerated as non-crossing. With no crossing the rings are nested or
// separate, decided by containment of one representative vertex each way.
func RingRelation(r1, r2 *Ring) Relation {
	if Disjoint(r1.Bbox(), r2.Bbox()) {
		return RelDisjoint
	}

	n1 := len(r1.Pts)
	n2 := len(r2.Pts)
	for i := 0; i < n1; i++ {
		a1 := r1.Pts[i]
		a2 := r1.Pts[(i+1)%n1]
		for j := 0; j < n2; j++ {
			b1 := r2.Pts[j]
			b2 := r2.Pts[(j+1)%n2]
			hit, _ := LineIntersectsLine(a1, a2, b1, b2, false)
			if hit {
				return RelCrosses
			}
		}
	}

	if n2 > 0 && r1.Contains(r2.Pts[0]) {
		return RelContains
	}
	if n1 > 0 && r2.Contains(r1.Pts[0]) {
		return RelContainedBy
	}
	return RelDisjoint
}
