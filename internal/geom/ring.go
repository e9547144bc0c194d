package geom

// Ring is one closed polygon boundary, either an outer shell or a hole.
//
// The vertex sequence is implicitly closed: the last point does not duplicate
// the first. Orientation is derived from the signed area, never stored.
type Ring struct {
	// Pts is the ordered vertex sequence.
	Pts []Vertex `json:"pts"`

	// Hole marks this ring as a hole in some outer ring.
	Hole bool `json:"hole"`

	// ParentID is the index of the containing outer ring within the owning
	// Mpoly, or -1 for a top-level ring.
	ParentID int `json:"parent_id"`
}

// NewRing returns an empty top-level ring (ParentID -1).
func NewRing() Ring {
	return Ring{ParentID: -1}
}

// Bbox folds all vertices into a bounding box.
func (r *Ring) Bbox() Bbox {
	b := NewBbox()
	for _, v := range r.Pts {
		b.Expand(v)
	}
	return b
}

// OrientedArea returns the signed area of the ring via the shoelace formula.
// Counterclockwise rings (y-up convention) have positive area.
func (r *Ring) OrientedArea() float64 {
	var sum float64
	n := len(r.Pts)
	for i := 0; i < n; i++ {
		a := r.Pts[i]
		b := r.Pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute area of the ring.
func (r *Ring) Area() float64 {
	a := r.OrientedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the ring winds counterclockwise (positive signed
// area).
func (r *Ring) IsCCW() bool {
	return r.OrientedArea() > 0
}

// Contains reports whether p is inside the ring boundary, using a crossing
// number test: a horizontal ray from p toward +x crosses the edges an odd
// number of times iff p is inside.
//
// Points exactly on an edge count as outside. The half-open span test below
// makes that rule exact for axis-parallel edges.
func (r *Ring) Contains(p Vertex) bool {
	if len(r.Pts) < 3 {
		return false
	}
	inside := false
	n := len(r.Pts)
	for i := 0; i < n; i++ {
		a := r.Pts[i]
		b := r.Pts[(i+1)%n]
		if (a.Y <= p.Y) == (b.Y <= p.Y) {
			continue
		}
		cross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < cross {
			inside = !inside
		}
	}
	return inside
}

// Reverse flips the vertex order in place, negating the oriented area.
func (r *Ring) Reverse() {
	pts := r.Pts
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// CopyMetadata returns a ring carrying the hole flag and parent reference but
// no vertices.
func (r *Ring) CopyMetadata() Ring {
	return Ring{Hole: r.Hole, ParentID: r.ParentID}
}
