package geom

import "fmt"

// Mpoly is a multi-polygon: an ordered collection of rings where hole rings
// reference their outer ring by index. The linkage is positional, so every
// mutation that changes ring indices must renumber the references; DeleteRing
// does so explicitly.
type Mpoly struct {
	Rings []Ring `json:"rings"`
}

// Bbox returns the union of all ring bounding boxes.
func (m *Mpoly) Bbox() Bbox {
	b := NewBbox()
	for i := range m.Rings {
		b.ExpandBox(m.Rings[i].Bbox())
	}
	return b
}

// RingBboxes returns the per-ring bounding boxes, indexed like Rings.
func (m *Mpoly) RingBboxes() []Bbox {
	out := make([]Bbox, len(m.Rings))
	for i := range m.Rings {
		out[i] = m.Rings[i].Bbox()
	}
	return out
}

// Contains reports whether p is inside any non-hole ring. Holes are not
// subtracted; use ComponentContains for the authoritative filled-area test.
func (m *Mpoly) Contains(p Vertex) bool {
	for i := range m.Rings {
		if !m.Rings[i].Hole && m.Rings[i].Contains(p) {
			return true
		}
	}
	return false
}

// ComponentContains reports whether p is part of the filled area of the
// polygon component whose outer ring is at outerID: inside that ring and
// outside every hole whose ParentID references it. Hole subtraction is not
// automatic in Contains, which is why this test exists.
func (m *Mpoly) ComponentContains(p Vertex, outerID int) bool {
	if outerID < 0 || outerID >= len(m.Rings) {
		return false
	}
	if !m.Rings[outerID].Contains(p) {
		return false
	}
	for i := range m.Rings {
		r := &m.Rings[i]
		if r.Hole && r.ParentID == outerID && r.Contains(p) {
			return false
		}
	}
	return true
}

// DeleteRing removes the ring at idx and renumbers parent references:
// references above idx shift down by one, and holes whose parent was the
// deleted ring become detached top-level rings (ParentID -1, hole flag
// cleared) rather than dangling.
func (m *Mpoly) DeleteRing(idx int) error {
	if idx < 0 || idx >= len(m.Rings) {
		return fmt.Errorf("delete ring %d: index out of range [0,%d)", idx, len(m.Rings))
	}
	m.Rings = append(m.Rings[:idx], m.Rings[idx+1:]...)
	for i := range m.Rings {
		r := &m.Rings[i]
		switch {
		case r.ParentID == idx:
			r.ParentID = -1
			r.Hole = false
		case r.ParentID > idx:
			r.ParentID--
		}
	}
	return nil
}

// Validate reports rings whose parent reference does not name a non-hole ring
// in this Mpoly. Such rings are treated as detached by the containment tests;
// Validate makes the condition visible instead of silently ignoring it.
func (m *Mpoly) Validate() error {
	for i := range m.Rings {
		r := &m.Rings[i]
		if !r.Hole {
			continue
		}
		if r.ParentID < 0 || r.ParentID >= len(m.Rings) {
			return fmt.Errorf("hole ring %d: parent %d out of range", i, r.ParentID)
		}
		if m.Rings[r.ParentID].Hole {
			return fmt.Errorf("hole ring %d: parent %d is itself a hole", i, r.ParentID)
		}
	}
	return nil
}

// AttachHoles assigns each hole ring to the smallest non-hole ring that
// contains it, establishing the ParentID linkage. Holes contained by no outer
// ring are detached (ParentID -1, hole flag cleared). Rings that cross an
// outer ring boundary are left untouched and reported.
func (m *Mpoly) AttachHoles() error {
	for i := range m.Rings {
		h := &m.Rings[i]
		if !h.Hole {
			continue
		}
		best := -1
		bestArea := 0.0
		for j := range m.Rings {
			o := &m.Rings[j]
			if o.Hole || i == j {
				continue
			}
			switch RingRelation(o, h) {
			case RelContains:
				if a := o.Area(); best < 0 || a < bestArea {
					best = j
					bestArea = a
				}
			case RelCrosses:
				return fmt.Errorf("hole ring %d crosses outer ring %d", i, j)
			}
		}
		if best < 0 {
			h.ParentID = -1
			h.Hole = false
		} else {
			h.ParentID = best
		}
	}
	return nil
}

// SplitComponents breaks the multi-polygon into single-component polygons,
// each an outer ring followed by its holes with ParentID renumbered to 0.
func (m *Mpoly) SplitComponents() []Mpoly {
	var out []Mpoly
	for i := range m.Rings {
		if m.Rings[i].Hole {
			continue
		}
		comp := Mpoly{Rings: []Ring{m.Rings[i]}}
		comp.Rings[0].ParentID = -1
		for j := range m.Rings {
			h := &m.Rings[j]
			if h.Hole && h.ParentID == i {
				hc := *h
				hc.ParentID = 0
				comp.Rings = append(comp.Rings, hc)
			}
		}
		out = append(out, comp)
	}
	return out
}
