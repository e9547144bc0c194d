package geom

// Vertex is a 2D point with double-precision coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bbox is an axis-aligned bounding box. An empty box has seen no vertices and
// is distinct from a degenerate zero-area box at the origin. A box only ever
// grows; there is no shrink operation.
type Bbox struct {
	MinX  float64 `json:"min_x"`
	MaxX  float64 `json:"max_x"`
	MinY  float64 `json:"min_y"`
	MaxY  float64 `json:"max_y"`
	Empty bool    `json:"empty"`
}

// NewBbox returns an empty bounding box.
func NewBbox() Bbox {
	return Bbox{Empty: true}
}

// Expand grows the box to include v.
func (b *Bbox) Expand(v Vertex) {
	if b.Empty {
		b.Empty = false
		b.MinX, b.MaxX = v.X, v.X
		b.MinY, b.MaxY = v.Y, v.Y
		return
	}
	if v.X < b.MinX {
		b.MinX = v.X
	}
	if v.Y < b.MinY {
		b.MinY = v.Y
	}
	if v.X > b.MaxX {
		b.MaxX = v.X
	}
	if v.Y > b.MaxY {
		b.MaxY = v.Y
	}
}

// ExpandBox grows the box to include other. Expanding by an empty box is a
// no-op.
func (b *Bbox) ExpandBox(other Bbox) {
	if other.Empty {
		return
	}
	b.Expand(Vertex{other.MinX, other.MinY})
	b.Expand(Vertex{other.MaxX, other.MaxY})
}

// Union returns the smallest box containing both inputs. Emptiness propagates:
// the union with an empty box is the other box unchanged.
func Union(a, b Bbox) Bbox {
	out := a
	out.ExpandBox(b)
	return out
}

// Disjoint reports whether the two boxes share no point. An empty box is
// disjoint from everything, including itself.
func Disjoint(a, b Bbox) bool {
	return a.Empty || b.Empty ||
		a.MinX > b.MaxX ||
		a.MinY > b.MaxY ||
		b.MinX > a.MaxX ||
		b.MinY > a.MaxY
}
