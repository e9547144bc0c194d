package geom

import (
	"errors"
	"math"
	"testing"
)

func TestLineIntersectsLine(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Vertex
		want           bool
	}{
		{"proper cross", Vertex{0, 0}, Vertex{1, 1}, Vertex{0, 1}, Vertex{1, 0}, true},
		{"parallel horizontal", Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1}, Vertex{1, 1}, false},
		{"far apart", Vertex{0, 0}, Vertex{1, 0}, Vertex{5, 5}, Vertex{6, 5}, false},
		{"shared endpoint only", Vertex{0, 0}, Vertex{1, 1}, Vertex{1, 1}, Vertex{2, 0}, false},
		{"T touch at midpoint", Vertex{0, 0}, Vertex{2, 0}, Vertex{1, 0}, Vertex{1, 1}, false},
		{"cross off center", Vertex{0, 0}, Vertex{4, 4}, Vertex{0, 3}, Vertex{3, 0}, true},
		{"segments too short to meet", Vertex{0, 0}, Vertex{0.4, 0.4}, Vertex{0, 1}, Vertex{1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineIntersectsLine(tt.p1, tt.p2, tt.p3, tt.p4, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineIntersectsLine_Coincident(t *testing.T) {
	p1, p2 := Vertex{0, 0}, Vertex{2, 0}
	p3, p4 := Vertex{1, 0}, Vertex{3, 0}

	got, err := LineIntersectsLine(p1, p2, p3, p4, false)
	if err != nil {
		t.Fatalf("lenient mode should not error: %v", err)
	}
	if got {
		t.Error("coincident segments should report non-intersecting in lenient mode")
	}

	_, err = LineIntersectsLine(p1, p2, p3, p4, true)
	if !errors.Is(err, ErrCoincident) {
		t.Errorf("strict mode: got %v, want ErrCoincident", err)
	}
}

func TestLineLineIntersection(t *testing.T) {
	got, err := LineLineIntersection(Vertex{0, 0}, Vertex{1, 1}, Vertex{0, 1}, Vertex{1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.X-0.5) > 1e-12 || math.Abs(got.Y-0.5) > 1e-12 {
		t.Errorf("intersection: got (%v,%v), want (0.5,0.5)", got.X, got.Y)
	}
}

func TestLineLineIntersection_Parallel(t *testing.T) {
	_, err := LineLineIntersection(Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1}, Vertex{1, 1})
	if !errors.Is(err, ErrParallel) {
		t.Errorf("got %v, want ErrParallel", err)
	}
}

func TestRingRelation_Nested(t *testing.T) {
	outer := squareAt(0, 0, 10)
	inner := squareAt(3, 3, 2)

	if rel := RingRelation(&outer, &inner); rel != RelContains {
		t.Errorf("outer vs inner: got %v, want contains", rel)
	}
	if rel := RingRelation(&inner, &outer); rel != RelContainedBy {
		t.Errorf("inner vs outer: got %v, want contained_by", rel)
	}
}

func TestRingRelation_Disjoint(t *testing.T) {
	a := squareAt(0, 0, 1)
	b := squareAt(10, 10, 1)

	if rel := RingRelation(&a, &b); rel != RelDisjoint {
		t.Errorf("got %v, want disjoint", rel)
	}
}

func TestRingRelation_DisjointOverlappingBboxes(t *testing.T) {
	// An L-shaped ring whose bbox covers the small square, without the
	// square being inside the ring itself.
	l := NewRing()
	l.Pts = []Vertex{
		{0, 0}, {10, 0}, {10, 2}, {2, 2}, {2, 10}, {0, 10},
	}
	small := squareAt(6, 6, 1)

	if Disjoint(l.Bbox(), small.Bbox()) {
		t.Fatal("test setup: bboxes must overlap")
	}
	if rel := RingRelation(&l, &small); rel != RelDisjoint {
		t.Errorf("got %v, want disjoint", rel)
	}
}

func TestRingRelation_Crosses(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(2, 2, 4)

	if rel := RingRelation(&a, &b); rel != RelCrosses {
		t.Errorf("got %v, want crosses", rel)
	}
	if rel := RingRelation(&b, &a); rel != RelCrosses {
		t.Errorf("reversed: got %v, want crosses", rel)
	}
}

func TestRelationString(t *testing.T) {
	tests := []struct {
		rel  Relation
		want string
	}{
		{RelContains, "contains"},
		{RelContainedBy, "contained_by"},
		{RelCrosses, "crosses"},
		{RelDisjoint, "disjoint"},
	}
	for _, tt := range tests {
		if got := tt.rel.String(); got != tt.want {
			t.Errorf("String(%d): got %q, want %q", int(tt.rel), got, tt.want)
		}
	}
}
