package mask

import (
	"errors"

	"github.com/ironsheep/raster-footprint/internal/geom"
)

// ErrEmptyMask is returned by Centroid when no pixel is valid; the mean is
// undefined and must not be reported as NaN or (0, 0).
var ErrEmptyMask = errors.New("mask has no valid pixels")

// BitGrid is a dense width*height boolean grid, bit-packed row-major.
// The zero pixel state is false; Zero resets every pixel.
type BitGrid struct {
	w, h int
	bits []uint64
}

// New creates a cleared w*h grid.
func New(w, h int) *BitGrid {
	return &BitGrid{
		w:    w,
		h:    h,
		bits: make([]uint64, (w*h+63)/64),
	}
}

// W returns the grid width.
func (g *BitGrid) W() int { return g.w }

// H returns the grid height.
func (g *BitGrid) H() int { return g.h }

// Get returns the pixel at (x, y). Reads outside the grid return false, so
// neighbor lookups at the border need no special casing.
func (g *BitGrid) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	i := y*g.w + x
	return g.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set writes the pixel at (x, y). Writes outside the grid are dropped.
func (g *BitGrid) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	i := y*g.w + x
	if v {
		g.bits[i>>6] |= 1 << (uint(i) & 63)
	} else {
		g.bits[i>>6] &^= 1 << (uint(i) & 63)
	}
}

// Zero clears every pixel.
func (g *BitGrid) Zero() {
	for i := range g.bits {
		g.bits[i] = 0
	}
}

// CountSet returns the number of valid pixels.
func (g *BitGrid) CountSet() int {
	n := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Erode clears every pixel whose 8-connected neighborhood, taken as a cyclic
// sequence, contains no adjacent pair of valid neighbors. Isolated pixels and
// thin diagonal connections disappear; solid areas keep everything but their
// weak border pixels.
//
// Neighbor values come from the pre-erosion grid: a three-row window of
// original values slides down the grid, so already-cleared rows never feed
// later decisions. Neighbors outside the grid count as invalid.
func (g *BitGrid) Erode() {
	w, h := g.w, g.h
	if w == 0 || h == 0 {
		return
	}

	rowU := make([]bool, w)
	rowM := make([]bool, w)
	rowL := make([]bool, w)
	for i := 0; i < w; i++ {
		rowL[i] = g.Get(i, 0)
	}

	for y := 0; y < h; y++ {
		rowU, rowM, rowL = rowM, rowL, rowU
		for i := 0; i < w; i++ {
			rowL[i] = g.Get(i, y+1)
		}

		ul, um := false, rowU[0]
		ml, mm := false, rowM[0]
		ll, lm := false, rowL[0]

		for x := 0; x < w; x++ {
			var ur, mr, lr bool
			if x+1 < w {
				ur, mr, lr = rowU[x+1], rowM[x+1], rowL[x+1]
			}

			// remove pixels that don't have two consecutive filled neighbors
			if !((ul && um) || (um && ur) || (ur && mr) || (mr && lr) ||
				(lr && lm) || (lm && ll) || (ll && ml) || (ml && ul)) {
				g.Set(x, y, false)
			}

			ul, ml, ll = um, mm, lm
			um, mm, lm = ur, mr, lr
		}
	}
}

// Centroid returns the mean (x, y) coordinate over all valid pixels. An
// empty mask returns ErrEmptyMask.
func (g *BitGrid) Centroid() (geom.Vertex, error) {
	var accX, accY, cnt int64
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.Get(x, y) {
				accX += int64(x)
				accY += int64(y)
				cnt++
			}
		}
	}
	if cnt == 0 {
		return geom.Vertex{}, ErrEmptyMask
	}
	return geom.Vertex{
		X: float64(accX) / float64(cnt),
		Y: float64(accY) / float64(cnt),
	}, nil
}

// Bbox returns the bounding box of the valid pixels, empty for an empty mask.
func (g *BitGrid) Bbox() geom.Bbox {
	b := geom.NewBbox()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.Get(x, y) {
				b.Expand(geom.Vertex{X: float64(x), Y: float64(y)})
			}
		}
	}
	return b
}
