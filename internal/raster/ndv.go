package raster

// Range is an inclusive no-data value interval.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

func (r Range) contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// NoDataDef decides, per band, which samples count as no-data. A definition
// holds either one interval list applied to every band or one list per band
// (indexed by position in the caller's band list, not by raster band number).
//
// Invert flips how the mask builder combines bands after the first: without
// it, any band having data marks the pixel valid (union); with it, every
// band must agree the pixel is data (intersection).
type NoDataDef struct {
	Invert bool
	ranges [][]Range
}

// NewNoDataValue defines a single no-data value applied to all bands.
func NewNoDataValue(v float64) *NoDataDef {
	return NewNoDataRange(v, v)
}

// NewNoDataRange defines one inclusive no-data interval applied to all bands.
func NewNoDataRange(lo, hi float64) *NoDataDef {
	return &NoDataDef{ranges: [][]Range{{{Lo: lo, Hi: hi}}}}
}

// NewNoDataPerBand defines one interval per band-list position.
func NewNoDataPerBand(perBand []Range) *NoDataDef {
	d := &NoDataDef{}
	for _, r := range perBand {
		d.ranges = append(d.ranges, []Range{r})
	}
	return d
}

// IsEmpty reports whether no intervals are configured; an empty definition
// classifies every sample as data.
func (d *NoDataDef) IsEmpty() bool {
	return d == nil || len(d.ranges) == 0
}

// bandRanges returns the intervals for a band-list position.
func (d *NoDataDef) bandRanges(bandIdx int) []Range {
	if d.IsEmpty() {
		return nil
	}
	if len(d.ranges) == 1 {
		return d.ranges[0]
	}
	if bandIdx < 0 || bandIdx >= len(d.ranges) {
		return nil
	}
	return d.ranges[bandIdx]
}

// ClassifyRow8 sets flags[i] to true where samples[i] is no-data for the
// given band-list position. flags must be at least as long as samples.
func (d *NoDataDef) ClassifyRow8(bandIdx int, samples []uint8, flags []bool) {
	ranges := d.bandRanges(bandIdx)
	for i, s := range samples {
		flags[i] = inRanges(ranges, float64(s))
	}
}

// ClassifyRowFloat is the wide-sample counterpart of ClassifyRow8.
func (d *NoDataDef) ClassifyRowFloat(bandIdx int, samples []float64, flags []bool) {
	ranges := d.bandRanges(bandIdx)
	for i, s := range samples {
		flags[i] = inRanges(ranges, s)
	}
}

func inRanges(ranges []Range, v float64) bool {
	for _, r := range ranges {
		if r.contains(v) {
			return true
		}
	}
	return false
}
