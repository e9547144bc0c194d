package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DebugPlot is an observational pixel sink for visualizing mask construction.
// Callers sample it at StrideX/StrideY rates; plotted points land on a
// canvas downsampled by the same strides. A nil *DebugPlot is a no-op, so
// callers never need to branch on its presence.
type DebugPlot struct {
	// StrideX and StrideY are the sampling rates callers should use.
	StrideX int
	StrideY int

	canvas *image.RGBA
}

// NewDebugPlot creates a plot for a w*h raster whose canvas fits within
// maxDim pixels on the longer side.
func NewDebugPlot(w, h, maxDim int) *DebugPlot {
	if maxDim < 1 {
		maxDim = 1
	}
	stride := 1
	for (w+stride-1)/stride > maxDim || (h+stride-1)/stride > maxDim {
		stride++
	}
	cw := (w + stride - 1) / stride
	ch := (h + stride - 1) / stride
	canvas := image.NewRGBA(image.Rect(0, 0, cw, ch))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	return &DebugPlot{
		StrideX: stride,
		StrideY: stride,
		canvas:  canvas,
	}
}

// PlotPoint marks the raster pixel (x, y) with c. Points off the canvas are
// dropped silently.
func (d *DebugPlot) PlotPoint(x, y int, c color.RGBA) {
	if d == nil {
		return
	}
	px := x / d.StrideX
	py := y / d.StrideY
	if !image.Pt(px, py).In(d.canvas.Bounds()) {
		return
	}
	d.canvas.SetRGBA(px, py, c)
}

// Ramp maps a raw sample value onto the plot's data color: intensity
// 50+val/3 clamped to [50,254] with the red channel scaled down, so valid
// data reads as a teal ramp against the black no-data background.
func Ramp(val float64) color.RGBA {
	v := 50 + val/3
	if v < 50 {
		v = 50
	}
	if v > 254 {
		v = 254
	}
	c := colorful.Color{R: 0.75 * v / 255, G: v / 255, B: v / 255}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Image returns the plot canvas.
func (d *DebugPlot) Image() *image.RGBA {
	if d == nil {
		return nil
	}
	return d.canvas
}

// Save writes the canvas to disk; the format follows the file extension.
func (d *DebugPlot) Save(path string) error {
	if d == nil {
		return nil
	}
	if err := imaging.Save(d.canvas, path); err != nil {
		return fmt.Errorf("failed to save debug plot: %w", err)
	}
	return nil
}
