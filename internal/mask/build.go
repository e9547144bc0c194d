package mask

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ironsheep/raster-footprint/internal/raster"
)

// blackPixel marks no-data pixels on the debug plot overlay.
var blackPixel = color.RGBA{A: 255}

// Options carries the observational collaborators for a scan. The zero value
// scans silently.
type Options struct {
	// Plot receives sampled pixel intensities and the final invalid-pixel
	// overlay; nil disables plotting.
	Plot *raster.DebugPlot

	// Progress receives scan progress in [0, 1]; nil disables reporting.
	Progress raster.ProgressFunc

	// Verbose enables per-band diagnostics on the standard logger.
	Verbose bool
}

func (o Options) report(fraction float64) {
	if o.Progress != nil {
		o.Progress(fraction)
	}
}

// BuildMask scans the listed bands (1-based) and returns the validity mask.
//
// Band order matters: the first listed band initializes the mask so that a
// pixel is valid iff it is not no-data. Each later band then narrows the
// mask when the no-data definition is in invert mode (a pixel stays valid
// only while every band agrees it is data) and widens it otherwise (any band
// having data makes the pixel valid).
//
// Each band is read on its 8-bit fast path when the source allows it and as
// float64 otherwise; the choice never changes the resulting mask. A band
// outside [1, band count] or a zero-sized raster is a configuration error
// reported before any pixel is scanned.
func BuildMask(src raster.Source, bands []int, ndv *raster.NoDataDef, opt Options) (*BitGrid, error) {
	w, h, bandCount := src.Dimensions()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster has invalid size %dx%d", w, h)
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("no bands requested")
	}
	for _, band := range bands {
		if band < 1 || band > bandCount {
			return nil, fmt.Errorf("band %d out of range [1,%d]", band, bandCount)
		}
	}

	grid := New(w, h)
	grid.Zero()

	if opt.Verbose {
		log.Printf("reading %d bands of size %d x %d", len(bands), w, h)
	}

	totalPixels := float64(len(bands)) * float64(w) * float64(h)

	for bandIdx, band := range bands {
		bw, bh := src.BlockSize(band)
		use8bit := src.Is8Bit(band)
		if opt.Verbose {
			log.Printf("band %d: block size = %d,%d, 8bit=%v", band, bw, bh, use8bit)
		}

		flags := make([]bool, bw)

		for boffY := 0; boffY < h; boffY += bh {
			bsizeY := bh
			if boffY+bsizeY > h {
				bsizeY = h - boffY
			}
			for boffX := 0; boffX < w; boffX += bw {
				bsizeX := bw
				if boffX+bsizeX > w {
					bsizeX = w - boffX
				}

				done := float64(bandIdx)*float64(w)*float64(h) +
					float64(boffY)*float64(w) +
					float64(boffX)*float64(bsizeY)
				opt.report(done / totalPixels)

				var buf8 []uint8
				var bufF []float64
				var err error
				if use8bit {
					buf8, err = src.ReadBlock8(band, boffX, boffY, bsizeX, bsizeY)
				} else {
					bufF, err = src.ReadBlockFloat(band, boffX, boffY, bsizeX, bsizeY)
				}
				if err != nil {
					return nil, fmt.Errorf("read band %d block (%d,%d): %w", band, boffX, boffY, err)
				}

				for j := 0; j < bsizeY; j++ {
					y := boffY + j
					row8 := []uint8(nil)
					rowF := []float64(nil)
					if use8bit {
						row8 = buf8[j*bsizeX : (j+1)*bsizeX]
						ndv.ClassifyRow8(bandIdx, row8, flags[:bsizeX])
					} else {
						rowF = bufF[j*bsizeX : (j+1)*bsizeX]
						ndv.ClassifyRowFloat(bandIdx, rowF, flags[:bsizeX])
					}

					if opt.Plot != nil && bandIdx == 0 && y%opt.Plot.StrideY == 0 {
						for i := 0; i < bsizeX; i += opt.Plot.StrideX {
							var val float64
							if use8bit {
								val = float64(row8[i])
							} else {
								val = rowF[i]
							}
							opt.Plot.PlotPoint(boffX+i, y, raster.Ramp(val))
						}
					}

					switch {
					case bandIdx == 0:
						for i := 0; i < bsizeX; i++ {
							grid.Set(boffX+i, y, !flags[i])
						}
					case ndv.Invert:
						for i := 0; i < bsizeX; i++ {
							if flags[i] {
								grid.Set(boffX+i, y, false)
							}
						}
					default:
						for i := 0; i < bsizeX; i++ {
							if !flags[i] {
								grid.Set(boffX+i, y, true)
							}
						}
					}
				}
			}
		}
	}

	if opt.Plot != nil {
		for y := 0; y < h; y += opt.Plot.StrideY {
			for x := 0; x < w; x += opt.Plot.StrideX {
				if !grid.Get(x, y) {
					opt.Plot.PlotPoint(x, y, blackPixel)
				}
			}
		}
	}

	opt.report(1)

	return grid, nil
}

// MaskFromClassified builds a mask from an already-classified 8-bit raster:
// the bit at (x, y) is set iff the sample equals wanted.
func MaskFromClassified(w, h int, samples []uint8, wanted uint8) (*BitGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster has invalid size %dx%d", w, h)
	}
	if len(samples) != w*h {
		return nil, fmt.Errorf("sample buffer has %d values, want %d", len(samples), w*h)
	}

	grid := New(w, h)
	for y := 0; y < h; y++ {
		row := samples[y*w : (y+1)*w]
		for x, s := range row {
			grid.Set(x, y, s == wanted)
		}
	}
	return grid, nil
}

// ReadBand8 reads one whole band as 8-bit samples and records which values
// occur, for callers that classify by value afterwards. The band is read
// block by block with the same progress and plotting behavior as BuildMask.
func ReadBand8(src raster.Source, band int, opt Options) ([]uint8, *[256]bool, error) {
	w, h, bandCount := src.Dimensions()
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("raster has invalid size %dx%d", w, h)
	}
	if band < 1 || band > bandCount {
		return nil, nil, fmt.Errorf("band %d out of range [1,%d]", band, bandCount)
	}
	if opt.Verbose && !src.Is8Bit(band) {
		log.Printf("band %d is wider than 8 bits, values will be downsampled", band)
	}

	var usage [256]bool
	out := make([]uint8, w*h)
	bw, bh := src.BlockSize(band)
	totalPixels := float64(w) * float64(h)

	for boffY := 0; boffY < h; boffY += bh {
		bsizeY := bh
		if boffY+bsizeY > h {
			bsizeY = h - boffY
		}
		for boffX := 0; boffX < w; boffX += bw {
			bsizeX := bw
			if boffX+bsizeX > w {
				bsizeX = w - boffX
			}

			done := float64(boffY)*float64(w) + float64(boffX)*float64(bsizeY)
			opt.report(done / totalPixels)

			buf, err := src.ReadBlock8(band, boffX, boffY, bsizeX, bsizeY)
			if err != nil {
				return nil, nil, fmt.Errorf("read band %d block (%d,%d): %w", band, boffX, boffY, err)
			}

			for j := 0; j < bsizeY; j++ {
				y := boffY + j
				row := buf[j*bsizeX : (j+1)*bsizeX]
				copy(out[y*w+boffX:y*w+boffX+bsizeX], row)
				for i, val := range row {
					usage[val] = true
					if opt.Plot != nil && y%opt.Plot.StrideY == 0 && i%opt.Plot.StrideX == 0 {
						opt.Plot.PlotPoint(boffX+i, y, raster.Ramp(float64(val)))
					}
				}
			}
		}
	}

	opt.report(1)

	return out, &usage, nil
}
