package raster

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/channel"
	"github.com/disintegration/imaging"
)

// Source is the block-oriented raster access contract. Bands are 1-based;
// requesting a band outside [1, band count] is a configuration error.
type Source interface {
	// Dimensions returns the raster width, height and band count.
	Dimensions() (w, h, bands int)

	// BlockSize returns the natural read block size for a band. Callers
	// clamp edge blocks themselves.
	BlockSize(band int) (bw, bh int)

	// Is8Bit reports whether the band can be read losslessly as uint8.
	Is8Bit(band int) bool

	// ReadBlock8 reads a w*h block at (x, y) as row-major uint8 samples.
	ReadBlock8(band, x, y, w, h int) ([]uint8, error)

	// ReadBlockFloat reads a w*h block at (x, y) as row-major float64
	// samples, preserving precision wider than 8 bits.
	ReadBlockFloat(band, x, y, w, h int) ([]float64, error)
}

// blockRows is the strip height ImageSource hands out per block read.
const blockRows = 64

// ImageSource adapts a decoded image to the Source contract. Bands 1..4 are
// the red, green, blue and alpha planes; a luminance source has a single
// gray band. Plane extraction is lazy and cached per band.
type ImageSource struct {
	img       image.Image
	w, h      int
	luminance bool
	wide      bool
	planes    map[int]*image.Gray
}

// NewImageSource returns a four-band (R, G, B, A) source over img.
func NewImageSource(img image.Image) *ImageSource {
	return newSource(img, false)
}

// NewLuminanceSource returns a single-band source exposing the grayscale
// conversion of img.
func NewLuminanceSource(img image.Image) *ImageSource {
	return newSource(img, true)
}

func newSource(img image.Image, luminance bool) *ImageSource {
	b := img.Bounds()
	wide := false
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		wide = true
	}
	return &ImageSource{
		img:       img,
		w:         b.Dx(),
		h:         b.Dy(),
		luminance: luminance,
		wide:      wide,
		planes:    make(map[int]*image.Gray),
	}
}

// Dimensions implements Source.
func (s *ImageSource) Dimensions() (int, int, int) {
	if s.luminance {
		return s.w, s.h, 1
	}
	return s.w, s.h, 4
}

// BlockSize implements Source: full-width strips capped to the image height.
func (s *ImageSource) BlockSize(band int) (int, int) {
	bh := blockRows
	if bh > s.h {
		bh = s.h
	}
	return s.w, bh
}

// Is8Bit implements Source. 16-bit images are read on the float path so the
// extra precision reaches the classifier.
func (s *ImageSource) Is8Bit(band int) bool {
	return !s.wide
}

func (s *ImageSource) checkBand(band int) error {
	_, _, bands := s.Dimensions()
	if band < 1 || band > bands {
		return fmt.Errorf("band %d out of range [1,%d]", band, bands)
	}
	return nil
}

func (s *ImageSource) checkRect(x, y, w, h int) error {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > s.w || y+h > s.h {
		return fmt.Errorf("block (%d,%d) %dx%d outside raster %dx%d", x, y, w, h, s.w, s.h)
	}
	return nil
}

// plane extracts and caches the 8-bit plane for a band.
func (s *ImageSource) plane(band int) *image.Gray {
	if p, ok := s.planes[band]; ok {
		return p
	}
	var p *image.Gray
	if s.luminance {
		p = channel.Extract(imaging.Grayscale(s.img), channel.Red)
	} else {
		chans := []channel.Channel{channel.Red, channel.Green, channel.Blue, channel.Alpha}
		p = channel.Extract(s.img, chans[band-1])
	}
	s.planes[band] = p
	return p
}

// ReadBlock8 implements Source.
func (s *ImageSource) ReadBlock8(band, x, y, w, h int) ([]uint8, error) {
	if err := s.checkBand(band); err != nil {
		return nil, err
	}
	if err := s.checkRect(x, y, w, h); err != nil {
		return nil, err
	}
	p := s.plane(band)
	out := make([]uint8, w*h)
	for j := 0; j < h; j++ {
		row := p.Pix[(y+j)*p.Stride+x : (y+j)*p.Stride+x+w]
		copy(out[j*w:(j+1)*w], row)
	}
	return out, nil
}

// ReadBlockFloat implements Source. For 16-bit images the samples come from
// the full-precision color values in [0, 65535]; 8-bit images yield the same
// values as ReadBlock8.
func (s *ImageSource) ReadBlockFloat(band, x, y, w, h int) ([]float64, error) {
	if err := s.checkBand(band); err != nil {
		return nil, err
	}
	if err := s.checkRect(x, y, w, h); err != nil {
		return nil, err
	}

	out := make([]float64, w*h)
	if !s.wide {
		p := s.plane(band)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				out[j*w+i] = float64(p.Pix[(y+j)*p.Stride+x+i])
			}
		}
		return out, nil
	}

	min := s.img.Bounds().Min
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r, g, b, a := s.img.At(min.X+x+i, min.Y+y+j).RGBA()
			var v float64
			if s.luminance {
				v = 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			} else {
				switch band {
				case 1:
					v = float64(r)
				case 2:
					v = float64(g)
				case 3:
					v = float64(b)
				case 4:
					v = float64(a)
				}
			}
			out[j*w+i] = v
		}
	}
	return out, nil
}

// ProgressFunc receives monotonically non-decreasing scan progress in [0, 1].
// A nil function disables reporting; progress never gates control flow.
type ProgressFunc func(fraction float64)
