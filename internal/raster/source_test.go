package raster

import (
	"image"
	"image/color"
	"testing"
)

func createTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 10),
				G: uint8(y * 10),
				B: uint8((x + y) * 5),
				A: 255,
			})
		}
	}
	return img
}

func TestImageSource_Dimensions(t *testing.T) {
	src := NewImageSource(createTestImage(10, 6))
	w, h, bands := src.Dimensions()
	if w != 10 || h != 6 || bands != 4 {
		t.Errorf("dimensions: got %dx%dx%d, want 10x6x4", w, h, bands)
	}

	lum := NewLuminanceSource(createTestImage(10, 6))
	_, _, bands = lum.Dimensions()
	if bands != 1 {
		t.Errorf("luminance source bands: got %d, want 1", bands)
	}
}

func TestImageSource_BlockSize(t *testing.T) {
	src := NewImageSource(createTestImage(10, 200))
	bw, bh := src.BlockSize(1)
	if bw != 10 {
		t.Errorf("block width: got %d, want full width 10", bw)
	}
	if bh != blockRows {
		t.Errorf("block height: got %d, want %d", bh, blockRows)
	}

	short := NewImageSource(createTestImage(10, 6))
	_, bh = short.BlockSize(1)
	if bh != 6 {
		t.Errorf("block height capped: got %d, want 6", bh)
	}
}

func TestImageSource_ReadBlock8(t *testing.T) {
	src := NewImageSource(createTestImage(8, 8))

	// Red plane: value x*10.
	buf, err := src.ReadBlock8(1, 2, 3, 4, 2)
	if err != nil {
		t.Fatalf("ReadBlock8: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("buffer length: got %d, want 8", len(buf))
	}
	for j := 0; j < 2; j++ {
		for i := 0; i < 4; i++ {
			want := uint8((2 + i) * 10)
			if got := buf[j*4+i]; got != want {
				t.Errorf("red sample (%d,%d): got %d, want %d", 2+i, 3+j, got, want)
			}
		}
	}

	// Green plane: value y*10.
	buf, err = src.ReadBlock8(2, 0, 5, 8, 1)
	if err != nil {
		t.Fatalf("ReadBlock8 band 2: %v", err)
	}
	for i, v := range buf {
		if v != 50 {
			t.Errorf("green sample %d: got %d, want 50", i, v)
		}
	}

	// Alpha plane is fully opaque.
	buf, err = src.ReadBlock8(4, 0, 0, 8, 1)
	if err != nil {
		t.Fatalf("ReadBlock8 band 4: %v", err)
	}
	for i, v := range buf {
		if v != 255 {
			t.Errorf("alpha sample %d: got %d, want 255", i, v)
		}
	}
}

func TestImageSource_ReadBlockFloatMatches8Bit(t *testing.T) {
	src := NewImageSource(createTestImage(8, 8))

	for band := 1; band <= 4; band++ {
		b8, err := src.ReadBlock8(band, 0, 0, 8, 8)
		if err != nil {
			t.Fatalf("ReadBlock8 band %d: %v", band, err)
		}
		bf, err := src.ReadBlockFloat(band, 0, 0, 8, 8)
		if err != nil {
			t.Fatalf("ReadBlockFloat band %d: %v", band, err)
		}
		for i := range b8 {
			if float64(b8[i]) != bf[i] {
				t.Errorf("band %d sample %d: 8bit=%d float=%v", band, i, b8[i], bf[i])
			}
		}
	}
}

func TestImageSource_Errors(t *testing.T) {
	src := NewImageSource(createTestImage(8, 8))

	if _, err := src.ReadBlock8(0, 0, 0, 1, 1); err == nil {
		t.Error("band 0 should fail")
	}
	if _, err := src.ReadBlock8(5, 0, 0, 1, 1); err == nil {
		t.Error("band 5 should fail")
	}
	if _, err := src.ReadBlock8(1, 6, 6, 4, 4); err == nil {
		t.Error("block extending past the edge should fail")
	}
	if _, err := src.ReadBlock8(1, -1, 0, 2, 2); err == nil {
		t.Error("negative origin should fail")
	}
	if _, err := src.ReadBlockFloat(9, 0, 0, 1, 1); err == nil {
		t.Error("float read with bad band should fail")
	}
}

func TestImageSource_WideImage(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16(x*1000 + y)})
		}
	}
	src := NewImageSource(img)

	if src.Is8Bit(1) {
		t.Error("16-bit image should not advertise the 8-bit path")
	}

	buf, err := src.ReadBlockFloat(1, 0, 0, 4, 1)
	if err != nil {
		t.Fatalf("ReadBlockFloat: %v", err)
	}
	// Gray16 replicates luminance into all channels at full precision.
	if buf[2] != 2000 {
		t.Errorf("wide sample: got %v, want 2000", buf[2])
	}
}

func TestLuminanceSource_SingleBand(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	src := NewLuminanceSource(img)

	buf, err := src.ReadBlock8(1, 0, 0, 4, 4)
	if err != nil {
		t.Fatalf("ReadBlock8: %v", err)
	}
	for i, v := range buf {
		// Gray of a uniform gray pixel stays at that value.
		if v != 200 {
			t.Errorf("luminance sample %d: got %d, want 200", i, v)
		}
	}

	if _, err := src.ReadBlock8(2, 0, 0, 1, 1); err == nil {
		t.Error("luminance source has a single band; band 2 should fail")
	}
}
