package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode temp png: %v", err)
	}
	return path
}

func TestRasterCache_Load(t *testing.T) {
	cache := NewRasterCache()
	path := writeTestPNG(t, 12, 8)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load comes from the cache; deleting the file must not matter.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load after delete: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("load after evict of deleted file should fail")
	}
}

func TestRasterCache_LoadMissing(t *testing.T) {
	cache := NewRasterCache()
	if _, err := cache.Load("/nonexistent/raster.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRasterCache_Clear(t *testing.T) {
	cache := NewRasterCache()
	path := writeTestPNG(t, 4, 4)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("load after clear of deleted file should fail")
	}
}

func TestLoadRasterInfo(t *testing.T) {
	cache := NewRasterCache()
	path := writeTestPNG(t, 20, 10)

	info, err := LoadRasterInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadRasterInfo: %v", err)
	}
	if info.Width != 20 || info.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if info.Bands != 4 {
		t.Errorf("bands: got %d, want 4", info.Bands)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %q, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestDebugPlot_NilSafe(t *testing.T) {
	var d *DebugPlot
	d.PlotPoint(0, 0, color.RGBA{})
	if d.Image() != nil {
		t.Error("nil plot should have no image")
	}
	if err := d.Save("/tmp/should-not-exist.png"); err != nil {
		t.Errorf("nil plot Save should be a no-op: %v", err)
	}
}

func TestDebugPlot_StrideAndCanvas(t *testing.T) {
	d := NewDebugPlot(100, 50, 25)
	if d.StrideX != 4 || d.StrideY != 4 {
		t.Errorf("stride: got %d,%d, want 4,4", d.StrideX, d.StrideY)
	}
	if b := d.Image().Bounds(); b.Dx() != 25 || b.Dy() != 13 {
		t.Errorf("canvas: got %dx%d, want 25x13", b.Dx(), b.Dy())
	}

	d.PlotPoint(40, 20, color.RGBA{R: 255, A: 255})
	if r, _, _, _ := d.Image().At(10, 5).RGBA(); r == 0 {
		t.Error("plotted point should land at canvas (10,5)")
	}

	// Off-canvas points are dropped, not faulted.
	d.PlotPoint(1000, 1000, color.RGBA{R: 255, A: 255})
}

func TestDebugPlot_Ramp(t *testing.T) {
	lo := Ramp(0)
	hi := Ramp(255)
	if lo.G >= hi.G {
		t.Errorf("ramp should brighten with value: low=%v high=%v", lo, hi)
	}
	if lo.G != 50 {
		t.Errorf("ramp floor: got %d, want 50", lo.G)
	}
	if hi.R >= hi.G {
		t.Error("ramp red channel should stay below green")
	}

	over := Ramp(100000)
	if over.G != 254 {
		t.Errorf("ramp ceiling: got %d, want 254", over.G)
	}
}

func TestDebugPlot_Save(t *testing.T) {
	d := NewDebugPlot(10, 10, 10)
	d.PlotPoint(5, 5, color.RGBA{G: 200, A: 255})

	path := filepath.Join(t.TempDir(), "plot.png")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved plot missing: %v", err)
	}
}
