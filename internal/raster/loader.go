package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// RasterCache provides thread-safe caching of decoded rasters so repeated
// operations on the same file avoid redundant disk reads.
//
// Images remain cached until Evict or Clear; long-running processes handling
// many rasters should clean up periodically.
type RasterCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewRasterCache creates an empty cache, ready for concurrent use.
func NewRasterCache() *RasterCache {
	return &RasterCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves a raster from the cache or decodes it from disk. Supported
// formats are PNG, JPEG and GIF; JPEG files are auto-oriented on load. The
// cache key is the exact path string provided.
func (c *RasterCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open raster: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all cached rasters, freeing the associated memory.
func (c *RasterCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one raster by its load path; unknown paths are a no-op.
func (c *RasterCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// RasterInfo contains metadata about a loaded raster file.
type RasterInfo struct {
	// Width is the raster width in pixels.
	Width int `json:"width"`

	// Height is the raster height in pixels.
	Height int `json:"height"`

	// Bands is the band count an ImageSource over this raster exposes.
	Bands int `json:"bands"`

	// Format is the detected format: "png", "jpeg", "gif", or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// FileSizeBytes is the size of the raster file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadRasterInfo loads a raster (through the cache) and returns its metadata.
func LoadRasterInfo(cache *RasterCache, path string) (*RasterInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	_, _, bands := NewImageSource(img).Dimensions()
	return &RasterInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Bands:         bands,
		Format:        format,
		ColorDepth:    colorDepth,
		FileSizeBytes: stat.Size(),
	}, nil
}
