package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// maskProperties is the shared argument schema for tools that build a mask.
func maskProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the raster file",
		},
		"bands": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "integer"},
			"description": "1-based bands to scan; defaults to all bands",
		},
		"ndv_low": map[string]interface{}{
			"type":        "number",
			"description": "Low edge of the no-data value range (inclusive). Default 0.",
		},
		"ndv_high": map[string]interface{}{
			"type":        "number",
			"description": "High edge of the no-data value range (inclusive). Defaults to ndv_low.",
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Require all bands to agree a pixel is data (intersection) instead of any band (union)",
		},
		"luminance": map[string]interface{}{
			"type":        "boolean",
			"description": "Classify the grayscale conversion as a single band instead of the color planes",
		},
		"erode": map[string]interface{}{
			"type":        "boolean",
			"description": "Apply one morphological erosion pass to remove weakly connected pixels",
		},
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "raster_info",
			Description: "Get the dimensions, band count, format and color depth of a raster file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "footprint_mask",
			Description: "Build the valid-data mask for a raster and report its statistics: valid pixel count, coverage fraction, centroid and bounding box.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": maskProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "mask_centroid",
			Description: "Compute the mean (x, y) coordinate of the valid pixels of a raster's data mask.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": maskProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "footprint_wkt",
			Description: "Return the bounding footprint of a raster's valid-data mask as a WKT polygon in pixel coordinates.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": maskProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "ring_relation",
			Description: "Classify the topological relation between the outer rings of two WKT polygons: contains, contained_by, crosses, or disjoint.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"wkt1": map[string]interface{}{
						"type":        "string",
						"description": "First polygon as WKT",
					},
					"wkt2": map[string]interface{}{
						"type":        "string",
						"description": "Second polygon as WKT",
					},
				},
				"required": []string{"wkt1", "wkt2"},
			},
		},
		{
			Name:        "line_intersection",
			Description: "Test whether segment (x1,y1)-(x2,y2) properly crosses segment (x3,y3)-(x4,y4) and return the crossing point if it does.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x1": map[string]interface{}{"type": "number"},
					"y1": map[string]interface{}{"type": "number"},
					"x2": map[string]interface{}{"type": "number"},
					"y2": map[string]interface{}{"type": "number"},
					"x3": map[string]interface{}{"type": "number"},
					"y3": map[string]interface{}{"type": "number"},
					"x4": map[string]interface{}{"type": "number"},
					"y4": map[string]interface{}{"type": "number"},
					"fail_on_coincident": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat coincident segments as an error instead of non-intersecting",
					},
				},
				"required": []string{"x1", "y1", "x2", "y2", "x3", "y3", "x4", "y4"},
			},
		},
	}
}
