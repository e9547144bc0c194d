package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/raster-footprint/internal/geom"
	"github.com/ironsheep/raster-footprint/internal/mask"
	"github.com/ironsheep/raster-footprint/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_info", "footprint_mask").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The response wraps the tool result in MCP's content format; tool
// execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "raster_info":
		return s.handleRasterInfo(args)
	case "footprint_mask":
		return s.handleFootprintMask(args)
	case "mask_centroid":
		return s.handleMaskCentroid(args)
	case "footprint_wkt":
		return s.handleFootprintWKT(args)
	case "ring_relation":
		return s.handleRingRelation(args)
	case "line_intersection":
		return s.handleLineIntersection(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Raster Information ===

type rasterInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleRasterInfo(args json.RawMessage) (interface{}, error) {
	var a rasterInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.LoadRasterInfo(s.cache, a.Path)
}

// === Mask Tools ===

type maskArgs struct {
	Path      string   `json:"path"`
	Bands     []int    `json:"bands"`
	NdvLow    *float64 `json:"ndv_low"`
	NdvHigh   *float64 `json:"ndv_high"`
	Invert    bool     `json:"invert"`
	Luminance bool     `json:"luminance"`
	Erode     bool     `json:"erode"`
}

// buildGrid loads the raster and runs the mask pipeline for the common
// footprint tool arguments.
func (s *Server) buildGrid(a maskArgs) (*mask.BitGrid, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var src raster.Source
	if a.Luminance {
		src = raster.NewLuminanceSource(img)
	} else {
		src = raster.NewImageSource(img)
	}

	bands := a.Bands
	if len(bands) == 0 {
		_, _, count := src.Dimensions()
		for b := 1; b <= count; b++ {
			bands = append(bands, b)
		}
	}

	lo := 0.0
	if a.NdvLow != nil {
		lo = *a.NdvLow
	}
	hi := lo
	if a.NdvHigh != nil {
		hi = *a.NdvHigh
	}
	ndv := raster.NewNoDataRange(lo, hi)
	ndv.Invert = a.Invert

	grid, err := mask.BuildMask(src, bands, ndv, mask.Options{})
	if err != nil {
		return nil, err
	}
	if a.Erode {
		grid.Erode()
	}
	return grid, nil
}

// MaskStatsResult summarizes a built validity mask.
type MaskStatsResult struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	ValidPixels int          `json:"valid_pixels"`
	Coverage    float64      `json:"coverage"`
	Centroid    *geom.Vertex `json:"centroid,omitempty"`
	Bbox        geom.Bbox    `json:"bbox"`
}

func (s *Server) handleFootprintMask(args json.RawMessage) (interface{}, error) {
	var a maskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.buildGrid(a)
	if err != nil {
		return nil, err
	}

	result := &MaskStatsResult{
		Width:       grid.W(),
		Height:      grid.H(),
		ValidPixels: grid.CountSet(),
		Bbox:        grid.Bbox(),
	}
	result.Coverage = math.Round(float64(result.ValidPixels)/float64(grid.W()*grid.H())*1000) / 1000

	if c, err := grid.Centroid(); err == nil {
		result.Centroid = &c
	} else if !errors.Is(err, mask.ErrEmptyMask) {
		return nil, err
	}
	return result, nil
}

func (s *Server) handleMaskCentroid(args json.RawMessage) (interface{}, error) {
	var a maskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.buildGrid(a)
	if err != nil {
		return nil, err
	}
	c, err := grid.Centroid()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FootprintWKTResult carries the WKT footprint of a mask.
type FootprintWKTResult struct {
	WKT         string `json:"wkt"`
	ValidPixels int    `json:"valid_pixels"`
}

func (s *Server) handleFootprintWKT(args json.RawMessage) (interface{}, error) {
	var a maskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.buildGrid(a)
	if err != nil {
		return nil, err
	}

	bbox := grid.Bbox()
	if bbox.Empty {
		return nil, mask.ErrEmptyMask
	}

	// The bbox covers pixel centers; the footprint covers pixel extents,
	// so the far edge sits one past the last valid center.
	ring := geom.NewRing()
	ring.Pts = []geom.Vertex{
		{X: bbox.MinX, Y: bbox.MinY},
		{X: bbox.MaxX + 1, Y: bbox.MinY},
		{X: bbox.MaxX + 1, Y: bbox.MaxY + 1},
		{X: bbox.MinX, Y: bbox.MaxY + 1},
	}
	m := geom.Mpoly{Rings: []geom.Ring{ring}}

	return &FootprintWKTResult{
		WKT:         m.WKT(),
		ValidPixels: grid.CountSet(),
	}, nil
}

// === Geometry Tools ===

type ringRelationArgs struct {
	WKT1 string `json:"wkt1"`
	WKT2 string `json:"wkt2"`
}

// RingRelationResult names the classified relation between two rings.
type RingRelationResult struct {
	Relation string `json:"relation"`
}

func (s *Server) handleRingRelation(args json.RawMessage) (interface{}, error) {
	var a ringRelationArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	r1, err := outerRing(a.WKT1)
	if err != nil {
		return nil, fmt.Errorf("wkt1: %w", err)
	}
	r2, err := outerRing(a.WKT2)
	if err != nil {
		return nil, fmt.Errorf("wkt2: %w", err)
	}

	return &RingRelationResult{
		Relation: geom.RingRelation(r1, r2).String(),
	}, nil
}

func outerRing(wkt string) (*geom.Ring, error) {
	m, err := geom.ParseWKT(wkt)
	if err != nil {
		return nil, err
	}
	for i := range m.Rings {
		if !m.Rings[i].Hole {
			return &m.Rings[i], nil
		}
	}
	return nil, errors.New("polygon has no outer ring")
}

type lineArgs struct {
	X1               float64 `json:"x1"`
	Y1               float64 `json:"y1"`
	X2               float64 `json:"x2"`
	Y2               float64 `json:"y2"`
	X3               float64 `json:"x3"`
	Y3               float64 `json:"y3"`
	X4               float64 `json:"x4"`
	Y4               float64 `json:"y4"`
	FailOnCoincident bool    `json:"fail_on_coincident"`
}

// LineIntersectionResult reports a segment crossing and its location.
type LineIntersectionResult struct {
	Intersects bool         `json:"intersects"`
	Point      *geom.Vertex `json:"point,omitempty"`
}

func (s *Server) handleLineIntersection(args json.RawMessage) (interface{}, error) {
	var a lineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p1 := geom.Vertex{X: a.X1, Y: a.Y1}
	p2 := geom.Vertex{X: a.X2, Y: a.Y2}
	p3 := geom.Vertex{X: a.X3, Y: a.Y3}
	p4 := geom.Vertex{X: a.X4, Y: a.Y4}

	hit, err := geom.LineIntersectsLine(p1, p2, p3, p4, a.FailOnCoincident)
	if err != nil {
		return nil, err
	}

	result := &LineIntersectionResult{Intersects: hit}
	if hit {
		pt, err := geom.LineLineIntersection(p1, p2, p3, p4)
		if err != nil {
			return nil, err
		}
		result.Point = &pt
	}
	return result, nil
}
