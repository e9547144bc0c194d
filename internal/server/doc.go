// Package server exposes the footprint operations over the MCP protocol.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout: one request per line in,
// one response per line out. It supports the initialize handshake,
// tools/list, and tools/call; everything else returns a method-not-found
// error.
//
// # Tools
//
// The tool surface wraps the raster, mask and geom packages:
//
//   - raster_info: dimensions, band count and format of a raster file
//   - footprint_mask: build the validity mask and report its statistics
//   - mask_centroid: mean valid-pixel coordinate of the mask
//   - footprint_wkt: bounding footprint of the mask as a WKT polygon
//   - ring_relation: topological relation between two WKT polygons
//   - line_intersection: segment intersection test and point
//
// Tool results are returned as pretty-printed JSON inside MCP's text content
// wrapper. Tool failures become JSON-RPC errors with code -32000; the server
// itself never exits on a bad request.
//
// # State
//
// The only state is a raster cache shared across calls, so repeated tools
// against the same file decode it once.
package server
