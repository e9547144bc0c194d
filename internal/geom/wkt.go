package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WKT serializes the multi-polygon as a POLYGON or MULTIPOLYGON text literal.
// Rings are written explicitly closed (first vertex repeated at the end) as
// the interchange format expects, even though Ring stores them open. The
// first ring of each polygon is the outer ring, the rest are its holes, so
// parsing the output back reproduces the vertex sequences and the hole/parent
// structure.
func (m *Mpoly) WKT() string {
	comps := m.SplitComponents()
	if len(comps) == 0 {
		return "POLYGON EMPTY"
	}

	var sb strings.Builder
	if len(comps) == 1 {
		sb.WriteString("POLYGON")
		writePolyBody(&sb, &comps[0])
		return sb.String()
	}

	sb.WriteString("MULTIPOLYGON(")
	for i := range comps {
		if i > 0 {
			sb.WriteByte(',')
		}
		writePolyBody(&sb, &comps[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

func writePolyBody(sb *strings.Builder, comp *Mpoly) {
	sb.WriteByte('(')
	for i := range comp.Rings {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		pts := comp.Rings[i].Pts
		for j, v := range pts {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatCoord(v))
		}
		if len(pts) > 0 {
			sb.WriteByte(',')
			sb.WriteString(formatCoord(pts[0]))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
}

func formatCoord(v Vertex) string {
	return strconv.FormatFloat(v.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'g', -1, 64)
}

// ParseWKT parses a POLYGON or MULTIPOLYGON literal into an Mpoly. The first
// ring of each polygon becomes an outer ring; subsequent rings become holes
// with ParentID referencing that outer ring. A closing vertex duplicating the
// first is dropped, matching the open storage convention.
func ParseWKT(s string) (Mpoly, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Mpoly{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(t)

	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		rest := strings.TrimSpace(t[len("MULTIPOLYGON"):])
		if strings.EqualFold(rest, "EMPTY") {
			return Mpoly{}, nil
		}
		body, err := parenBody(rest)
		if err != nil {
			return Mpoly{}, fmt.Errorf("wkt multipolygon: %w", err)
		}
		var m Mpoly
		for _, polyStr := range splitTopLevel(body) {
			if err := appendPolygon(&m, polyStr); err != nil {
				return Mpoly{}, err
			}
		}
		return m, nil

	case strings.HasPrefix(up, "POLYGON"):
		rest := strings.TrimSpace(t[len("POLYGON"):])
		if strings.EqualFold(rest, "EMPTY") {
			return Mpoly{}, nil
		}
		var m Mpoly
		if err := appendPolygon(&m, rest); err != nil {
			return Mpoly{}, err
		}
		return m, nil
	}

	return Mpoly{}, fmt.Errorf("unsupported wkt type: %q", firstToken(up))
}

// appendPolygon parses one "((x y,...),(x y,...))" polygon body and appends
// its rings to m, wiring hole ParentIDs to the outer ring's index.
func appendPolygon(m *Mpoly, s string) error {
	body, err := parenBody(s)
	if err != nil {
		return fmt.Errorf("wkt polygon: %w", err)
	}
	outerID := -1
	for i, ringStr := range splitTopLevel(body) {
		coords, err := parenBody(ringStr)
		if err != nil {
			return fmt.Errorf("wkt ring %d: %w", i, err)
		}
		ring, err := parseRingCoords(coords)
		if err != nil {
			return fmt.Errorf("wkt ring %d: %w", i, err)
		}
		if i == 0 {
			outerID = len(m.Rings)
		} else {
			ring.Hole = true
			ring.ParentID = outerID
		}
		m.Rings = append(m.Rings, ring)
	}
	if outerID < 0 {
		return errors.New("wkt polygon: no rings")
	}
	return nil
}

func parseRingCoords(s string) (Ring, error) {
	ring := NewRing()
	for _, tup := range strings.Split(s, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			return Ring{}, fmt.Errorf("bad coordinate %q", tup)
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return Ring{}, fmt.Errorf("bad coordinate %q", tup)
		}
		ring.Pts = append(ring.Pts, Vertex{X: x, Y: y})
	}
	if len(ring.Pts) < 3 {
		return Ring{}, fmt.Errorf("ring has only %d points", len(ring.Pts))
	}
	// drop the explicit closing vertex
	first := ring.Pts[0]
	last := ring.Pts[len(ring.Pts)-1]
	if first == last {
		ring.Pts = ring.Pts[:len(ring.Pts)-1]
	}
	return ring, nil
}

// parenBody returns the content between the first '(' and its matching ')'.
func parenBody(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '(' {
		return "", fmt.Errorf("expected '(' at %q", s)
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], nil
			}
		}
	}
	return "", errors.New("unbalanced parentheses")
}

// splitTopLevel splits on commas at paren depth zero.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[start:]))
	return out
}

func firstToken(s string) string {
	if i := strings.IndexAny(s, " ("); i >= 0 {
		return s[:i]
	}
	return s
}
