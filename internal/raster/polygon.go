package raster

import "math"

// Polygon is the flat edge list the fill and stroke plotters hand to the
// rasterizer: every edge already satisfies y0 < y1 (NewEdge's swap), and
// the edges of any one closed subpath sum to zero net winding direction.
type Polygon struct {
	Edges []Edge
}

// NewPolygon builds a Polygon from device-space edges.
func NewPolygon(edges []Edge) Polygon {
	return Polygon{Edges: edges}
}

// Bounds returns the integer pixel bounding box covering every edge, or
// ok=false if the polygon has no edges.
func (p Polygon) Bounds() (xMin, yMin, xMax, yMax int, ok bool) {
	if len(p.Edges) == 0 {
		return 0, 0, 0, 0, false
	}

	fxMin, fyMin := math.MaxFloat64, math.MaxFloat64
	fxMax, fyMax := -math.MaxFloat64, -math.MaxFloat64
	for _, e := range p.Edges {
		fxMin = math.Min(fxMin, math.Min(e.x0, e.x1))
		fxMax = math.Max(fxMax, math.Max(e.x0, e.x1))
		fyMin = math.Min(fyMin, e.y0)
		fyMax = math.Max(fyMax, e.y1)
	}

	return int(math.Floor(fxMin)), int(math.Floor(fyMin)),
		int(math.Ceil(fxMax)), int(math.Ceil(fyMax)), true
}

// InBox reports whether the polygon's bounding box intersects the given
// device-pixel rectangle [x0,x1) x [y0,y1). The rasterizer uses this to
// skip writing zero pixels entirely.
func (p Polygon) InBox(x0, y0, x1, y1 int) bool {
	bx0, by0, bx1, by1, ok := p.Bounds()
	if !ok {
		return false
	}
	return bx0 < x1 && bx1 > x0 && by0 < y1 && by1 > y0
}

// NetWinding sums the direction of every edge; a correctly constructed
// closed subpath (or union of closed subpaths) sums to zero.
func (p Polygon) NetWinding() int {
	total := 0
	for _, e := range p.Edges {
		total += e.dir
	}
	return total
}
