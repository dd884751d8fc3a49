// Package fill turns a flattened path into the edge polygon the
// rasterizer walks. It is deliberately thin: all curve flattening lives
// in internal/path, all scanline and coverage logic lives in
// internal/raster.
package fill

import (
	"github.com/gogpu/vecraster/internal/path"
	"github.com/gogpu/vecraster/internal/raster"
)

// BuildPolygon flattens elements to tolerance and collects the resulting
// line segments into a raster.Polygon ready for RasterizeCoverage.
func BuildPolygon(elements []path.PathElement, tolerance float64) raster.Polygon {
	edges := path.CollectEdges(elements, tolerance)
	rasterEdges := make([]raster.Edge, len(edges))
	for i, e := range edges {
		rasterEdges[i] = raster.NewEdge(
			raster.Point{X: e.P0.X, Y: e.P0.Y},
			raster.Point{X: e.P1.X, Y: e.P1.Y},
		)
	}
	return raster.NewPolygon(rasterEdges)
}
