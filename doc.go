// Package vecraster implements a software 2D vector graphics rasterization
// pipeline: path flattening, stroke expansion, polygon scanline rasterization
// with selectable anti-aliasing, and Porter-Duff/PDF compositing.
//
// # Quick Start
//
//	import "github.com/gogpu/vecraster"
//
//	nodes := []vecraster.PathNode{
//		vecraster.MoveTo{X: 10, Y: 10},
//		vecraster.LineTo{X: 100, Y: 10},
//		vecraster.LineTo{X: 100, Y: 100},
//		vecraster.ClosePath{},
//	}
//	surf := surface.NewImageSurface(200, 200)
//	err := vecraster.Fill(surf, vecraster.SolidPaint(vecraster.Red), nodes)
//
// # Architecture
//
// The pipeline is organized into:
//   - Public API: Point, Matrix, PathNode, Stroke, Dash, FillOption/StrokeOption
//   - internal/path: adaptive curve flattening and per-subpath edge iteration
//   - internal/pen, internal/face: discretized round-pen vertices and offset-face
//     miter intersection, the geometric primitives stroke outline expansion draws on
//   - internal/stroke: join/cap construction and outline expansion
//   - internal/dash: dash pattern application over a flattened outline
//   - internal/fill: turns a flattened path into the edge polygon the rasterizer walks
//   - internal/raster: the scanline coverage walk and its anti-aliasing modes
//   - internal/blend: Porter-Duff/PDF compositing operators and the layer compositor
//   - surface: the pixel-format/output contract callers provide
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left, X
// increases right, Y increases down.
package vecraster
