package vecraster

import (
	"math"

	"github.com/gogpu/vecraster/internal/blend"
	"github.com/gogpu/vecraster/internal/dash"
	"github.com/gogpu/vecraster/internal/path"
	"github.com/gogpu/vecraster/internal/raster"
	istroke "github.com/gogpu/vecraster/internal/stroke"
	"github.com/gogpu/vecraster/surface"
)

// StrokeNodes expands the open or closed subpaths in nodes into their
// stroked outline and fills that outline onto dst, per opts. Unlike Fill,
// subpaths need not be closed — an unclosed subpath is simply capped at
// both ends with the active line cap.
func StrokeNodes(dst surface.Surface, pattern blend.Pattern, nodes []PathNode, opts ...StrokeOption) error {
	o := defaultStrokeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !dst.Format().Premultiplied() {
		return ErrPixelSourceNotPreMultiplied
	}
	if _, err := o.transformation.Invert(); err != nil {
		return ErrInvalidMatrix
	}

	elements := convertNodesToStroke(nodes)
	if len(elements) == 0 {
		return nil
	}

	tolerance := path.ClampTolerance(o.fill.tolerance)

	if len(o.dashes) > 0 {
		elements = applyStrokeDashing(elements, o.dashes, o.dashOffset, tolerance)
		if len(elements) == 0 {
			return nil
		}
	}

	if o.hairline {
		return strokeHairline(dst, pattern, elements, o.transformation, tolerance, o.lineCap, o.fill.operator, o.fill.precision)
	}

	style := istroke.Stroke{
		Width:      o.lineWidth,
		Cap:        strokeLineCap(o.lineCap),
		Join:       strokeLineJoin(o.lineJoin),
		MiterLimit: o.miterLimit,
	}
	expander := istroke.NewStrokeExpander(style)
	expander.SetTolerance(tolerance)
	outline := expander.Expand(elements)

	polygon := strokeOutlineToPolygon(outline, o.transformation, tolerance)
	paintPolygon(dst, pattern, polygon, raster.FillRuleNonZero, antiAliasingToRaster(o.fill.antiAliasingMode), o.fill.operator, o.fill.precision)
	return nil
}

// convertNodesToStroke maps the caller-facing PathNode stream onto the
// stroke expander's own element set (kept separate from internal/path's to
// avoid an import cycle between internal/path and internal/stroke).
func convertNodesToStroke(nodes []PathNode) []istroke.PathElement {
	elements := make([]istroke.PathElement, 0, len(nodes))
	for _, n := range nodes {
		switch e := n.(type) {
		case MoveTo:
			elements = append(elements, istroke.MoveTo{Point: istroke.Point{X: e.X, Y: e.Y}})
		case LineTo:
			elements = append(elements, istroke.LineTo{Point: istroke.Point{X: e.X, Y: e.Y}})
		case CurveTo:
			elements = append(elements, istroke.CubicTo{
				Control1: istroke.Point{X: e.Control1X, Y: e.Control1Y},
				Control2: istroke.Point{X: e.Control2X, Y: e.Control2Y},
				Point:    istroke.Point{X: e.X, Y: e.Y},
			})
		case ClosePath:
			elements = append(elements, istroke.Close{})
		}
	}
	return elements
}

// applyStrokeDashing flattens curves to line segments (ApplyDashes cannot
// consume QuadTo/CubicTo) and steps a fresh Dasher across each subpath,
// restarting the pattern at dashOffset for every subpath rather than
// carrying phase across subpath boundaries.
func applyStrokeDashing(elements []istroke.PathElement, pattern []float64, offset, tolerance float64) []istroke.PathElement {
	var out []istroke.PathElement
	var subpath []istroke.PathElement

	flush := func() {
		if len(subpath) == 0 {
			return
		}
		lines := flattenStrokeElements(subpath, tolerance)
		dasher, err := dash.NewDasher(pattern, offset)
		if err == nil {
			out = append(out, istroke.ApplyDashes(lines, dasher)...)
		}
		subpath = subpath[:0]
	}

	for _, el := range elements {
		if _, ok := el.(istroke.MoveTo); ok {
			flush()
		}
		subpath = append(subpath, el)
	}
	flush()
	return out
}

// flattenStrokeElements reduces a single subpath's curves to line
// segments, turning a trailing Close into an explicit LineTo back to the
// subpath's start point since ApplyDashes has no notion of closing.
func flattenStrokeElements(elements []istroke.PathElement, tolerance float64) []istroke.PathElement {
	var out []istroke.PathElement
	var current, start istroke.Point

	for _, el := range elements {
		switch e := el.(type) {
		case istroke.MoveTo:
			current, start = e.Point, e.Point
			out = append(out, e)
		case istroke.LineTo:
			out = append(out, e)
			current = e.Point
		case istroke.QuadTo:
			for _, p := range flattenStrokeQuad(current, e.Control, e.Point, tolerance) {
				out = append(out, istroke.LineTo{Point: p})
			}
			current = e.Point
		case istroke.CubicTo:
			for _, p := range flattenStrokeCubic(current, e.Control1, e.Control2, e.Point, tolerance) {
				out = append(out, istroke.LineTo{Point: p})
			}
			current = e.Point
		case istroke.Close:
			out = append(out, istroke.LineTo{Point: start})
			current = start
		}
	}
	return out
}

func flattenStrokeQuad(p0, p1, p2 istroke.Point, tolerance float64) []istroke.Point {
	var points []istroke.Point
	flattenStrokeQuadRec(p0, p1, p2, tolerance, &points)
	return points
}

func flattenStrokeQuadRec(p0, p1, p2 istroke.Point, tolerance float64, points *[]istroke.Point) {
	dist := strokeDistanceToLine(p1, p0, p2)
	if dist <= tolerance {
		*points = append(*points, p2)
		return
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	flattenStrokeQuadRec(p0, p01, mid, tolerance, points)
	flattenStrokeQuadRec(mid, p12, p2, tolerance, points)
}

func flattenStrokeCubic(p0, p1, p2, p3 istroke.Point, tolerance float64) []istroke.Point {
	var points []istroke.Point
	flattenStrokeCubicRec(p0, p1, p2, p3, tolerance, &points)
	return points
}

func flattenStrokeCubicRec(p0, p1, p2, p3 istroke.Point, tolerance float64, points *[]istroke.Point) {
	d1 := strokeDistanceToLine(p1, p0, p3)
	d2 := strokeDistanceToLine(p2, p0, p3)
	if d1 <= tolerance && d2 <= tolerance {
		*points = append(*points, p3)
		return
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	flattenStrokeCubicRec(p0, p01, p012, mid, tolerance, points)
	flattenStrokeCubicRec(mid, p123, p23, p3, tolerance, points)
}

func strokeDistanceToLine(p, a, b istroke.Point) float64 {
	av := a.Sub(b).Neg()
	apv := p.Sub(a)
	lenSq := av.LengthSquared()
	if lenSq == 0 {
		return apv.Length()
	}
	cross := av.Cross(apv)
	return math.Abs(cross) / sqrtPositive(lenSq)
}

func strokeLineCap(c LineCap) istroke.LineCap {
	switch c {
	case LineCapRound:
		return istroke.LineCapRound
	case LineCapSquare:
		return istroke.LineCapSquare
	default:
		return istroke.LineCapButt
	}
}

func strokeLineJoin(j LineJoin) istroke.LineJoin {
	switch j {
	case LineJoinRound:
		return istroke.LineJoinRound
	case LineJoinBevel:
		return istroke.LineJoinBevel
	default:
		return istroke.LineJoinMiter
	}
}

// strokeOutlineToPolygon converts the expander's outline (MoveTo/LineTo/
// CubicTo — round joins and caps emit arc-approximating cubics — and
// Close) into device-space raster edges, applying m to every vertex so
// anisotropic scale and rotation affect the outline exactly as they would
// a filled shape built from the same transformed coordinates.
func strokeOutlineToPolygon(outline []istroke.PathElement, m Matrix, tolerance float64) raster.Polygon {
	var edges []raster.Edge
	var current, start istroke.Point
	haveCurrent := false

	transform := func(p istroke.Point) raster.Point {
		dp := m.TransformPoint(Point{X: p.X, Y: p.Y})
		return raster.Point{X: dp.X, Y: dp.Y}
	}
	addLine := func(p0, p1 istroke.Point) {
		dp0, dp1 := transform(p0), transform(p1)
		// Drop horizontal edges (covers zero-length edges too): they
		// never contribute a winding crossing and would otherwise
		// violate the y_top < y_bottom invariant edges downstream rely on.
		if dp0.Y == dp1.Y {
			return
		}
		edges = append(edges, raster.NewEdge(dp0, dp1))
	}

	for _, el := range outline {
		switch e := el.(type) {
		case istroke.MoveTo:
			current, start = e.Point, e.Point
			haveCurrent = true
		case istroke.LineTo:
			if haveCurrent {
				addLine(current, e.Point)
			}
			current = e.Point
		case istroke.CubicTo:
			if haveCurrent {
				prev := current
				for _, p := range flattenStrokeCubic(prev, e.Control1, e.Control2, e.Point, tolerance) {
					addLine(prev, p)
					prev = p
				}
			}
			current = e.Point
		case istroke.Close:
			if haveCurrent {
				addLine(current, start)
			}
			current = start
		}
	}
	return raster.NewPolygon(edges)
}

func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
