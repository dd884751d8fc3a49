package vecraster

import (
	"math"

	"github.com/gogpu/vecraster/internal/blend"
	"github.com/gogpu/vecraster/internal/fill"
	"github.com/gogpu/vecraster/internal/path"
	"github.com/gogpu/vecraster/internal/raster"
	"github.com/gogpu/vecraster/surface"
)

// Fill rasterizes the closed subpaths in nodes onto dst, painting covered
// pixels with pattern through opts.operator. Every subpath must end in a
// ClosePath before the next MoveTo or the end of nodes; an open subpath
// returns ErrPathNotClosed.
func Fill(dst surface.Surface, pattern blend.Pattern, nodes []PathNode, opts ...FillOption) error {
	o := defaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !dst.Format().Premultiplied() {
		return ErrPixelSourceNotPreMultiplied
	}
	if err := requireClosedSubpaths(nodes); err != nil {
		return err
	}

	elements := convertNodes(nodes)
	if len(elements) == 0 {
		return nil
	}

	tolerance := path.ClampTolerance(o.tolerance)
	polygon := fill.BuildPolygon(elements, tolerance)
	paintPolygon(dst, pattern, polygon, fillRuleToRaster(o.fillRule), antiAliasingToRaster(o.antiAliasingMode), o.operator, o.precision)
	return nil
}

// requireClosedSubpaths reports ErrPathNotClosed if any subpath starts
// with MoveTo but is not terminated by ClosePath before the next MoveTo
// or the end of the node list.
func requireClosedSubpaths(nodes []PathNode) error {
	open := false
	for _, n := range nodes {
		switch n.(type) {
		case MoveTo:
			if open {
				return ErrPathNotClosed
			}
			open = true
		case ClosePath:
			open = false
		}
	}
	if open {
		return ErrPathNotClosed
	}
	return nil
}

// convertNodes maps the caller-facing PathNode stream onto the lower-level
// internal/path element set the flattener and edge collector consume.
func convertNodes(nodes []PathNode) []path.PathElement {
	elements := make([]path.PathElement, 0, len(nodes))
	for _, n := range nodes {
		switch e := n.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.X, Y: e.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.X, Y: e.Y}})
		case CurveTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: e.Control1X, Y: e.Control1Y},
				Control2: path.Point{X: e.Control2X, Y: e.Control2Y},
				Point:    path.Point{X: e.X, Y: e.Y},
			})
		case ClosePath:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

func fillRuleToRaster(rule FillRule) raster.FillRule {
	if rule == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func antiAliasingToRaster(mode AntiAliasingMode) raster.AAMode {
	switch mode {
	case AntiAliasingNone:
		return raster.AAModeNone
	case AntiAliasingSupersample4x:
		return raster.AAModeSupersample4x
	default:
		return raster.AAModeMultisample4x
	}
}

// paintPolygon walks polygon's coverage and composites pattern through it
// onto dst using the Porter-Duff/PDF operator op.
func paintPolygon(dst surface.Surface, pattern blend.Pattern, polygon raster.Polygon, rule raster.FillRule, mode raster.AAMode, op blend.BlendMode, precision blend.Precision) {
	var compositor blend.StrideCompositor
	raster.RasterizeCoverage(dst.Width(), dst.Height(), polygon, rule, mode, func(x, y int, coverage float64) {
		row := dst.Stride(x, y, 1)
		if len(row) < 4 {
			return
		}
		source := scaleByCoverage(pattern.Sample(x, y), coverage)
		layer := blend.Layer{Source: blend.SolidPattern{Color: source}, Operator: op}
		compositor.Run(row, x, 1, []blend.Layer{layer}, precision)
	})
}

// SolidPaint converts a straight-alpha RGBA color into the premultiplied
// Pattern that Fill and Stroke composite against.
func SolidPaint(c RGBA) blend.Pattern {
	p := c.Premultiply()
	return blend.SolidPattern{Color: blend.Pixel{
		R: byte(clamp255(p.R * 255)),
		G: byte(clamp255(p.G * 255)),
		B: byte(clamp255(p.B * 255)),
		A: byte(clamp255(p.A * 255)),
	}}
}

// scaleByCoverage attenuates a premultiplied pixel by a [0,1] coverage
// fraction, the standard way to turn partial pixel coverage into a source
// alpha the compositor can treat uniformly with a fully-covered pixel.
func scaleByCoverage(p blend.Pixel, coverage float64) blend.Pixel {
	if coverage >= 1 {
		return p
	}
	if coverage <= 0 {
		return blend.Pixel{}
	}
	scale := func(c byte) byte { return byte(math.Round(float64(c) * coverage)) }
	return blend.Pixel{R: scale(p.R), G: scale(p.G), B: scale(p.B), A: scale(p.A)}
}
