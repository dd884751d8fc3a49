package vecraster

import (
	"github.com/gogpu/vecraster/internal/blend"
	"github.com/gogpu/vecraster/internal/raster"
	istroke "github.com/gogpu/vecraster/internal/stroke"
	"github.com/gogpu/vecraster/surface"
)

// strokeHairline implements the hairline fast path: it skips the face/join/
// cap machinery entirely, flattens every subpath to a polyline, and hands
// each one to the anti-aliased hairline rasterizer, which writes
// one-pixel-wide coverage runs (Bresenham-style) straight to dst through
// the requested operator.
func strokeHairline(dst surface.Surface, pattern blend.Pattern, elements []istroke.PathElement, m Matrix, tolerance float64, cap LineCap, op blend.BlendMode, precision blend.Precision) error {
	lines := flattenStrokeElements(elements, tolerance)
	subpaths := deviceSubpaths(lines, m)
	if len(subpaths) == 0 {
		return nil
	}

	blitter := &patternHairlineBlitter{dst: dst, pattern: pattern, op: op, precision: precision}
	hairCap := hairlineLineCap(cap)
	for _, sp := range subpaths {
		c := hairCap
		if sp.closed {
			c = raster.HairlineCapButt
		}
		raster.StrokeHairlineAA(blitter, sp.points, c, 1.0)
	}
	return nil
}

// hairlineSubpath is one MoveTo-delimited run of the flattened outline,
// already transformed to device space.
type hairlineSubpath struct {
	points []raster.HairlinePoint
	closed bool
}

// deviceSubpaths splits a flattened (MoveTo/LineTo/Close only) element
// stream into per-subpath device-space point lists.
func deviceSubpaths(lines []istroke.PathElement, m Matrix) []hairlineSubpath {
	var subpaths []hairlineSubpath
	var current hairlineSubpath
	transform := func(p istroke.Point) raster.HairlinePoint {
		dp := m.TransformPoint(Point{X: p.X, Y: p.Y})
		return raster.HairlinePoint{X: dp.X, Y: dp.Y}
	}

	flush := func() {
		if len(current.points) >= 2 {
			subpaths = append(subpaths, current)
		}
		current = hairlineSubpath{}
	}

	for _, el := range lines {
		switch e := el.(type) {
		case istroke.MoveTo:
			flush()
			current.points = append(current.points, transform(e.Point))
		case istroke.LineTo:
			current.points = append(current.points, transform(e.Point))
		case istroke.Close:
			current.closed = true
		}
	}
	flush()
	return subpaths
}

func hairlineLineCap(c LineCap) raster.HairlineLineCap {
	switch c {
	case LineCapRound:
		return raster.HairlineCapRound
	case LineCapSquare:
		return raster.HairlineCapSquare
	default:
		return raster.HairlineCapButt
	}
}

// patternHairlineBlitter adapts raster.HairlineBlitter to composite through
// a blend.Pattern and Porter-Duff/PDF operator instead of writing a fixed
// color, so the hairline fast path shares the same compositing semantics
// as the face/join/cap path.
type patternHairlineBlitter struct {
	dst        surface.Surface
	pattern    blend.Pattern
	op         blend.BlendMode
	precision  blend.Precision
	compositor blend.StrideCompositor
}

func (b *patternHairlineBlitter) blend(x, y int, alpha uint8) {
	if alpha == 0 || x < 0 || y < 0 || x >= b.dst.Width() || y >= b.dst.Height() {
		return
	}
	row := b.dst.Stride(x, y, 1)
	if len(row) < 4 {
		return
	}
	coverage := float64(alpha) / 255
	source := scaleByCoverage(b.pattern.Sample(x, y), coverage)
	layer := blend.Layer{Source: blend.SolidPattern{Color: source}, Operator: b.op}
	b.compositor.Run(row, x, 1, []blend.Layer{layer}, b.precision)
}

func (b *patternHairlineBlitter) BlitH(x, y, width int, alpha uint8) {
	for i := 0; i < width; i++ {
		b.blend(x+i, y, alpha)
	}
}

func (b *patternHairlineBlitter) BlitV(x, y, height int, alpha uint8) {
	for i := 0; i < height; i++ {
		b.blend(x, y+i, alpha)
	}
}

func (b *patternHairlineBlitter) BlitAntiH2(x, y int, alpha0, alpha1 uint8) {
	b.blend(x, y, alpha0)
	b.blend(x+1, y, alpha1)
}

func (b *patternHairlineBlitter) BlitAntiV2(x, y int, alpha0, alpha1 uint8) {
	b.blend(x, y, alpha0)
	b.blend(x, y+1, alpha1)
}
