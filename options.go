package vecraster

import "github.com/gogpu/vecraster/internal/blend"

// AntiAliasingMode selects how the rasterizer converts polygon coverage
// into pixel values.
type AntiAliasingMode int

const (
	// AntiAliasingMultisample4x accumulates coverage from a 4x4 grid of
	// sub-scanlines per device row into a SparseCoverageBuffer. This is
	// the default: it is cheaper than supersampling for typical paths
	// since only spans touched by an edge carry extra cost.
	AntiAliasingMultisample4x AntiAliasingMode = iota
	// AntiAliasingSupersample4x rasterizes into a 4x oversized mask
	// surface and downsamples to an alpha8 coverage mask before
	// compositing. Higher quality on thin, nearly-horizontal features;
	// more scratch memory.
	AntiAliasingSupersample4x
	// AntiAliasingNone disables anti-aliasing: a pixel is either fully
	// covered or not, decided by mid-scanline sampling.
	AntiAliasingNone
)

// FillOption configures a Fill call.
//
// Example:
//
//	err := vecraster.Fill(surface, pattern, nodes,
//	    vecraster.WithFillRule(vecraster.FillRuleEvenOdd),
//	    vecraster.WithOperator(blend.BlendSourceOver))
type FillOption func(*fillOptions)

// fillOptions holds the resolved configuration for a Fill call.
type fillOptions struct {
	antiAliasingMode AntiAliasingMode
	fillRule         FillRule
	operator         blend.BlendMode
	precision        blend.Precision
	tolerance        float64
}

// defaultFillOptions returns the options a Fill call uses when the caller
// supplies none, matching the documented defaults: multisample 4x AA,
// non-zero winding, src-over compositing, and a 0.1 device-unit
// flattening tolerance.
func defaultFillOptions() fillOptions {
	return fillOptions{
		antiAliasingMode: AntiAliasingMultisample4x,
		fillRule:         FillRuleNonZero,
		operator:         blend.BlendSourceOver,
		precision:        blend.PrecisionInteger,
		tolerance:        defaultTolerance,
	}
}

// defaultTolerance is the default curve-flattening tolerance in device
// units, used when no WithTolerance option is given.
const defaultTolerance = 0.1

// WithAntiAliasingMode selects the anti-aliasing strategy for a Fill call.
func WithAntiAliasingMode(mode AntiAliasingMode) FillOption {
	return func(o *fillOptions) {
		o.antiAliasingMode = mode
	}
}

// WithFillRule selects the winding rule a Fill call uses to decide
// interior vs. exterior.
func WithFillRule(rule FillRule) FillOption {
	return func(o *fillOptions) {
		o.fillRule = rule
	}
}

// WithOperator selects the Porter-Duff/PDF compositing operator a Fill
// call uses to combine pattern source with destination. WithStrokeOperator
// is the StrokeNodes counterpart.
func WithOperator(op blend.BlendMode) FillOption {
	return func(o *fillOptions) {
		o.operator = op
	}
}

// WithPrecision forces the compositor's internal arithmetic width.
func WithPrecision(p blend.Precision) FillOption {
	return func(o *fillOptions) {
		o.precision = p
	}
}

// WithTolerance sets the curve-flattening tolerance in device units.
// Values below path.MinTolerance are clamped up to it.
func WithTolerance(tolerance float64) FillOption {
	return func(o *fillOptions) {
		o.tolerance = tolerance
	}
}

// StrokeOption configures a StrokeNodes call. StrokeNodes does not accept
// FillOption values; the settings of the final scanline fill of the
// expanded outline are set with WithStrokeAntiAliasingMode,
// WithStrokeOperator, WithStrokePrecision and WithStrokeTolerance.
//
// Example:
//
//	err := vecraster.StrokeNodes(surface, pattern, nodes,
//	    vecraster.WithLineWidth(2),
//	    vecraster.WithLineJoin(vecraster.LineJoinRound),
//	    vecraster.WithDashes([]float64{4, 4}, 0))
type StrokeOption func(*strokeOptions)

// strokeOptions holds the resolved configuration for a Stroke call.
type strokeOptions struct {
	fill fillOptions

	lineCap        LineCap
	lineJoin       LineJoin
	lineWidth      float64
	miterLimit     float64
	dashes         []float64
	dashOffset     float64
	transformation Matrix
	hairline       bool
}

// minLineWidth is the smallest line width a Stroke call honors; thinner
// requests are clamped up to it rather than degenerating to nothing.
const minLineWidth = 1.0 / 256.0

// defaultMiterLimit is the ratio of miter length to line width above
// which a miter join falls back to bevel.
const defaultMiterLimit = 10.0

// defaultStrokeOptions returns the options a Stroke call uses when the
// caller supplies none: butt caps, miter joins with limit 10, width 2,
// no dashing, identity transformation.
func defaultStrokeOptions() strokeOptions {
	return strokeOptions{
		fill:           defaultFillOptions(),
		lineCap:        LineCapButt,
		lineJoin:       LineJoinMiter,
		lineWidth:      2.0,
		miterLimit:     defaultMiterLimit,
		dashOffset:     0,
		transformation: Identity(),
	}
}

// WithStrokeAntiAliasingMode selects the anti-aliasing strategy used when
// rasterizing the expanded stroke outline.
func WithStrokeAntiAliasingMode(mode AntiAliasingMode) StrokeOption {
	return func(o *strokeOptions) {
		o.fill.antiAliasingMode = mode
	}
}

// WithStrokeOperator selects the compositing operator used when painting
// the expanded stroke outline.
func WithStrokeOperator(op blend.BlendMode) StrokeOption {
	return func(o *strokeOptions) {
		o.fill.operator = op
	}
}

// WithStrokePrecision forces the compositor's internal arithmetic width
// when painting the expanded stroke outline.
func WithStrokePrecision(p blend.Precision) StrokeOption {
	return func(o *strokeOptions) {
		o.fill.precision = p
	}
}

// WithStrokeTolerance sets the curve-flattening tolerance used when
// flattening the input path prior to stroke expansion.
func WithStrokeTolerance(tolerance float64) StrokeOption {
	return func(o *strokeOptions) {
		o.fill.tolerance = tolerance
	}
}

// WithLineCap selects the shape drawn at unjoined path endpoints.
func WithLineCap(cap LineCap) StrokeOption {
	return func(o *strokeOptions) {
		o.lineCap = cap
	}
}

// WithLineJoin selects the shape drawn where two stroked segments meet.
func WithLineJoin(join LineJoin) StrokeOption {
	return func(o *strokeOptions) {
		o.lineJoin = join
	}
}

// WithLineWidth sets the stroke width in user-space units. Widths below
// minLineWidth are clamped up to it.
func WithLineWidth(width float64) StrokeOption {
	return func(o *strokeOptions) {
		if width < minLineWidth {
			width = minLineWidth
		}
		o.lineWidth = width
	}
}

// WithMiterLimit sets the miter-length-to-line-width ratio above which a
// miter join falls back to bevel. A limit of 1 forces every acute join
// to bevel.
func WithMiterLimit(limit float64) StrokeOption {
	return func(o *strokeOptions) {
		o.miterLimit = limit
	}
}

// WithDashes sets the dash pattern (alternating on/off lengths in
// user-space units) and the offset into that pattern at which dashing
// starts. A nil or empty pattern disables dashing.
func WithDashes(dashes []float64, offset float64) StrokeOption {
	return func(o *strokeOptions) {
		o.dashes = dashes
		o.dashOffset = offset
	}
}

// WithTransformation sets the affine transform applied to the stroked
// outline before rasterization. Singular matrices cause StrokeNodes to
// fail with ErrInvalidMatrix.
func WithTransformation(m Matrix) StrokeOption {
	return func(o *strokeOptions) {
		o.transformation = m
	}
}

// WithHairline switches StrokeNodes to its hairline fast path: the
// face/join/cap expander is skipped entirely and every subpath is
// flattened, dashed, and drawn as a one-device-pixel-wide anti-aliased
// line, regardless of the configured line width or the transformation's
// scale factor.
func WithHairline(hairline bool) StrokeOption {
	return func(o *strokeOptions) {
		o.hairline = hairline
	}
}

// WithStrokeStyle copies width, cap, join, miter limit, and dash pattern
// out of a Stroke preset (see Thin, RoundStroke, DottedStroke, and friends)
// into a Stroke call's options, so callers that prefer building a
// reusable style object are not limited to the functional options.
func WithStrokeStyle(s Stroke) StrokeOption {
	return func(o *strokeOptions) {
		o.lineWidth = s.Width
		o.lineCap = s.Cap
		o.lineJoin = s.Join
		o.miterLimit = s.MiterLimit
		if s.Dash != nil {
			o.dashes = s.Dash.effectiveArray()
			o.dashOffset = s.Dash.NormalizedOffset()
		}
	}
}
