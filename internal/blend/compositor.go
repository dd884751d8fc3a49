// Package blend implements Porter-Duff/PDF compositing operators and the
// stride/surface compositors that apply a stack of them over destination
// pixel runs.
package blend

import "math"

// Precision selects the compositor path a layer is routed through. Both
// paths call the same per-operator BlendFunc, so the result does not depend
// on Precision: the Porter-Duff operators and most separable blend modes
// use byte arithmetic either way, while soft-light and the non-separable
// (HSL) modes compute their blend term in floating point either way.
type Precision uint8

const (
	// PrecisionInteger routes layers through GetBlendFunc directly.
	PrecisionInteger Precision = iota
	// PrecisionFloat routes every layer through blendFloat, which calls the
	// same BlendFunc as PrecisionInteger.
	PrecisionFloat
)

// OperatorFlags reports the isBounded and requiresFloat properties of a
// blend mode. isBounded means the operator only writes where source or
// destination coverage is non-empty (the stride compositor must still
// clear runs outside the supplied spans for unbounded operators).
// requiresFloat means the operator needs float precision to avoid visible
// banding (the PDF separable and non-separable modes).
func OperatorFlags(mode BlendMode) (isBounded, requiresFloat bool) {
	switch mode {
	case BlendClear, BlendSource, BlendSourceIn, BlendDestinationIn, BlendSourceOut,
		BlendDestinationAtop, BlendModulate:
		// A transparent source still changes the destination.
		return false, false
	case BlendDestination, BlendSourceOver, BlendDestinationOver, BlendDestinationOut,
		BlendSourceAtop, BlendXor, BlendPlus, BlendPlusLighter:
		return true, false
	default:
		// Every separable (Multiply..Exclusion) and non-separable
		// (Hue..Luminosity) PDF mode leaves the destination unchanged
		// under a transparent source and is float-precision.
		return true, true
	}
}

// Pixel is a premultiplied RGBA8 sample, the unit the compositor reads
// from and writes to.
type Pixel struct {
	R, G, B, A byte
}

// PatternKind names the source a Layer reads from, per the sampling
// contract: single pixel, gradient, dither, or another surface. Gradient
// and dither sampling themselves are out of scope here (they are a
// caller-supplied Pattern); the compositor only needs to call Sample.
type PatternKind uint8

const (
	PatternPixel PatternKind = iota
	PatternGradient
	PatternDither
	PatternSurface
)

// Pattern is a read-only, freely-shared paint source. Sample returns the
// premultiplied pixel at device coordinates (x, y).
type Pattern interface {
	Kind() PatternKind
	Sample(x, y int) Pixel
}

// SolidPattern is a single, constant premultiplied pixel — the trivial
// Pixel-kind source.
type SolidPattern struct {
	Color Pixel
}

func (p SolidPattern) Kind() PatternKind  { return PatternPixel }
func (p SolidPattern) Sample(x, y int) Pixel { return p.Color }

// LinearGradientPattern samples a two-stop premultiplied gradient along
// the axis from P0 to P1, clamped at the ends (pad extend only — repeat
// and reflect extend modes are gradient-implementation territory and out
// of scope here).
type LinearGradientPattern struct {
	X0, Y0, X1, Y1 float64
	C0, C1         Pixel
}

func (p LinearGradientPattern) Kind() PatternKind { return PatternGradient }

func (p LinearGradientPattern) Sample(x, y int) Pixel {
	dx, dy := p.X1-p.X0, p.Y1-p.Y0
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return p.C0
	}
	t := ((float64(x)-p.X0)*dx + (float64(y)-p.Y0)*dy) / length2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b byte) byte {
		return byte(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Pixel{
		R: lerp(p.C0.R, p.C1.R),
		G: lerp(p.C0.G, p.C1.G),
		B: lerp(p.C0.B, p.C1.B),
		A: lerp(p.C0.A, p.C1.A),
	}
}

// Layer is one entry of the operator/source stack a compositor run
// applies, left to right: destination := Operator(Source.Sample(...), destination).
type Layer struct {
	Source   Pattern
	Operator BlendMode
}

// StrideCompositor applies a stack of layers left-to-right over a
// horizontal run of destination pixels addressed as 4-byte premultiplied
// RGBA8 groups in dst[x0*4:(x0+n)*4].
type StrideCompositor struct{}

// Run composites layers onto dst[x0, x0+n) in device-pixel order. Every
// pixel of the span is written with the layer math, whatever the
// operator's isBounded flag; callers that need the outside-the-span clear
// for unbounded operators do that clear themselves before calling Run.
func (StrideCompositor) Run(dst []byte, x0, n int, layers []Layer, precision Precision) {
	for i := 0; i < n; i++ {
		x := x0 + i
		off := i * 4
		if off+4 > len(dst) {
			return
		}
		d := Pixel{dst[off], dst[off+1], dst[off+2], dst[off+3]}
		for _, layer := range layers {
			s := layer.Source.Sample(x, 0)
			_, requiresFloat := OperatorFlags(layer.Operator)
			if precision == PrecisionFloat || requiresFloat {
				d = blendFloat(s, d, layer.Operator)
			} else {
				fn := GetBlendFunc(layer.Operator)
				r, g, b, a := fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
				d = Pixel{r, g, b, a}
			}
		}
		dst[off] = d.R
		dst[off+1] = d.G
		dst[off+2] = d.B
		dst[off+3] = d.A
	}
}

// Surface is the minimal 2D pixel sink the surface compositor writes
// into: a premultiplied RGBA8 run accessor, matching the surface package's
// Stride contract.
type Surface interface {
	Stride(x, y, n int) []byte
}

// SurfaceCompositor is the 2D analogue of StrideCompositor, used by the
// supersample rasterizer to composite n_layers source/operator pairs onto
// a rectangular region of a Surface one row at a time.
type SurfaceCompositor struct {
	Stride StrideCompositor
}

// Run composites layers onto surface rows [y, y+rows) starting at column
// x, width n, in device-pixel order.
func (c SurfaceCompositor) Run(surface Surface, x, y, n, rows int, layers []Layer, precision Precision) {
	for row := 0; row < rows; row++ {
		line := surface.Stride(x, y+row, n)
		c.Stride.Run(line, x, n, layers, precision)
	}
}

// blendFloat routes to the same per-operator function as the integer
// path, so it produces the same bytes. Soft-light's closed-form curve and
// every non-separable HSL mode (via nonSeparableBlend) do their blend-term
// arithmetic in float32/float64 inside that function; the Porter-Duff
// operators and the other separable modes use byte arithmetic on this
// path as well.
func blendFloat(s, d Pixel, mode BlendMode) Pixel {
	fn := GetBlendFunc(mode)
	r, g, b, a := fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
	return Pixel{r, g, b, a}
}
