package vecraster

import (
	"testing"

	"github.com/gogpu/vecraster/internal/blend"
)

func TestDefaultFillOptions(t *testing.T) {
	o := defaultFillOptions()

	if o.antiAliasingMode != AntiAliasingMultisample4x {
		t.Errorf("default antiAliasingMode = %v, want AntiAliasingMultisample4x", o.antiAliasingMode)
	}
	if o.fillRule != FillRuleNonZero {
		t.Errorf("default fillRule = %v, want FillRuleNonZero", o.fillRule)
	}
	if o.operator != blend.BlendSourceOver {
		t.Errorf("default operator = %v, want BlendSourceOver", o.operator)
	}
	if o.precision != blend.PrecisionInteger {
		t.Errorf("default precision = %v, want PrecisionInteger", o.precision)
	}
	if o.tolerance != 0.1 {
		t.Errorf("default tolerance = %v, want 0.1", o.tolerance)
	}
}

func TestFillOptionsApply(t *testing.T) {
	o := defaultFillOptions()
	opts := []FillOption{
		WithAntiAliasingMode(AntiAliasingNone),
		WithFillRule(FillRuleEvenOdd),
		WithOperator(blend.BlendMultiply),
		WithPrecision(blend.PrecisionFloat),
		WithTolerance(0.5),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.antiAliasingMode != AntiAliasingNone {
		t.Errorf("antiAliasingMode = %v, want AntiAliasingNone", o.antiAliasingMode)
	}
	if o.fillRule != FillRuleEvenOdd {
		t.Errorf("fillRule = %v, want FillRuleEvenOdd", o.fillRule)
	}
	if o.operator != blend.BlendMultiply {
		t.Errorf("operator = %v, want BlendMultiply", o.operator)
	}
	if o.precision != blend.PrecisionFloat {
		t.Errorf("precision = %v, want PrecisionFloat", o.precision)
	}
	if o.tolerance != 0.5 {
		t.Errorf("tolerance = %v, want 0.5", o.tolerance)
	}
}

func TestDefaultStrokeOptions(t *testing.T) {
	o := defaultStrokeOptions()

	if o.lineCap != LineCapButt {
		t.Errorf("default lineCap = %v, want LineCapButt", o.lineCap)
	}
	if o.lineJoin != LineJoinMiter {
		t.Errorf("default lineJoin = %v, want LineJoinMiter", o.lineJoin)
	}
	if o.lineWidth != 2.0 {
		t.Errorf("default lineWidth = %v, want 2.0", o.lineWidth)
	}
	if o.miterLimit != 10.0 {
		t.Errorf("default miterLimit = %v, want 10.0", o.miterLimit)
	}
	if o.dashOffset != 0 {
		t.Errorf("default dashOffset = %v, want 0", o.dashOffset)
	}
	if o.dashes != nil {
		t.Errorf("default dashes = %v, want nil", o.dashes)
	}
	if o.transformation != Identity() {
		t.Errorf("default transformation = %v, want Identity()", o.transformation)
	}
	if o.hairline {
		t.Error("default hairline = true, want false")
	}
	if o.fill != defaultFillOptions() {
		t.Errorf("default fill sub-options = %+v, want %+v", o.fill, defaultFillOptions())
	}
}

func TestWithLineWidthClampsBelowMinimum(t *testing.T) {
	o := defaultStrokeOptions()
	WithLineWidth(0)(&o)

	if o.lineWidth != minLineWidth {
		t.Errorf("lineWidth = %v, want clamped minLineWidth %v", o.lineWidth, minLineWidth)
	}
}

func TestWithLineWidthAboveMinimumUnchanged(t *testing.T) {
	o := defaultStrokeOptions()
	WithLineWidth(5)(&o)

	if o.lineWidth != 5 {
		t.Errorf("lineWidth = %v, want 5", o.lineWidth)
	}
}

func TestWithMiterLimitForcesEveryAcuteJoinToBevelAtOne(t *testing.T) {
	o := defaultStrokeOptions()
	WithMiterLimit(1)(&o)

	if o.miterLimit != 1 {
		t.Errorf("miterLimit = %v, want 1", o.miterLimit)
	}
}

func TestWithDashesSetsPatternAndOffset(t *testing.T) {
	o := defaultStrokeOptions()
	dashes := []float64{4, 4}
	WithDashes(dashes, 2)(&o)

	if len(o.dashes) != 2 || o.dashes[0] != 4 || o.dashes[1] != 4 {
		t.Errorf("dashes = %v, want [4 4]", o.dashes)
	}
	if o.dashOffset != 2 {
		t.Errorf("dashOffset = %v, want 2", o.dashOffset)
	}
}

func TestWithTransformationOverridesIdentity(t *testing.T) {
	o := defaultStrokeOptions()
	m := Matrix{A: 2, B: 0, C: 0, D: 0, E: 2, F: 0}
	WithTransformation(m)(&o)

	if o.transformation != m {
		t.Errorf("transformation = %v, want %v", o.transformation, m)
	}
}

func TestWithHairlineEnablesFlag(t *testing.T) {
	o := defaultStrokeOptions()
	WithHairline(true)(&o)

	if !o.hairline {
		t.Error("hairline = false, want true after WithHairline(true)")
	}
}

func TestWithStrokeStyleCopiesPresetFields(t *testing.T) {
	o := defaultStrokeOptions()
	style := RoundStroke().WithWidth(6).WithDashPattern(3, 1)
	WithStrokeStyle(style)(&o)

	if o.lineWidth != 6 {
		t.Errorf("lineWidth = %v, want 6", o.lineWidth)
	}
	if o.lineCap != LineCapRound || o.lineJoin != LineJoinRound {
		t.Errorf("cap/join = %v/%v, want round/round", o.lineCap, o.lineJoin)
	}
	if len(o.dashes) != 2 || o.dashes[0] != 3 || o.dashes[1] != 1 {
		t.Errorf("dashes = %v, want [3 1]", o.dashes)
	}
}

func TestStrokeFillSubOptionsApply(t *testing.T) {
	o := defaultStrokeOptions()
	WithStrokeAntiAliasingMode(AntiAliasingSupersample4x)(&o)
	WithStrokeOperator(blend.BlendScreen)(&o)
	WithStrokePrecision(blend.PrecisionFloat)(&o)
	WithStrokeTolerance(0.25)(&o)

	if o.fill.antiAliasingMode != AntiAliasingSupersample4x {
		t.Errorf("fill.antiAliasingMode = %v, want AntiAliasingSupersample4x", o.fill.antiAliasingMode)
	}
	if o.fill.operator != blend.BlendScreen {
		t.Errorf("fill.operator = %v, want BlendScreen", o.fill.operator)
	}
	if o.fill.precision != blend.PrecisionFloat {
		t.Errorf("fill.precision = %v, want PrecisionFloat", o.fill.precision)
	}
	if o.fill.tolerance != 0.25 {
		t.Errorf("fill.tolerance = %v, want 0.25", o.fill.tolerance)
	}
}
