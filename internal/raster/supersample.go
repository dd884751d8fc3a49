package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// supersampleFactor is the oversampling factor for AAModeSupersample4x:
// the mask surface is rasterized at 4x the target resolution in each
// axis, then downsampled (spec §4.9.2).
const supersampleFactor = 4

// rasterizeSupersample implements the supersample 4x rasterizer: it
// rasterizes the polygon, aliased, into an alpha8 mask surface 4x the
// width and height of the polygon's clamped extents, then downsamples
// the mask with golang.org/x/image/draw's bilinear scaler (the library's
// box-style averaging filter stands in for the per-4x4-block average the
// spec describes) before reporting one coverage value per target pixel.
func rasterizeSupersample(polygon Polygon, fillRule FillRule, x0, y0, x1, y1 int, cb CoverageFunc) {
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	maskRect := image.Rect(0, 0, w*supersampleFactor, h*supersampleFactor)
	mask := image.NewAlpha(maskRect)

	for sy := 0; sy < maskRect.Dy(); sy++ {
		scanY := float64(y0) + (float64(sy)+0.5)/supersampleFactor
		spans := activeSpans(polygon, fillRule, scanY)
		for _, sp := range spans {
			loX := int(math.Round((sp.x0 - float64(x0)) * supersampleFactor))
			hiX := int(math.Round((sp.x1 - float64(x0)) * supersampleFactor))
			if loX < 0 {
				loX = 0
			}
			if hiX > maskRect.Dx() {
				hiX = maskRect.Dx()
			}
			for sx := loX; sx < hiX; sx++ {
				mask.SetAlpha(sx, sy, color.Alpha{A: 255})
			}
		}
	}

	downRect := image.Rect(0, 0, w, h)
	down := image.NewAlpha(downRect)
	draw.BiLinear.Scale(down, downRect, mask, maskRect, draw.Src, nil)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			a := down.AlphaAt(px, py).A
			if a == 0 {
				continue
			}
			cb(x0+px, y0+py, float64(a)/255)
		}
	}
}
