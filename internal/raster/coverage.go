package raster

import "math"

// AAMode selects how RasterizeCoverage turns polygon geometry into a
// per-pixel coverage fraction.
type AAMode uint8

const (
	// AAModeNone samples each pixel once at its center; coverage is
	// either 0 or 1.
	AAModeNone AAMode = iota
	// AAModeMultisample4x accumulates coverage from a 4x4 grid of
	// sub-samples per pixel (the scale²=16 of invariant 4, with
	// sub_scanlines=4), via a SparseCoverageBuffer per row.
	AAModeMultisample4x
	// AAModeSupersample4x rasterizes into a 4x-oversized alpha8 mask
	// surface and downsamples it to the target resolution.
	AAModeSupersample4x
)

// subSamples4x is the per-axis sample count for AAModeMultisample4x.
const subSamples4x = 4

// CoverageFunc receives one device pixel's coverage fraction in [0, 1].
// It is called only for pixels with non-zero coverage.
type CoverageFunc func(x, y int, coverage float64)

// RasterizeCoverage walks polygon's edges scanline by scanline within
// [0,width) x [0,height) and reports the fractional coverage of every
// touched pixel to cb. Edges are expected to already satisfy y0 < y1
// (NewEdge's invariant); ties between edges at equal x are broken by
// the mid-sample rule, so result order does not need to be stable.
func RasterizeCoverage(width, height int, polygon Polygon, fillRule FillRule, mode AAMode, cb CoverageFunc) {
	bx0, by0, bx1, by1, ok := polygon.InBoxBounds()
	if !ok {
		return
	}
	y0 := max(0, by0)
	y1 := min(height, by1)
	x0 := max(0, bx0)
	x1 := min(width, bx1)
	if y0 >= y1 || x0 >= x1 {
		return
	}

	switch mode {
	case AAModeNone:
		rasterizeAliased(polygon, fillRule, x0, y0, x1, y1, cb)
	case AAModeSupersample4x:
		rasterizeSupersample(polygon, fillRule, x0, y0, x1, y1, cb)
	default:
		rasterizeMultisample(polygon, fillRule, x0, y0, x1, y1, cb)
	}
}

// InBoxBounds is Bounds with the degenerate-polygon ok flag retained for
// callers that need both the rectangle and its validity in one call.
func (p Polygon) InBoxBounds() (xMin, yMin, xMax, yMax int, ok bool) {
	return p.Bounds()
}

func rasterizeAliased(polygon Polygon, fillRule FillRule, x0, y0, x1, y1 int, cb CoverageFunc) {
	row := make([]bool, x1-x0)
	for y := y0; y < y1; y++ {
		scanY := float64(y) + 0.5
		spans := activeSpans(polygon, fillRule, scanY)
		for i := range row {
			row[i] = false
		}
		for _, sp := range spans {
			lo := max(x0, int(math.Floor(sp.x0)))
			hi := min(x1, int(math.Ceil(sp.x1)))
			for x := lo; x < hi; x++ {
				center := float64(x) + 0.5
				if center >= sp.x0 && center < sp.x1 {
					row[x-x0] = true
				}
			}
		}
		for i, covered := range row {
			if covered {
				cb(x0+i, y, 1.0)
			}
		}
	}
}

// rasterizeMultisample implements the multisample 4x rasterizer (spec
// §4.9.3): per destination row, a SparseCoverageBuffer accumulates +1
// coverage per sub-scanline across the sub-pixel horizontal slots a span
// touches. Each device pixel is subdivided into subSamples4x horizontal
// slots so horizontal antialiasing survives the run-length accumulation;
// with subSamples4x vertical sub-scanlines too, a fully-covered pixel
// accumulates subSamples4x*subSamples4x total, matching the "coverage in
// [0, scale²·sub_scanlines]" invariant.
func rasterizeMultisample(polygon Polygon, fillRule FillRule, x0, y0, x1, y1 int, cb CoverageFunc) {
	width := x1 - x0
	buf := NewSparseCoverageBuffer(width * subSamples4x)

	for y := y0; y < y1; y++ {
		buf.Reset()

		for sub := 0; sub < subSamples4x; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/subSamples4x
			spans := activeSpans(polygon, fillRule, scanY)
			for _, sp := range spans {
				addSubPixelSpan(buf, x0, x1, sp)
			}
		}

		maxCoverage := float64(subSamples4x * subSamples4x)
		for px := 0; px < width; px++ {
			total := 0
			for k := 0; k < subSamples4x; k++ {
				c, _ := buf.get(px*subSamples4x + k)
				total += c
			}
			if total == 0 {
				continue
			}
			coverage := float64(total) / maxCoverage
			if coverage > 1 {
				coverage = 1
			}
			cb(x0+px, y, coverage)
		}
	}
}

// addSubPixelSpan converts one sub-scanline's floating-point span into
// the SparseCoverageBuffer's integer sub-pixel slot space (subSamples4x
// slots per device pixel) and records it with a single addSpan call.
func addSubPixelSpan(buf *SparseCoverageBuffer, x0, x1 int, sp span) {
	lo := sp.x0
	hi := sp.x1
	if lo < float64(x0) {
		lo = float64(x0)
	}
	if hi > float64(x1) {
		hi = float64(x1)
	}
	if lo >= hi {
		return
	}

	start := int(math.Round((lo - float64(x0)) * subSamples4x))
	end := int(math.Round((hi - float64(x0)) * subSamples4x))
	buf.addSpan(start, end-start)
}

// span is a half-open interior interval on one scanline.
type span struct {
	x0, x1 float64
}

// activeSpans computes the filled intervals of one scanline using the
// active-edge list and the requested fill rule.
func activeSpans(polygon Polygon, fillRule FillRule, y float64) []span {
	type hit struct {
		x   float64
		dir int
	}
	var hits []hit
	for _, e := range polygon.Edges {
		if e.y0 <= y && y < e.y1 {
			hits = append(hits, hit{x: e.XAtY(y), dir: e.dir})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].x < hits[j-1].x; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	var spans []span
	if fillRule == FillRuleEvenOdd {
		for i := 0; i+1 < len(hits); i += 2 {
			spans = append(spans, span{x0: hits[i].x, x1: hits[i+1].x})
		}
		return spans
	}

	winding := 0
	var startX float64
	for _, h := range hits {
		if winding == 0 {
			startX = h.x
		}
		winding += h.dir
		if winding == 0 {
			spans = append(spans, span{x0: startX, x1: h.x})
		}
	}
	return spans
}
