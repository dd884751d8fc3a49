package stroke

import "github.com/gogpu/vecraster/internal/dash"

// ApplyDashes walks a path already reduced to MoveTo/LineTo segments
// (curves must be flattened first) and returns a new path containing
// only the "on" sub-segments reported by the dasher, each as its own
// MoveTo/LineTo pair. A zero-length on-span (from a {0, r}-style pattern
// entry) becomes a MoveTo/LineTo pair with identical endpoints, which
// the stroke expander turns into a dot when the active cap is round or
// square.
//
// elements must not contain QuadTo/CubicTo; flatten the path before
// calling ApplyDashes.
func ApplyDashes(elements []PathElement, dasher *dash.Dasher) []PathElement {
	var out []PathElement
	var current Point

	emit := func(spans []dashSpan) {
		for _, s := range spans {
			out = append(out, MoveTo{Point: s.p0}, LineTo{Point: s.p1})
		}
	}

	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			current = e.Point
		case LineTo:
			spans := dashSegment(current, e.Point, dasher)
			emit(spans)
			current = e.Point
		case Close:
			// Close is resolved to an explicit LineTo by the caller's
			// flattening step before dashing; nothing to do here.
		}
	}
	return out
}

type dashSpan struct {
	p0, p1 Point
}

// dashSegment steps the dasher across one straight segment and returns
// the on-intervals as endpoint pairs along that segment.
func dashSegment(p0, p1 Point, dasher *dash.Dasher) []dashSpan {
	length := p0.Distance(p1)
	if length == 0 {
		return nil
	}

	spans := dasher.Step(length)
	if len(spans) == 0 {
		return nil
	}

	dir := p1.Sub(p0)
	out := make([]dashSpan, len(spans))
	for i, s := range spans {
		out[i] = dashSpan{
			p0: p0.Add(dir.Scale(s.Start / length)),
			p1: p0.Add(dir.Scale(s.End / length)),
		}
	}
	return out
}
