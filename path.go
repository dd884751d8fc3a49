package vecraster

// PathNode is one instruction of a path handed to Fill or Stroke. The
// node set is intentionally small — MoveTo, LineTo, a cubic Bézier
// CurveTo, and ClosePath — since quadratic curves, arcs, and higher-level
// shape builders are a caller concern, not this pipeline's.
type PathNode interface {
	isPathNode()
}

// MoveTo starts a new subpath at (X, Y) without drawing.
type MoveTo struct {
	X, Y float64
}

func (MoveTo) isPathNode() {}

// LineTo draws a straight edge from the current point to (X, Y).
type LineTo struct {
	X, Y float64
}

func (LineTo) isPathNode() {}

// CurveTo draws a cubic Bézier from the current point through the two
// control points to (X, Y).
type CurveTo struct {
	Control1X, Control1Y float64
	Control2X, Control2Y float64
	X, Y                 float64
}

func (CurveTo) isPathNode() {}

// ClosePath draws a straight edge back to the current subpath's start
// point and marks the subpath closed.
type ClosePath struct{}

func (ClosePath) isPathNode() {}

// NodePoint returns the endpoint of a node, or the zero Point for ClosePath
// (which has no endpoint of its own — callers track the subpath start).
func NodePoint(n PathNode) (Point, bool) {
	switch e := n.(type) {
	case MoveTo:
		return Pt(e.X, e.Y), true
	case LineTo:
		return Pt(e.X, e.Y), true
	case CurveTo:
		return Pt(e.X, e.Y), true
	default:
		return Point{}, false
	}
}
