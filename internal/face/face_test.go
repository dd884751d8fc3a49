package face

import (
	"math"
	"testing"
)

func TestIntersectRightAngle(t *testing.T) {
	// Incoming face along +X ending at (10,-1), outgoing face along +Y
	// starting at (11,0): the miter apex of a 90 degree right turn offset
	// by 1 on the outside should land at the corner (11,-1).
	incoming := Face{P1: Point{X: 10, Y: -1}, Dir: Vec2{X: 1, Y: 0}}
	outgoing := Face{P0: Point{X: 11, Y: 0}, Dir: Vec2{X: 0, Y: 1}}

	apex, ok := incoming.Intersect(outgoing)
	if !ok {
		t.Fatal("expected an intersection for non-parallel faces")
	}
	const eps = 1e-9
	if math.Abs(apex.X-11) > eps || math.Abs(apex.Y-(-1)) > eps {
		t.Errorf("apex = (%v, %v), want (11, -1)", apex.X, apex.Y)
	}
}

func TestIntersectParallelFalls(t *testing.T) {
	incoming := Face{P1: Point{X: 0, Y: 0}, Dir: Vec2{X: 1, Y: 0}}
	outgoing := Face{P0: Point{X: 0, Y: 1}, Dir: Vec2{X: 1, Y: 0}}

	if _, ok := incoming.Intersect(outgoing); ok {
		t.Error("parallel faces should not report an intersection")
	}
}
