package vecraster

import (
	"math"
	"testing"
)

func TestSlopeBetween(t *testing.T) {
	s := SlopeBetween(Pt(1, 1), Pt(4, 5))
	if s.DX != 3 || s.DY != 4 {
		t.Errorf("SlopeBetween = %+v, want {3 4}", s)
	}
}

func TestSlopeNormalize(t *testing.T) {
	s := Slope{DX: 3, DY: 4}
	length := s.Normalize()
	if length != 5 {
		t.Errorf("length = %v, want 5", length)
	}
	if math.Abs(s.DX*s.DX+s.DY*s.DY-1) > 1e-12 {
		t.Errorf("normalized slope = %+v, want unit length", s)
	}
}

func TestSlopeNormalizeDegenerate(t *testing.T) {
	s := Slope{}
	length := s.Normalize()
	if length != 0 {
		t.Errorf("length = %v, want 0", length)
	}
	if s != (Slope{}) {
		t.Errorf("degenerate slope = %+v, want zero", s)
	}
}

func TestSlopeCompareSign(t *testing.T) {
	right := Slope{DX: 1, DY: 0}
	up := Slope{DX: 0, DY: 1}
	down := Slope{DX: 0, DY: -1}
	colinear := Slope{DX: 2, DY: 0}

	if right.Compare(up) <= 0 {
		t.Error("counter-clockwise turn should be positive")
	}
	if right.Compare(down) >= 0 {
		t.Error("clockwise turn should be negative")
	}
	if right.Compare(colinear) != 0 {
		t.Error("colinear slopes should compare to zero")
	}
}
