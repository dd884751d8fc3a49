package vecraster

import (
	"testing"

	"github.com/gogpu/vecraster/internal/blend"
	"github.com/gogpu/vecraster/surface"
)

func solidRed() blend.Pattern {
	return blend.SolidPattern{Color: blend.Pixel{R: 255, G: 0, B: 0, A: 255}}
}

func TestFillRejectsOpenSubpath(t *testing.T) {
	dst := surface.NewImageSurface(8, 8)
	nodes := []PathNode{MoveTo{X: 0, Y: 0}, LineTo{X: 4, Y: 0}, LineTo{X: 4, Y: 4}}

	if err := Fill(dst, solidRed(), nodes); err != ErrPathNotClosed {
		t.Fatalf("Fill() error = %v, want ErrPathNotClosed", err)
	}
}

func TestFillTriangleWritesInteriorPixels(t *testing.T) {
	dst := surface.NewImageSurface(10, 10)
	nodes := []PathNode{
		MoveTo{X: 1, Y: 1},
		LineTo{X: 8, Y: 1},
		LineTo{X: 1, Y: 8},
		ClosePath{},
	}

	if err := Fill(dst, solidRed(), nodes, WithAntiAliasingMode(AntiAliasingNone)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	row := dst.Stride(2, 2, 1)
	if row[3] == 0 {
		t.Errorf("interior pixel (2,2) alpha = 0, want covered")
	}

	row = dst.Stride(9, 9, 1)
	if row[3] != 0 {
		t.Errorf("exterior pixel (9,9) alpha = %d, want 0", row[3])
	}
}

func TestFillAxisAlignedRectangleIsExact(t *testing.T) {
	// Invariant: an axis-aligned integer-coordinate rectangle filled
	// under even-odd with AA disabled produces exactly that rectangle.
	dst := surface.NewImageSurface(10, 10)
	nodes := []PathNode{
		MoveTo{X: 2, Y: 2},
		LineTo{X: 6, Y: 2},
		LineTo{X: 6, Y: 5},
		LineTo{X: 2, Y: 5},
		ClosePath{},
	}

	if err := Fill(dst, solidRed(), nodes, WithAntiAliasingMode(AntiAliasingNone), WithFillRule(FillRuleEvenOdd)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := x >= 2 && x < 6 && y >= 2 && y < 5
			got := dst.Stride(x, y, 1)[3] != 0
			if got != want {
				t.Errorf("pixel (%d,%d) covered = %v, want %v", x, y, got, want)
			}
		}
	}
}

type nonPremultipliedSurface struct{}

func (nonPremultipliedSurface) Width() int               { return 4 }
func (nonPremultipliedSurface) Height() int              { return 4 }
func (nonPremultipliedSurface) Format() surface.Format   { return surface.FormatRGB8 }
func (nonPremultipliedSurface) Stride(x, y, n int) []byte { return nil }

func TestFillRejectsNonPremultipliedSurface(t *testing.T) {
	if err := Fill(nonPremultipliedSurface{}, solidRed(), nil); err != ErrPixelSourceNotPreMultiplied {
		t.Fatalf("Fill() error = %v, want ErrPixelSourceNotPreMultiplied", err)
	}
}
