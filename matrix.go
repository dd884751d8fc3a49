package vecraster

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// invertibilityThreshold is the minimum |determinant| a matrix must have
// before Invert treats it as singular.
const invertibilityThreshold = 1e-10

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix, or ErrInvalidMatrix if m's
// determinant is below invertibilityThreshold. Callers that need to map
// a device-space tolerance or stroke width back into user space (or vice
// versa) must handle this error rather than silently falling back to the
// identity transform, since that would plot geometry in the wrong space.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < invertibilityThreshold {
		return Matrix{}, ErrInvalidMatrix
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsTranslationOnly is an alias of IsTranslation kept for call sites that
// read more naturally alongside IsScaleOnly.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly returns true if the linear part of m has no rotation or
// shear component (translation is not considered, since it does not
// affect distances).
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest singular value of m's linear part:
// the maximum factor by which m can stretch a unit vector, in any
// direction. Used to convert a user-space flattening tolerance into a
// safe device-space tolerance without computing a full SVD: clamping a
// user-space tolerance by dividing by MaxScaleFactor guarantees the
// resulting device-space error is never larger than requested, even
// under anisotropic scale or shear.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E

	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	maxEigenvalue := (sum + disc) / 2
	if maxEigenvalue < 0 {
		maxEigenvalue = 0
	}
	return math.Sqrt(maxEigenvalue)
}

// UserToDeviceDistance maps a user-space length along the given direction
// into the equivalent device-space length, ignoring translation. Used to
// convert a flattening tolerance or stroke width from user space into the
// device-space units the rasterizer works in.
func (m Matrix) UserToDeviceDistance(dir Point) float64 {
	return m.TransformVector(dir).Length()
}

// DeviceToUserDistance maps a device-space length back into user space by
// inverting m. Returns ErrInvalidMatrix if m is singular.
func (m Matrix) DeviceToUserDistance(dir Point) (float64, error) {
	inv, err := m.Invert()
	if err != nil {
		return 0, err
	}
	return inv.TransformVector(dir).Length(), nil
}
