package vecraster

import "errors"

// Sentinel errors returned by fill/stroke and their collaborators. Wrap
// these with fmt.Errorf("...: %w", err) when additional context (which
// node, which coordinate) helps a caller diagnose the failure.
var (
	// ErrPathNotClosed is returned when an operation requires a closed
	// subpath (e.g. a fill whose last subpath has no ClosePath) and the
	// path does not supply one.
	ErrPathNotClosed = errors.New("vecraster: path is not closed")

	// ErrInvalidMatrix is returned when a transformation is singular
	// (determinant below the invertibility threshold) and the operation
	// requires mapping device distances back into user space, or vice
	// versa.
	ErrInvalidMatrix = errors.New("vecraster: matrix is not invertible")

	// ErrPixelSourceNotPreMultiplied is returned when a Pattern or
	// Surface advertises straight-alpha pixels where premultiplied alpha
	// is required by the compositor.
	ErrPixelSourceNotPreMultiplied = errors.New("vecraster: pixel source is not premultiplied")

	// ErrInvalidPixelFormat reports a surface pixel format the rasterizer
	// cannot address. No function in this module returns it: Fill and
	// StrokeNodes reject every non-premultiplied format, known or not, with
	// ErrPixelSourceNotPreMultiplied.
	ErrInvalidPixelFormat = errors.New("vecraster: invalid pixel format")

	// ErrInvalidState reports a violated internal sequencing invariant.
	// No function in this module returns it.
	ErrInvalidState = errors.New("vecraster: invalid internal state")
)
