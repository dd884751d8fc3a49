// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the pixel-buffer contract that Fill and Stroke
// paint into, plus a CPU-backed implementation of it.
package surface

import "image/color"

// Format names a surface's pixel layout. Fill and StrokeNodes paint only
// into the premultiplied formats (FormatRGBA8, FormatARGB8) and reject the
// others with ErrPixelSourceNotPreMultiplied; alpha-only formats pack
// multiple samples per byte for the sub-8-bit depths.
type Format uint8

const (
	// FormatRGBA8 is 8 bits per channel, premultiplied alpha, channel order R,G,B,A.
	FormatRGBA8 Format = iota
	// FormatARGB8 is 8 bits per channel, premultiplied alpha, channel order A,R,G,B.
	FormatARGB8
	// FormatRGB8 is 8 bits per channel, no alpha channel (always opaque).
	FormatRGB8
	// FormatAlpha8 is one byte of coverage per pixel.
	FormatAlpha8
	// FormatAlpha4 is one nibble of coverage per pixel, two pixels per byte.
	FormatAlpha4
	// FormatAlpha2 is two bits of coverage per pixel, four pixels per byte.
	FormatAlpha2
	// FormatAlpha1 is one bit of coverage per pixel, eight pixels per byte.
	FormatAlpha1
)

// BitsPerPixel returns the number of bits each pixel occupies in this format.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatRGBA8, FormatARGB8:
		return 32
	case FormatRGB8:
		return 24
	case FormatAlpha8:
		return 8
	case FormatAlpha4:
		return 4
	case FormatAlpha2:
		return 2
	case FormatAlpha1:
		return 1
	default:
		return 0
	}
}

// Premultiplied reports whether this format's color channels carry
// premultiplied alpha. Fill and Stroke reject a pattern/surface pairing
// that disagrees with ErrPixelSourceNotPreMultiplied.
func (f Format) Premultiplied() bool {
	return f == FormatRGBA8 || f == FormatARGB8
}

// Surface is the destination a Fill or Stroke call paints into: a 2D
// pixel buffer addressed by a horizontal run accessor. Implementations
// are not required to be safe for concurrent use; a single fill/stroke
// call holds a surface exclusively for its duration.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the surface's pixel layout.
	Format() Format

	// Stride returns a writable view of n consecutive pixels starting at
	// (x, y), packed according to Format. For sub-8-bit alpha formats the
	// returned slice may span partial leading/trailing bytes; callers must
	// read-modify-write those bytes rather than overwriting them outright.
	Stride(x, y, n int) []byte
}

// Clearable is an optional capability for surfaces that can reset their
// entire contents in one call, rather than through repeated Stride writes.
type Clearable interface {
	Surface

	// Clear overwrites every pixel with c.
	Clear(c color.Color)
}
