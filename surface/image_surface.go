// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// ImageSurface is a CPU-backed, premultiplied RGBA8 pixel buffer.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	s.Clear(color.White)
//	// ... vecraster.Fill(s, pattern, nodes) ...
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	pix    []byte // 4 bytes per pixel, premultiplied RGBA8, row-major
}

// NewImageSurface creates a new premultiplied RGBA8 surface of the given
// dimensions, initialized to transparent black.
func NewImageSurface(width, height int) *ImageSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ImageSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// NewImageSurfaceFromImage creates a surface whose initial contents are
// img, converted to premultiplied alpha.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	s := NewImageSurface(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*width + x) * 4
			s.pix[off+0] = premultiplyChannel(r, a)
			s.pix[off+1] = premultiplyChannel(g, a)
			s.pix[off+2] = premultiplyChannel(b, a)
			s.pix[off+3] = byte(a >> 8)
		}
	}
	return s
}

// premultiplyChannel reduces a 16-bit channel from color.Color.RGBA, which
// is already alpha-premultiplied, to 8 bits.
func premultiplyChannel(c, a uint32) byte {
	if a == 0 {
		return 0
	}
	return byte(c >> 8)
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int { return s.height }

// Format reports FormatRGBA8: premultiplied, 8 bits per channel.
func (s *ImageSurface) Format() Format { return FormatRGBA8 }

// Stride returns a writable view of n pixels (4 bytes each) starting at
// (x, y). The returned slice aliases the surface's backing storage; it
// is only valid until the next call that resizes the surface.
func (s *ImageSurface) Stride(x, y, n int) []byte {
	if y < 0 || y >= s.height || x < 0 || n <= 0 {
		return nil
	}
	if x+n > s.width {
		n = s.width - x
		if n <= 0 {
			return nil
		}
	}
	off := (y*s.width + x) * 4
	return s.pix[off : off+n*4]
}

// Clear overwrites every pixel with c, premultiplying as it writes.
func (s *ImageSurface) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	pr, pg, pb, pa := premultiplyChannel(r, a), premultiplyChannel(g, a), premultiplyChannel(b, a), byte(a>>8)
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = pr
		s.pix[i+1] = pg
		s.pix[i+2] = pb
		s.pix[i+3] = pa
	}
}

// Snapshot returns a copy of the surface contents as a straight-alpha
// *image.RGBA.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i := 0; i < len(s.pix); i += 4 {
		r, g, b, a := s.pix[i+0], s.pix[i+1], s.pix[i+2], s.pix[i+3]
		if a != 0 && a != 0xff {
			r = unpremultiplyChannel(r, a)
			g = unpremultiplyChannel(g, a)
			b = unpremultiplyChannel(b, a)
		}
		out.Pix[i+0] = r
		out.Pix[i+1] = g
		out.Pix[i+2] = b
		out.Pix[i+3] = a
	}
	return out
}

func unpremultiplyChannel(c, a byte) byte {
	return byte((uint32(c) * 0xff) / uint32(a))
}

var (
	_ Surface   = (*ImageSurface)(nil)
	_ Clearable = (*ImageSurface)(nil)
)
