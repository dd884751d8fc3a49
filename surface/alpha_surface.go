// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// AlphaMaskSurface is a standalone 8-bit coverage mask, one byte per
// pixel. No rasterizer in this module renders into it; the supersample
// rasterizer uses its own *image.Alpha mask.
type AlphaMaskSurface struct {
	width  int
	height int
	pix    []byte
}

// NewAlphaMaskSurface creates a zeroed (fully transparent) coverage mask
// of the given dimensions.
func NewAlphaMaskSurface(width, height int) *AlphaMaskSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &AlphaMaskSurface{width: width, height: height, pix: make([]byte, width*height)}
}

// Width returns the mask width in pixels.
func (m *AlphaMaskSurface) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *AlphaMaskSurface) Height() int { return m.height }

// Format reports FormatAlpha8.
func (m *AlphaMaskSurface) Format() Format { return FormatAlpha8 }

// Stride returns a writable view of n coverage bytes starting at (x, y).
func (m *AlphaMaskSurface) Stride(x, y, n int) []byte {
	if y < 0 || y >= m.height || x < 0 || n <= 0 {
		return nil
	}
	if x+n > m.width {
		n = m.width - x
		if n <= 0 {
			return nil
		}
	}
	off := y*m.width + x
	return m.pix[off : off+n]
}

// At returns the coverage value at (x, y), or 0 if out of bounds.
func (m *AlphaMaskSurface) At(x, y int) byte {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

var _ Surface = (*AlphaMaskSurface)(nil)
