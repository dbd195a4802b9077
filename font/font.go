// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package font defines the rasterization service the atlas cache
// consumes, together with its default implementation on top of
// golang.org/x/image/font and an optional HarfBuzz-backed kerner.
//
// The rasterizer core treats this package as an opaque collaborator:
// given a rune it wants a bitmap plus metrics, given a rune pair it
// wants a kerning adjustment, and that is the whole contract.
package font

import "errors"

// Font service errors.
var (
	// ErrFontNotFound is returned when no font file matches the
	// requested family name.
	ErrFontNotFound = errors.New("font: font not found")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrMissingGlyph is returned when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("font: missing glyph")
)

// Format describes the channel layout of a glyph bitmap.
type Format uint8

const (
	// FormatRGB is 3-channel coverage data, one byte per channel.
	// Regular text glyphs use this format.
	FormatRGB Format = iota

	// FormatRGBA is 4-channel color data. Color glyphs (emoji,
	// bitmap strikes) use this format.
	FormatRGBA
)

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f Format) BytesPerPixel() int {
	if f == FormatRGBA {
		return 4
	}
	return 3
}

// Bitmap is raw glyph pixel data in one of the two supported formats.
type Bitmap struct {
	// Format is the channel layout of Pix.
	Format Format

	// Pix holds Width*Height*BytesPerPixel bytes in row-major order.
	Pix []byte
}

// Glyph is one rasterized glyph with its metrics.
type Glyph struct {
	// Bitmap is the rendered coverage or color data.
	Bitmap Bitmap

	// Width and Height are the bitmap dimensions in pixels.
	// Both are zero for whitespace glyphs.
	Width, Height int

	// Top is the distance from the baseline to the bitmap's top edge.
	Top int

	// Left is the distance from the origin to the bitmap's left edge.
	Left int

	// AdvanceX and AdvanceY are the pen advance in pixels.
	AdvanceX, AdvanceY int
}

// Metrics holds font-wide metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, stored as a positive value.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the recommended vertical distance between
// baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Service rasterizes glyphs for a single font at a single size.
//
// Implementations are not required to be safe for concurrent use; the
// rasterizer owns its service exclusively.
type Service interface {
	// Rasterize renders the glyph for r.
	// Returns an error wrapping ErrMissingGlyph if the font cannot
	// produce the rune.
	Rasterize(r rune) (*Glyph, error)

	// Metrics returns the font metrics at the service's size.
	Metrics() (Metrics, error)
}

// Kerner reports the pairwise advance adjustment between two adjacent
// runes, in pixels. Pairs without kerning data return (0, 0).
type Kerner interface {
	Kern(prev, next rune) (dx, dy int)
}
