// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Source is the default Service implementation, built on
// golang.org/x/image's sfnt parser and opentype rasterizer.
//
// A Source is bound to one font at one pixel size. It also implements
// Kerner using the font's kern table.
//
// Source is not safe for concurrent use (the underlying opentype face
// and sfnt buffer are stateful).
type Source struct {
	font *sfnt.Font
	face xfont.Face
	data []byte
	size float64
	buf  sfnt.Buffer
}

// Load locates a font by family name on the system and opens it at the
// given pixel size. The family may also be a direct path to a .ttf or
// .otf file.
func Load(family string, size float64) (*Source, error) {
	path, err := resolveFontPath(family)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, size)
}

// LoadFile opens a font file at the given pixel size.
func LoadFile(path string, size float64) (*Source, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data, size)
}

// NewSource creates a Source from raw TTF/OTF data.
// The data slice is retained; callers must not modify it.
func NewSource(data []byte, size float64) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}

	return &Source{
		font: f,
		face: face,
		data: data,
		size: size,
	}, nil
}

// resolveFontPath maps a family name to a font file path.
func resolveFontPath(family string) (string, error) {
	// Direct file path.
	if strings.HasSuffix(family, ".ttf") || strings.HasSuffix(family, ".otf") {
		if _, err := os.Stat(family); err == nil {
			return family, nil
		}
	}

	// System font lookup by name, with and without spaces.
	candidates := []string{
		family,
		family + ".ttf",
		strings.ReplaceAll(family, " ", "") + ".ttf",
		strings.ReplaceAll(family, " ", "") + ".otf",
	}
	for _, c := range candidates {
		if path, err := findfont.Find(c); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrFontNotFound, family)
}

// Rasterize renders the glyph for r as a 3-channel coverage bitmap.
func (s *Source) Rasterize(r rune) (*Glyph, error) {
	gi, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMissingGlyph, r, err)
	}
	if gi == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}

	dr, mask, maskp, advance, ok := s.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}

	w, h := dr.Dx(), dr.Dy()
	return &Glyph{
		Bitmap: Bitmap{
			Format: FormatRGB,
			Pix:    coverageToRGB(mask, maskp, w, h),
		},
		Width:    w,
		Height:   h,
		Top:      -dr.Min.Y,
		Left:     dr.Min.X,
		AdvanceX: advance.Round(),
	}, nil
}

// Kern returns the kerning adjustment between two runes from the
// font's kern table. Pairs without kerning data return (0, 0).
func (s *Source) Kern(prev, next rune) (dx, dy int) {
	a, err := s.font.GlyphIndex(&s.buf, prev)
	if err != nil || a == 0 {
		return 0, 0
	}
	b, err := s.font.GlyphIndex(&s.buf, next)
	if err != nil || b == 0 {
		return 0, 0
	}

	ppem := fixed.Int26_6(s.size * 64)
	kern, err := s.font.Kern(&s.buf, a, b, ppem, xfont.HintingNone)
	if err != nil {
		return 0, 0
	}
	return kern.Round(), 0
}

// Metrics returns the font metrics at the source's size.
func (s *Source) Metrics() (Metrics, error) {
	m := s.face.Metrics()

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	height := fixedToFloat(m.Height)

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   height - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}, nil
}

// Size returns the pixel size the source was opened at.
func (s *Source) Size() float64 { return s.size }

// Data returns the raw font file data, e.g. for feeding a
// HarfbuzzKerner built on the same font.
func (s *Source) Data() []byte { return s.data }

// Close releases the rasterizer face.
func (s *Source) Close() error {
	return s.face.Close()
}

// coverageToRGB converts a glyph mask into 3-channel coverage data,
// replicating the coverage value into each channel.
func coverageToRGB(mask image.Image, maskp image.Point, w, h int) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}

	alpha, ok := mask.(*image.Alpha)
	if !ok {
		// Generic fallback for mask implementations other than
		// *image.Alpha.
		converted := image.NewAlpha(image.Rect(0, 0, w, h))
		draw.Draw(converted, converted.Bounds(), mask, maskp, draw.Src)
		alpha = converted
		maskp = image.Point{}
	}

	pix := make([]byte, w*h*3)
	for y := range h {
		for x := range w {
			cov := alpha.AlphaAt(maskp.X+x, maskp.Y+y).A
			off := (y*w + x) * 3
			pix[off] = cov
			pix[off+1] = cov
			pix[off+2] = cov
		}
	}
	return pix
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// Source implements both halves of the font contract.
var (
	_ Service = (*Source)(nil)
	_ Kerner  = (*Source)(nil)
)
