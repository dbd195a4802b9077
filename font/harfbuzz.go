// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	tfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfbuzzKerner derives pairwise kerning from go-text/typesetting's
// HarfBuzz shaper. Unlike the kern-table lookup in Source.Kern, this
// path also honors GPOS pair positioning, which is how most modern
// fonts express kerning.
//
// The kerning value for a pair (a, b) is the difference between a's
// advance when shaped next to b and a's advance shaped alone. Pairs
// the shaper merges into a ligature report no kerning.
//
// HarfbuzzKerner is not safe for concurrent use.
type HarfbuzzKerner struct {
	face   *tfont.Face
	shaper shaping.HarfbuzzShaper
	size   float64

	// solo caches the advance of each rune shaped alone.
	solo map[rune]fixed.Int26_6
}

// NewHarfbuzzKerner parses TTF/OTF data and prepares a kerner at the
// given pixel size. The data is typically Source.Data() so that both
// rasterization and kerning come from the same font file.
func NewHarfbuzzKerner(data []byte, size float64) (*HarfbuzzKerner, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := tfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: harfbuzz kerner: %w", err)
	}

	return &HarfbuzzKerner{
		face: face,
		size: size,
		solo: make(map[rune]fixed.Int26_6),
	}, nil
}

// Kern returns the kerning adjustment between two runes.
func (k *HarfbuzzKerner) Kern(prev, next rune) (dx, dy int) {
	pair := k.shape([]rune{prev, next})
	if len(pair) != 2 {
		// Ligature or contextual substitution; no pairwise kerning.
		return 0, 0
	}

	solo, ok := k.solo[prev]
	if !ok {
		alone := k.shape([]rune{prev})
		if len(alone) != 1 {
			return 0, 0
		}
		solo = alone[0].Advance
		k.solo[prev] = solo
	}

	return (pair[0].Advance - solo).Round(), 0
}

// shape runs the HarfBuzz shaper over a short rune sequence.
func (k *HarfbuzzKerner) shape(runes []rune) []shaping.Glyph {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      k.face,
		Size:      fixed.Int26_6(k.size * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}
	output := k.shaper.Shape(input)
	return output.Glyphs
}

var _ Kerner = (*HarfbuzzKerner)(nil)
