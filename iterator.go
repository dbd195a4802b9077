// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"unicode/utf8"

	"github.com/gogpu/textatlas/atlas"
)

// StringIterator lazily produces one placement per character of a
// string, in input order, with kerning against the previous character
// already added to each placement's advance.
//
// The iterator is finite and non-restartable: it consumes its input as
// it produces. If a character fails to rasterize, the sequence stops
// early — placements already produced stay valid, nothing after the
// failure point is produced, and the terminating error is available
// from Err. The first character is kerned against the space character.
type StringIterator struct {
	r    *Rasterizer
	text string
	prev rune
	err  error
	done bool
}

// Next returns the next placement. It reports false once the input is
// exhausted or a character failed to rasterize.
func (it *StringIterator) Next() (atlas.Placement, bool) {
	if it.done || len(it.text) == 0 {
		it.done = true
		return atlas.Placement{}, false
	}

	c, size := utf8.DecodeRuneInString(it.text)
	it.text = it.text[size:]

	p, err := it.r.RasterizeChar(c)
	if err != nil {
		it.err = err
		it.done = true
		return atlas.Placement{}, false
	}

	// Kern against the previous character.
	dx, dy := it.r.kern(it.prev, c)
	p.AdvanceX += dx
	p.AdvanceY += dy
	it.prev = c

	return p, true
}

// Err returns the error that terminated the sequence early, or nil if
// the sequence is still running or ended by exhausting its input.
func (it *StringIterator) Err() error { return it.err }
