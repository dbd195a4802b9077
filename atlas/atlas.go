// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas implements a shelf-packing texture atlas over a set of
// fixed-size GPU texture pages.
//
// The packing strategy fills a page left-to-right within the current
// row, starts a new row below once an entry no longer fits, and
// allocates a fresh page once the rows no longer fit:
//
//	                      (size, size)
//	┌─────┬─────┬─────┬─────┬─────┐
//	│ 10  │     │     │     │     │ <- Page is full when the next
//	│     │     │     │     │     │    entry's height doesn't fit.
//	├─────┼─────┼─────┼─────┼─────┤
//	│ 5   │ 6   │ 7   │ 8   │ 9   │
//	│     │     │     │     │     │
//	├─────┼─────┼─────┼───┬─┴─────┤ <- Row height is the tallest entry
//	│ 1   │ 2   │ 3   │ 4 │       │    in the row; it is the baseline
//	│     │     │     │   │       │    for the next row.
//	└─────┴─────┴─────┴───┴───────┘
//	(0, 0)
//
// The atlas only ever grows: there is no eviction, no repacking and no
// reclamation of space from entries that are no longer needed. Once the
// write cursor has walked past the page edge, Insert fails with
// ErrAtlasFull and the atlas stays full for its remaining lifetime.
package atlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/textatlas/gpu"
)

// Atlas-related errors.
var (
	// ErrAtlasFull is returned when the write cursor has walked past
	// the page bounds and no further entries can be placed.
	ErrAtlasFull = errors.New("atlas: atlas is full")

	// ErrAtlasClosed is returned when inserting into a closed atlas.
	ErrAtlasClosed = errors.New("atlas: atlas is closed")

	// ErrInvalidEntry is returned when an entry has negative
	// dimensions or a pixel buffer that doesn't match them.
	ErrInvalidEntry = errors.New("atlas: invalid entry")
)

// Page size limits.
const (
	// DefaultPageSize is the default page dimension (1024x1024).
	DefaultPageSize = 1024

	// MinPageSize is the minimum page dimension.
	MinPageSize = 16
)

// Entry is the normalized input to packing: a bitmap plus the metrics
// that travel with it into the resulting Placement.
//
// Entries are transient. The atlas copies nothing; it uploads Pix and
// copies the scalar fields, after which the entry can be discarded.
type Entry struct {
	// Pix holds Width*Height*4 bytes of row-major RGBA pixels.
	Pix []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// Top and Left are the glyph bearings relative to the baseline
	// origin. Zero for icons.
	Top, Left int

	// AdvanceX and AdvanceY are the advance vector in pixels.
	AdvanceX, AdvanceY int

	// Multicolor marks color sources (icons, emoji) as opposed to
	// single-channel coverage glyphs.
	Multicolor bool
}

// valid reports whether the entry's buffer matches its dimensions.
// Zero-area entries (whitespace glyphs) are valid.
func (e *Entry) valid() bool {
	return e.Width >= 0 && e.Height >= 0 && len(e.Pix) >= e.Width*e.Height*4
}

// Placement describes where an entry landed inside the atlas.
//
// It references its page by id only; the atlas and its backend own the
// texture. Placements are freely copyable values but must not outlive
// the atlas that produced them.
type Placement struct {
	// Page identifies the texture page holding the entry.
	Page gpu.PageID

	// UVBot, UVLeft, UVWidth, UVHeight define the normalized UV
	// rectangle of the entry within the page, each in [0, 1].
	UVBot, UVLeft, UVWidth, UVHeight float32

	// Width and Height are the entry dimensions in pixels.
	Width, Height int

	// Top and Left are the bearings copied from the entry.
	Top, Left int

	// AdvanceX and AdvanceY are the advance vector copied from the
	// entry. String shaping adds kerning on top of AdvanceX/AdvanceY.
	AdvanceX, AdvanceY int

	// Multicolor is copied from the entry.
	Multicolor bool
}

// Config holds configuration for creating an Atlas.
type Config struct {
	// PageSize is the page dimension in pixels.
	// Defaults to DefaultPageSize.
	PageSize int
}

// Atlas packs entries into fixed-size texture pages.
//
// Atlas is not safe for concurrent use; it is owned exclusively by one
// rasterizer and called from a single goroutine.
type Atlas struct {
	backend  gpu.Backend
	pageSize int

	// pages is append-only; the active page is always the last one.
	pages []gpu.PageID

	// Write cursor within the active page.
	cursorX   int
	cursorY   int
	rowHeight int

	// usedArea tracks placed pixels across all pages.
	usedArea int

	closed bool
}

// New creates an atlas with one pre-allocated page.
func New(backend gpu.Backend, config Config) (*Atlas, error) {
	pageSize := config.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}

	a := &Atlas{
		backend:  backend,
		pageSize: pageSize,
	}
	if err := a.addPage(); err != nil {
		return nil, fmt.Errorf("atlas: failed to create initial page: %w", err)
	}
	return a, nil
}

// Insert packs an entry, uploads its pixels to the active page and
// returns the resulting placement.
//
// Entries wider or taller than the page size can never be placed
// properly; they are not detected up front and will exhaust the atlas
// once the cursor math pushes past the page bounds.
func (a *Atlas) Insert(e Entry) (Placement, error) {
	if a.closed {
		return Placement{}, ErrAtlasClosed
	}
	if !e.valid() {
		return Placement{}, fmt.Errorf("%w: %dx%d with %d pixel bytes",
			ErrInvalidEntry, e.Width, e.Height, len(e.Pix))
	}

	// Fail once the cursor has walked past the page bounds. This is a
	// hard cap: no further pages are created after this point.
	if a.cursorX > a.pageSize || a.cursorY > a.pageSize {
		return Placement{}, ErrAtlasFull
	}

	// Start a new row if the entry doesn't fit into the current one.
	if a.cursorX+e.Width > a.pageSize {
		a.cursorY += a.rowHeight
		a.rowHeight = 0
		a.cursorX = 0
		slogger().Debug("atlas row wrap", "cursorY", a.cursorY)
	}

	// Allocate a new page if the remaining height is too small. The
	// row wrap above must run first: a wrapped row may fit a fresh
	// page even though it didn't fit the old one.
	if a.cursorY+e.Height > a.pageSize {
		if err := a.addPage(); err != nil {
			return Placement{}, fmt.Errorf("atlas: failed to grow: %w", err)
		}
		a.rowHeight = 0
		a.cursorX = 0
		a.cursorY = 0
	}

	// Upload to the active (last) page.
	page := a.pages[len(a.pages)-1]
	if e.Width > 0 && e.Height > 0 {
		if err := a.backend.Upload(page, a.cursorX, a.cursorY, e.Width, e.Height, e.Pix); err != nil {
			return Placement{}, fmt.Errorf("atlas: upload failed: %w", err)
		}
	}

	size := float32(a.pageSize)
	p := Placement{
		Page:       page,
		UVBot:      float32(a.cursorY) / size,
		UVLeft:     float32(a.cursorX) / size,
		UVWidth:    float32(e.Width) / size,
		UVHeight:   float32(e.Height) / size,
		Width:      e.Width,
		Height:     e.Height,
		Top:        e.Top,
		Left:       e.Left,
		AdvanceX:   e.AdvanceX,
		AdvanceY:   e.AdvanceY,
		Multicolor: e.Multicolor,
	}

	// Advance the write cursor.
	a.rowHeight = max(a.rowHeight, e.Height)
	a.cursorX += e.Width
	a.usedArea += e.Width * e.Height

	return p, nil
}

// addPage appends a fresh page and makes it the active one.
func (a *Atlas) addPage() error {
	id, err := a.backend.CreatePage(a.pageSize)
	if err != nil {
		return err
	}
	a.pages = append(a.pages, id)
	slogger().Debug("atlas page allocated", "page", id, "pages", len(a.pages))
	return nil
}

// PageSize returns the page dimension in pixels.
func (a *Atlas) PageSize() int { return a.pageSize }

// Pages returns the ids of all pages in allocation order.
// The returned slice is a copy.
func (a *Atlas) Pages() []gpu.PageID {
	pages := make([]gpu.PageID, len(a.pages))
	copy(pages, a.pages)
	return pages
}

// Utilization returns the fraction of total page area covered by
// placed entries, in [0, 1].
func (a *Atlas) Utilization() float64 {
	total := len(a.pages) * a.pageSize * a.pageSize
	if total == 0 {
		return 0
	}
	return float64(a.usedArea) / float64(total)
}

// Close destroys every page texture. All placements produced by this
// atlas are invalid afterwards. Close is idempotent.
func (a *Atlas) Close() {
	if a.closed {
		return
	}
	for _, id := range a.pages {
		a.backend.DestroyPage(id)
	}
	a.pages = nil
	a.closed = true
}
