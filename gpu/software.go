// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"image"
)

// softPage is one CPU-resident texture page.
type softPage struct {
	size int
	pix  []byte // size*size*4 bytes, row-major RGBA
}

// SoftwareBackend keeps texture pages as CPU pixel buffers.
//
// It implements the exact upload semantics the atlas expects (clipped
// sub-region writes, zero-initialized pages) without any GPU, which
// makes it the backend of choice for tests and for tooling that dumps
// atlas pages to image files.
type SoftwareBackend struct {
	pages  map[PageID]*softPage
	nextID PageID
}

func init() {
	Register(BackendSoftware, func() Backend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates an empty software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{
		pages: make(map[PageID]*softPage),
	}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return BackendSoftware }

// CreatePage allocates a zero-initialized size x size RGBA page.
func (b *SoftwareBackend) CreatePage(size int) (PageID, error) {
	if size <= 0 {
		return 0, ErrInvalidPageSize
	}

	b.nextID++
	id := b.nextID
	b.pages[id] = &softPage{
		size: size,
		pix:  make([]byte, size*size*4),
	}

	slogger().Debug("software page created", "page", id, "size", size)
	return id, nil
}

// Upload writes a w x h RGBA region at (x, y) into the page, clipping
// any part of the region that falls outside the page.
func (b *SoftwareBackend) Upload(id PageID, x, y, w, h int, pix []byte) error {
	page, ok := b.pages[id]
	if !ok {
		return ErrUnknownPage
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(pix) < w*h*4 {
		return ErrShortPixelBuffer
	}

	for row := range h {
		dy := y + row
		if dy < 0 || dy >= page.size {
			continue
		}
		for col := range w {
			dx := x + col
			if dx < 0 || dx >= page.size {
				continue
			}
			src := (row*w + col) * 4
			dst := (dy*page.size + dx) * 4
			copy(page.pix[dst:dst+4], pix[src:src+4])
		}
	}
	return nil
}

// DestroyPage releases the page's pixel buffer.
func (b *SoftwareBackend) DestroyPage(id PageID) {
	if _, ok := b.pages[id]; !ok {
		return
	}
	delete(b.pages, id)
	slogger().Debug("software page destroyed", "page", id)
}

// PageCount returns the number of live pages.
func (b *SoftwareBackend) PageCount() int { return len(b.pages) }

// PagePixels returns the raw RGBA pixels and edge size of a page.
// The returned slice aliases the live page; callers must not hold it
// across DestroyPage. Returns false for an unknown page.
func (b *SoftwareBackend) PagePixels(id PageID) (pix []byte, size int, ok bool) {
	page, found := b.pages[id]
	if !found {
		return nil, 0, false
	}
	return page.pix, page.size, true
}

// PageImage returns a copy of the page as an *image.RGBA.
// Returns nil for an unknown page.
func (b *SoftwareBackend) PageImage(id PageID) *image.RGBA {
	page, ok := b.pages[id]
	if !ok {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, page.size, page.size))
	copy(img.Pix, page.pix)
	return img
}
