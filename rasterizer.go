// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"fmt"
	"io"

	"github.com/gogpu/textatlas/atlas"
	"github.com/gogpu/textatlas/font"
	"github.com/gogpu/textatlas/gpu"
	"github.com/gogpu/textatlas/icon"
)

// Rasterizer caches rasterized symbols in a texture atlas.
//
// The cache is content-addressed by Key and grows monotonically: each
// distinct symbol is rasterized, packed and uploaded at most once for
// the lifetime of the Rasterizer. There is no eviction.
//
// Rasterizer is not safe for concurrent use. It owns its atlas, page
// backend and font service exclusively and must be driven from a
// single goroutine; for GPU-backed page backends that goroutine must
// be the one holding the device.
type Rasterizer struct {
	service font.Service
	kerner  font.Kerner

	atlas *atlas.Atlas
	cache map[Key]atlas.Placement
}

// New creates a Rasterizer for the given font family at the given
// pixel size, with one atlas page pre-allocated.
//
// The family name is resolved against the system fonts unless
// WithFontPath or WithFontService is given.
func New(family string, size float64, opts ...Option) (*Rasterizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	service := cfg.service
	if service == nil {
		var src *font.Source
		var err error
		if cfg.fontPath != "" {
			src, err = font.LoadFile(cfg.fontPath, size)
		} else {
			src, err = font.Load(family, size)
		}
		if err != nil {
			return nil, fmt.Errorf("textatlas: %w", err)
		}
		service = src
	}

	kerner := cfg.kerner
	if kerner == nil {
		// The default x/image source kerns via its kern table.
		if k, ok := service.(font.Kerner); ok {
			kerner = k
		}
	}

	backend := cfg.backend
	if backend == nil {
		backend = gpu.Default()
	}

	a, err := atlas.New(backend, atlas.Config{PageSize: cfg.pageSize})
	if err != nil {
		if closer, ok := service.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("textatlas: %w", err)
	}

	return &Rasterizer{
		service: service,
		kerner:  kerner,
		atlas:   a,
		cache:   make(map[Key]atlas.Placement),
	}, nil
}

// RasterizeChar returns the atlas placement for a character,
// rasterizing and packing it on first use.
func (r *Rasterizer) RasterizeChar(c rune) (atlas.Placement, error) {
	key := CharKey(c)
	if p, ok := r.cache[key]; ok {
		return p, nil
	}

	glyph, err := r.service.Rasterize(c)
	if err != nil {
		return atlas.Placement{}, fmt.Errorf("textatlas: %w", err)
	}

	p, err := r.atlas.Insert(glyphEntry(glyph))
	if err != nil {
		return atlas.Placement{}, err
	}

	Logger().Debug("glyph cached", "key", key, "page", p.Page)
	r.cache[key] = p
	return p, nil
}

// RasterizeIcon returns the atlas placement for a built-in icon,
// rendering and packing it on first use. Render failures are returned
// to the caller and never cached.
func (r *Rasterizer) RasterizeIcon(id icon.ID) (atlas.Placement, error) {
	key := IconKey(id)
	if p, ok := r.cache[key]; ok {
		return p, nil
	}

	width, height := id.Size()
	pix, err := icon.Render(id, width, height)
	if err != nil {
		return atlas.Placement{}, fmt.Errorf("textatlas: %w", err)
	}

	p, err := r.atlas.Insert(atlas.Entry{
		Pix:        pix,
		Width:      width,
		Height:     height,
		AdvanceX:   width,
		Multicolor: true,
	})
	if err != nil {
		return atlas.Placement{}, err
	}

	Logger().Debug("icon cached", "key", key, "page", p.Page)
	r.cache[key] = p
	return p, nil
}

// RasterizeString returns a lazy iterator over the string's glyph
// placements with kerning applied to each advance. See StringIterator
// for the truncation contract.
func (r *Rasterizer) RasterizeString(text string) *StringIterator {
	return &StringIterator{
		r:    r,
		text: text,
		prev: ' ',
	}
}

// Metrics returns the font metrics at the Rasterizer's size.
func (r *Rasterizer) Metrics() (font.Metrics, error) {
	return r.service.Metrics()
}

// CacheLen returns the number of cached symbols.
func (r *Rasterizer) CacheLen() int { return len(r.cache) }

// Atlas exposes the underlying atlas for page introspection
// (Pages, Utilization). Callers must not Close it directly.
func (r *Rasterizer) Atlas() *atlas.Atlas { return r.atlas }

// Close destroys every atlas page and releases the font service.
// All placements returned by this Rasterizer are invalid afterwards.
// Close is idempotent.
func (r *Rasterizer) Close() {
	r.atlas.Close()
	if closer, ok := r.service.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			Logger().Warn("font service close failed", "error", err)
		}
		// Only close once.
		r.service = noService{}
	}
}

// kern returns the kerning adjustment between two runes, or zero when
// no kerner is configured.
func (r *Rasterizer) kern(prev, next rune) (dx, dy int) {
	if r.kerner == nil {
		return 0, 0
	}
	return r.kerner.Kern(prev, next)
}

// glyphEntry normalizes a rasterized glyph into an atlas entry,
// expanding 3-channel coverage to RGBA.
func glyphEntry(g *font.Glyph) atlas.Entry {
	var pix []byte
	multicolor := false

	switch g.Bitmap.Format {
	case font.FormatRGBA:
		pix = g.Bitmap.Pix
		multicolor = true
	default:
		pix = rgbToRGBA(g.Bitmap.Pix)
	}

	return atlas.Entry{
		Pix:        pix,
		Width:      g.Width,
		Height:     g.Height,
		Top:        g.Top,
		Left:       g.Left,
		AdvanceX:   g.AdvanceX,
		AdvanceY:   g.AdvanceY,
		Multicolor: multicolor,
	}
}

// rgbToRGBA expands 3-channel pixel data to 4 channels, preserving the
// RGB byte order and forcing alpha to 255. This is only valid for
// non-premultiplied opaque sources, which is what the font service
// produces for coverage glyphs.
func rgbToRGBA(rgb []byte) []byte {
	pixels := len(rgb) / 3
	rgba := make([]byte, pixels*4)
	for i := range pixels {
		copy(rgba[i*4:], rgb[i*3:i*3+3])
		rgba[i*4+3] = 255
	}
	return rgba
}

// noService replaces a closed font service so that a use-after-Close
// fails with a clear error instead of hitting a closed face.
type noService struct{}

func (noService) Rasterize(rune) (*font.Glyph, error) {
	return nil, fmt.Errorf("textatlas: rasterizer is closed")
}

func (noService) Metrics() (font.Metrics, error) {
	return font.Metrics{}, fmt.Errorf("textatlas: rasterizer is closed")
}
