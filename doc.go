// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textatlas caches rasterized text glyphs and vector icons in
// a set of fixed-size GPU texture pages.
//
// # Overview
//
// A Rasterizer owns a shelf-packing texture atlas and a symbol cache
// keyed by character or icon id. Each distinct symbol is rasterized
// and uploaded at most once for the lifetime of the atlas; repeated
// lookups return the cached placement (page id plus UV rectangle and
// pixel metrics) without touching the font or the GPU again.
//
// # Quick Start
//
//	ra, err := textatlas.New("DejaVu Sans", 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ra.Close()
//
//	it := ra.RasterizeString("Hello, kerning!")
//	for p, ok := it.Next(); ok; p, ok = it.Next() {
//	    // p.Page, p.UVLeft/UVBot/UVWidth/UVHeight, p.AdvanceX ...
//	}
//
// # Architecture
//
//   - atlas: shelf packer over fixed-size texture pages
//   - gpu: texture page backends (software, wgpu)
//   - font: font rasterization service and kerning providers
//   - icon: built-in vector icons and their renderer
//
// # Concurrency
//
// A Rasterizer and everything it owns are single-threaded by contract:
// all operations run to completion on the calling goroutine and no
// internal locking is performed. Create one Rasterizer per goroutine
// if needed.
//
// # Lifetime
//
// Placements reference their texture page by id only. Closing the
// Rasterizer destroys every page, which invalidates all placements it
// ever returned.
package textatlas
