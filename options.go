// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"github.com/gogpu/textatlas/atlas"
	"github.com/gogpu/textatlas/font"
	"github.com/gogpu/textatlas/gpu"
)

// config holds construction-time configuration for a Rasterizer.
type config struct {
	pageSize int
	backend  gpu.Backend
	service  font.Service
	kerner   font.Kerner
	fontPath string
}

// defaultConfig returns the default Rasterizer configuration.
func defaultConfig() config {
	return config{
		pageSize: atlas.DefaultPageSize,
	}
}

// Option configures a Rasterizer at construction time.
type Option func(*config)

// WithPageSize sets the atlas page dimension in pixels.
// The default is atlas.DefaultPageSize (1024).
func WithPageSize(size int) Option {
	return func(c *config) { c.pageSize = size }
}

// WithBackend sets the texture page backend.
// The default is gpu.Default(), which picks the best usable registered
// backend (a GPU-backed one when a device is available, otherwise the
// software backend).
func WithBackend(b gpu.Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithFontService replaces the font rasterization service. When set,
// the family and size arguments of New are ignored for rasterization.
// This is the seam used to run the cache against a stub font service.
func WithFontService(s font.Service) Option {
	return func(c *config) { c.service = s }
}

// WithKerner replaces the kerning provider. The default is the font
// service itself when it implements font.Kerner (the x/image source
// does, via the kern table); a HarfBuzz-backed kerner can be plugged
// in here for GPOS kerning.
func WithKerner(k font.Kerner) Option {
	return func(c *config) { c.kerner = k }
}

// WithFontPath loads the font from an explicit file path instead of
// resolving the family name against the system fonts.
func WithFontPath(path string) Option {
	return func(c *config) { c.fontPath = path }
}
