// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"sync"
)

// Backend-related errors.
var (
	// ErrInvalidPageSize is returned when a page size is not positive.
	ErrInvalidPageSize = errors.New("gpu: page size must be positive")

	// ErrUnknownPage is returned when a PageID does not refer to a live page.
	ErrUnknownPage = errors.New("gpu: unknown page id")

	// ErrShortPixelBuffer is returned when an upload buffer is smaller
	// than width*height*4 bytes.
	ErrShortPixelBuffer = errors.New("gpu: pixel buffer too short for region")

	// ErrNoDevice is returned when a GPU-backed backend has no device.
	ErrNoDevice = errors.New("gpu: no device provided")
)

// PageID identifies one texture page owned by a Backend.
// The zero value never refers to a live page.
type PageID uint32

// Backend owns fixed-size RGBA8 texture pages.
//
// Pages are created zero-initialized with clamp-to-edge wrapping and
// linear filtering. Upload regions that extend past the page edge are
// clipped, matching the silent out-of-range behavior of GL sub-image
// uploads; the atlas relies on this when its cursor walks off a page.
//
// Backends are not safe for concurrent use. The atlas owns its backend
// exclusively and calls it from a single goroutine.
type Backend interface {
	// Name returns the backend identifier.
	Name() string

	// CreatePage allocates a size x size RGBA page and returns its id.
	CreatePage(size int) (PageID, error)

	// Upload writes a w x h RGBA region at (x, y) into the page.
	// pix must hold at least w*h*4 bytes in row-major RGBA order.
	// Rows and columns outside the page are discarded.
	Upload(id PageID, x, y, w, h int, pix []byte) error

	// DestroyPage releases the page's texture resource.
	// Destroying an unknown or already-destroyed page is a no-op.
	DestroyPage(id PageID)
}

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU pixel-buffer backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the wgpu texture backend.
	BackendWGPU = "wgpu"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// registry holds registered backend factories.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for default backend selection (first usable wins).
	backendPriority = []string{BackendWGPU, BackendSoftware}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend files.
// Registering an existing name replaces the previous factory.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// Get returns a new backend instance by name, or nil if the name is
// not registered.
func Get(name string) Backend {
	registryMu.RLock()
	factory := backends[name]
	registryMu.RUnlock()

	if factory == nil {
		return nil
	}
	return factory()
}

// usabilityChecker is implemented by backends that may be registered
// but unusable (e.g. a GPU backend without a device).
type usabilityChecker interface {
	Usable() bool
}

// Default returns the best usable backend following the priority order.
// A backend implementing usabilityChecker is skipped when Usable()
// reports false. The software backend is always usable, so Default
// never returns nil as long as this package's init functions ran.
func Default() Backend {
	for _, name := range backendPriority {
		b := Get(name)
		if b == nil {
			continue
		}
		if uc, ok := b.(usabilityChecker); ok && !uc.Usable() {
			continue
		}
		return b
	}
	return nil
}
