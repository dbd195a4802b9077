// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// wgpuPage tracks one atlas page as a wgpu texture resource.
type wgpuPage struct {
	size      int
	sizeBytes uint64

	// wgpu resource IDs (zero until wgpu texture creation lands).
	textureID core.TextureID
	viewID    core.TextureViewID
}

// WGPUBackend manages texture pages as wgpu textures.
//
// The backend does not create a GPU device; it receives one from the
// host application through a DeviceHandle, following the gogpu
// convention that the host owns the device and shares it.
//
// Note: texture creation and queue writes are stubs until wgpu texture
// support is complete; the backend tracks logical resources and memory
// so the atlas-facing contract is already exercised.
type WGPUBackend struct {
	device DeviceHandle

	pages  map[PageID]*wgpuPage
	nextID PageID

	// totalBytes tracks GPU memory attributed to live pages.
	totalBytes uint64
}

func init() {
	Register(BackendWGPU, func() Backend {
		return NewWGPUBackend(NullDeviceHandle{})
	})
}

// NewWGPUBackend creates a wgpu page backend using the given device.
// Pass NullDeviceHandle{} for a device-less backend (reports unusable).
func NewWGPUBackend(device DeviceHandle) *WGPUBackend {
	if device == nil {
		device = NullDeviceHandle{}
	}
	return &WGPUBackend{
		device: device,
		pages:  make(map[PageID]*wgpuPage),
	}
}

// Name returns the backend identifier.
func (b *WGPUBackend) Name() string { return BackendWGPU }

// Usable reports whether the backend has a real device to work with.
func (b *WGPUBackend) Usable() bool {
	return b.device.Device() != nil && b.device.Queue() != nil
}

// CreatePage allocates a size x size RGBA8 page texture.
//
// Pages use clamp-to-edge wrapping and linear filtering and start
// zero-initialized, as required by the atlas.
func (b *WGPUBackend) CreatePage(size int) (PageID, error) {
	if size <= 0 {
		return 0, ErrInvalidPageSize
	}
	if !b.Usable() {
		return 0, ErrNoDevice
	}

	// TODO: actual wgpu texture creation when core.CreateTexture is available.
	//
	// desc := &gputypes.TextureDescriptor{
	//     Label: "textatlas page",
	//     Size: gputypes.Extent3D{
	//         Width:              uint32(size),
	//         Height:             uint32(size),
	//         DepthOrArrayLayers: 1,
	//     },
	//     MipLevelCount: 1,
	//     SampleCount:   1,
	//     Dimension:     gputypes.TextureDimension2D,
	//     Format:        gputypes.TextureFormatRGBA8Unorm,
	//     Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	// }
	// textureID, err := core.CreateTexture(b.device.Device(), desc)

	b.nextID++
	id := b.nextID
	page := &wgpuPage{
		size:      size,
		sizeBytes: uint64(size) * uint64(size) * 4,
		// textureID and viewID stay zero until wgpu creation lands.
	}
	b.pages[id] = page
	b.totalBytes += page.sizeBytes

	slogger().Debug("wgpu page created",
		"page", id, "size", size, "bytes", page.sizeBytes,
		"format", gputypes.TextureFormatRGBA8Unorm)
	return id, nil
}

// Upload writes a w x h RGBA region at (x, y) into the page texture.
// Regions extending past the page edge are clipped before the queue
// write, matching GL sub-image semantics.
func (b *WGPUBackend) Upload(id PageID, x, y, w, h int, pix []byte) error {
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

	// Clip to page bounds.
	cw, ch := w, h
	if x+cw > page.size {
		cw = page.size - x
	}
	if y+ch > page.size {
		ch = page.size - y
	}
	if cw <= 0 || ch <= 0 {
		return nil
	}

	// TODO: actual queue write when core.QueueWriteTexture is available.
	//
	// core.QueueWriteTexture(b.device.Queue(), &gputypes.ImageCopyTexture{
	//     Texture:  uintptr(page.textureID.Raw()),
	//     MipLevel: 0,
	//     Origin:   gputypes.Origin3D{X: uint32(x), Y: uint32(y), Z: 0},
	//     Aspect:   gputypes.TextureAspectAll,
	// }, pix, &gputypes.TextureDataLayout{
	//     Offset:       0,
	//     BytesPerRow:  uint32(w * 4),
	//     RowsPerImage: uint32(ch),
	// }, &gputypes.Extent3D{
	//     Width:              uint32(cw),
	//     Height:             uint32(ch),
	//     DepthOrArrayLayers: 1,
	// })

	slogger().Debug("wgpu page upload",
		"page", id, "x", x, "y", y, "w", cw, "h", ch)
	return nil
}

// DestroyPage releases the page texture. Unknown ids are ignored.
func (b *WGPUBackend) DestroyPage(id PageID) {
	page, ok := b.pages[id]
	if !ok {
		return
	}

	// TODO: actual resource drop when wgpu texture support is complete.
	//
	// core.TextureViewDrop(page.viewID)
	// core.TextureDrop(page.textureID)

	b.totalBytes -= page.sizeBytes
	delete(b.pages, id)
	slogger().Debug("wgpu page destroyed", "page", id)
}

// PageCount returns the number of live pages.
func (b *WGPUBackend) PageCount() int { return len(b.pages) }

// TotalBytes returns the GPU memory attributed to live pages.
func (b *WGPUBackend) TotalBytes() uint64 { return b.totalBytes }

// TextureID returns the wgpu texture ID backing a page.
// Returns a zero ID for unknown pages and for stub textures.
func (b *WGPUBackend) TextureID(id PageID) core.TextureID {
	page, ok := b.pages[id]
	if !ok {
		return core.TextureID{}
	}
	return page.textureID
}
