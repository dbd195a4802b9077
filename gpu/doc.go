// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu provides the texture page backends used by the atlas.
//
// A Backend owns fixed-size RGBA texture pages and supports three
// operations: page creation, sub-region upload, and page destruction.
// Pages are identified by opaque PageID handles; callers never hold a
// direct reference to the underlying texture resource.
//
// Two implementations are provided:
//   - SoftwareBackend keeps page pixels in CPU memory. It is the
//     fallback backend and the one used by tests and tooling.
//   - WGPUBackend tracks pages as wgpu texture resources, receiving
//     its device from the host application via a DeviceHandle.
//
// Backends register themselves by name; Default selects the best
// available one.
package gpu
