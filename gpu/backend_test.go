// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	names := Available()
	for _, want := range []string{BackendSoftware, BackendWGPU} {
		if !slices.Contains(names, want) {
			t.Errorf("Available() = %v, missing %q", names, want)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	b := Get(BackendSoftware)
	if b == nil {
		t.Fatal("Get(software) = nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}

	if Get("no-such-backend") != nil {
		t.Error("Get(unknown) should return nil")
	}
}

func TestDefault_FallsBackToSoftware(t *testing.T) {
	// The registered wgpu factory has no device, so Default must skip
	// it and pick the software backend.
	b := Default()
	if b == nil {
		t.Fatal("Default() = nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Default().Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestWGPUBackend_NoDevice(t *testing.T) {
	b := NewWGPUBackend(NullDeviceHandle{})

	if b.Usable() {
		t.Error("Usable() = true with NullDeviceHandle, want false")
	}
	if _, err := b.CreatePage(256); !errors.Is(err, ErrNoDevice) {
		t.Errorf("CreatePage() = %v, want ErrNoDevice", err)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	// NullDeviceHandle must satisfy the full DeviceHandle contract so
	// it can stand in anywhere a gpucontext host is expected.
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil {
		t.Error("Device() != nil for null device")
	}
	if h.Queue() != nil {
		t.Error("Queue() != nil for null device")
	}
	if h.Adapter() != nil {
		t.Error("Adapter() != nil for null device")
	}
	if info := h.AdapterInfo(); !reflect.DeepEqual(info, gpucontext.AdapterInfo{}) {
		t.Errorf("AdapterInfo() = %+v, want zero value", info)
	}
}

func TestWGPUBackend_NilDevice(t *testing.T) {
	b := NewWGPUBackend(nil)
	if b.Usable() {
		t.Error("Usable() = true with nil device, want false")
	}
}
