// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package icon

import (
	"errors"
	"testing"
)

func TestID_Size(t *testing.T) {
	tests := []struct {
		id   ID
		w, h int
	}{
		{BatteryCharging100, 22, 14},
		{BatteryCharging20, 22, 14},
		{Battery100, 22, 8},
		{Battery20, 22, 8},
	}
	for _, tt := range tests {
		w, h := tt.id.Size()
		if w != tt.w || h != tt.h {
			t.Errorf("%v.Size() = %dx%d, want %dx%d", tt.id, w, h, tt.w, tt.h)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(id.String())
		if err != nil {
			t.Errorf("Parse(%q) = %v", id.String(), err)
			continue
		}
		if got != id {
			t.Errorf("Parse(%q) = %v, want %v", id.String(), got, id)
		}
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	got, err := Parse("  Battery_100 ")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if got != Battery100 {
		t.Errorf("Parse() = %v, want %v", got, Battery100)
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("battery_999"); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("Parse(unknown) = %v, want ErrUnknownIcon", err)
	}
}

func TestRender_ExactBufferSize(t *testing.T) {
	for _, id := range All() {
		w, h := id.Size()
		pix, err := Render(id, w, h)
		if err != nil {
			t.Errorf("Render(%v) = %v", id, err)
			continue
		}
		if len(pix) != w*h*4 {
			t.Errorf("Render(%v): len = %d, want %d", id, len(pix), w*h*4)
		}
	}
}

func TestRender_Scaled(t *testing.T) {
	pix, err := Render(Battery100, 44, 16)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if len(pix) != 44*16*4 {
		t.Errorf("len = %d, want %d", len(pix), 44*16*4)
	}
}

func TestRender_Coverage(t *testing.T) {
	w, h := Battery20.Size()
	pix, err := Render(Battery20, w, h)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	alphaAt := func(x, y int) byte { return pix[(y*w+x)*4+3] }

	// Frame corner is opaque, interior beyond the 20% fill bar is
	// transparent, fill bar itself is opaque.
	if alphaAt(0, 0) == 0 {
		t.Error("frame pixel (0,0) is transparent, want coverage")
	}
	if alphaAt(10, 4) != 0 {
		t.Errorf("empty interior pixel (10,4) alpha = %d, want 0", alphaAt(10, 4))
	}
	if alphaAt(3, 4) == 0 {
		t.Error("fill bar pixel (3,4) is transparent, want coverage")
	}
}

func TestRender_ChargingBolt(t *testing.T) {
	w, h := BatteryCharging100.Size()
	pix, err := Render(BatteryCharging100, w, h)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	alphaAt := func(x, y int) byte { return pix[(y*w+x)*4+3] }

	// Above the body only the bolt has coverage.
	if alphaAt(11, 1) == 0 {
		t.Error("bolt pixel (11,1) is transparent, want coverage")
	}
	if alphaAt(1, 1) != 0 {
		t.Errorf("pixel (1,1) above body alpha = %d, want 0", alphaAt(1, 1))
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(numIcons, 10, 10); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("Render(unknown) = %v, want ErrUnknownIcon", err)
	}
	if _, err := Render(Battery100, 0, 8); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render(0 width) = %v, want ErrInvalidSize", err)
	}
	if _, err := Render(Battery100, 8, -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render(negative height) = %v, want ErrInvalidSize", err)
	}
}
