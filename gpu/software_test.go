// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"bytes"
	"errors"
	"testing"
)

func TestSoftwareBackend_CreatePage(t *testing.T) {
	b := NewSoftwareBackend()

	id, err := b.CreatePage(64)
	if err != nil {
		t.Fatalf("CreatePage(64) = %v", err)
	}
	if id == 0 {
		t.Error("CreatePage returned zero PageID")
	}
	if b.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", b.PageCount())
	}

	pix, size, ok := b.PagePixels(id)
	if !ok {
		t.Fatal("PagePixels() not found for created page")
	}
	if size != 64 {
		t.Errorf("page size = %d, want 64", size)
	}
	if len(pix) != 64*64*4 {
		t.Errorf("len(pix) = %d, want %d", len(pix), 64*64*4)
	}
	// Pages must start zero-initialized.
	if !bytes.Equal(pix, make([]byte, len(pix))) {
		t.Error("new page is not zero-initialized")
	}
}

func TestSoftwareBackend_CreatePageInvalidSize(t *testing.T) {
	b := NewSoftwareBackend()
	for _, size := range []int{0, -1} {
		if _, err := b.CreatePage(size); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("CreatePage(%d) = %v, want ErrInvalidPageSize", size, err)
		}
	}
}

func TestSoftwareBackend_UniquePageIDs(t *testing.T) {
	b := NewSoftwareBackend()
	seen := make(map[PageID]bool)
	for range 5 {
		id, err := b.CreatePage(16)
		if err != nil {
			t.Fatalf("CreatePage() = %v", err)
		}
		if seen[id] {
			t.Errorf("duplicate PageID %d", id)
		}
		seen[id] = true
	}
}

func TestSoftwareBackend_Upload(t *testing.T) {
	b := NewSoftwareBackend()
	id, _ := b.CreatePage(8)

	// 2x2 region: red, green / blue, white.
	pix := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	if err := b.Upload(id, 3, 2, 2, 2, pix); err != nil {
		t.Fatalf("Upload() = %v", err)
	}

	page, size, _ := b.PagePixels(id)
	at := func(x, y int) []byte {
		off := (y*size + x) * 4
		return page[off : off+4]
	}

	if !bytes.Equal(at(3, 2), []byte{255, 0, 0, 255}) {
		t.Errorf("pixel (3,2) = %v, want red", at(3, 2))
	}
	if !bytes.Equal(at(4, 3), []byte{255, 255, 255, 255}) {
		t.Errorf("pixel (4,3) = %v, want white", at(4, 3))
	}
	// Neighbors untouched.
	if !bytes.Equal(at(2, 2), []byte{0, 0, 0, 0}) {
		t.Errorf("pixel (2,2) = %v, want zero", at(2, 2))
	}
}

func TestSoftwareBackend_UploadClipsOutOfBounds(t *testing.T) {
	b := NewSoftwareBackend()
	id, _ := b.CreatePage(4)

	// 3x3 white region at (2,2): only the 2x2 in-bounds corner lands.
	pix := bytes.Repeat([]byte{255, 255, 255, 255}, 9)
	if err := b.Upload(id, 2, 2, 3, 3, pix); err != nil {
		t.Fatalf("Upload() = %v, want clipped write without error", err)
	}

	page, size, _ := b.PagePixels(id)
	at := func(x, y int) byte { return page[(y*size+x)*4] }

	if at(2, 2) != 255 || at(3, 3) != 255 {
		t.Error("in-bounds part of clipped upload missing")
	}
	if at(0, 0) != 0 {
		t.Error("clipped upload corrupted unrelated pixels")
	}
}

func TestSoftwareBackend_UploadErrors(t *testing.T) {
	b := NewSoftwareBackend()
	id, _ := b.CreatePage(8)

	if err := b.Upload(id+99, 0, 0, 1, 1, make([]byte, 4)); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("Upload(unknown) = %v, want ErrUnknownPage", err)
	}
	if err := b.Upload(id, 0, 0, 2, 2, make([]byte, 8)); !errors.Is(err, ErrShortPixelBuffer) {
		t.Errorf("Upload(short buffer) = %v, want ErrShortPixelBuffer", err)
	}
	// Zero-area uploads are no-ops.
	if err := b.Upload(id, 0, 0, 0, 0, nil); err != nil {
		t.Errorf("Upload(0x0) = %v, want nil", err)
	}
}

func TestSoftwareBackend_DestroyPage(t *testing.T) {
	b := NewSoftwareBackend()
	id, _ := b.CreatePage(8)

	b.DestroyPage(id)
	if b.PageCount() != 0 {
		t.Errorf("PageCount() = %d after destroy, want 0", b.PageCount())
	}
	if _, _, ok := b.PagePixels(id); ok {
		t.Error("PagePixels() found destroyed page")
	}

	// Double destroy is a no-op.
	b.DestroyPage(id)
}

func TestSoftwareBackend_PageImage(t *testing.T) {
	b := NewSoftwareBackend()
	id, _ := b.CreatePage(4)
	_ = b.Upload(id, 1, 1, 1, 1, []byte{10, 20, 30, 40})

	img := b.PageImage(id)
	if img == nil {
		t.Fatal("PageImage() = nil for live page")
	}
	if got := img.Bounds().Dx(); got != 4 {
		t.Errorf("image width = %d, want 4", got)
	}
	r, g, _, _ := img.At(1, 1).RGBA()
	if r == 0 && g == 0 {
		t.Error("uploaded pixel missing from PageImage copy")
	}

	if b.PageImage(id+99) != nil {
		t.Error("PageImage(unknown) should be nil")
	}
}
