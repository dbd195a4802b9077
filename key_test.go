// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"testing"

	"github.com/gogpu/textatlas/icon"
)

func TestKey_Variants(t *testing.T) {
	ck := CharKey('a')
	if c, ok := ck.Char(); !ok || c != 'a' {
		t.Errorf("Char() = (%q, %v), want ('a', true)", c, ok)
	}
	if _, ok := ck.Icon(); ok {
		t.Error("char key reports an icon payload")
	}

	ik := IconKey(icon.Battery60)
	if id, ok := ik.Icon(); !ok || id != icon.Battery60 {
		t.Errorf("Icon() = (%v, %v), want (Battery60, true)", id, ok)
	}
	if _, ok := ik.Char(); ok {
		t.Error("icon key reports a char payload")
	}
}

func TestKey_Equality(t *testing.T) {
	if CharKey('a') != CharKey('a') {
		t.Error("equal char keys compare unequal")
	}
	if CharKey('a') == CharKey('b') {
		t.Error("distinct char keys compare equal")
	}
	if IconKey(icon.Battery60) != IconKey(icon.Battery60) {
		t.Error("equal icon keys compare unequal")
	}

	// A char key never collides with an icon key, even when the raw
	// payloads share a numeric value.
	if CharKey(rune(icon.Battery60)) == IconKey(icon.Battery60) {
		t.Error("char and icon keys collide")
	}
}

func TestKey_ZeroValue(t *testing.T) {
	var k Key
	if _, ok := k.Char(); ok {
		t.Error("zero key reports a char payload")
	}
	if _, ok := k.Icon(); ok {
		t.Error("zero key reports an icon payload")
	}
	if k == CharKey(0) || k == IconKey(0) {
		t.Error("zero key compares equal to a real key")
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{CharKey('a'), `char('a')`},
		{IconKey(icon.Battery100), "icon(battery_100)"},
		{Key{}, "key(zero)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
