// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"fmt"

	"github.com/gogpu/textatlas/icon"
)

// symbolKind discriminates the two key variants.
type symbolKind uint8

const (
	symbolChar symbolKind = iota + 1
	symbolIcon
)

// Key identifies one cacheable symbol: a character or a built-in icon.
//
// Keys are small comparable values; two keys are equal iff they have
// the same variant and the same payload. The zero Key matches no
// symbol and is never stored in the cache.
type Key struct {
	kind symbolKind
	char rune
	icon icon.ID
}

// CharKey returns the cache key for a character.
func CharKey(r rune) Key {
	return Key{kind: symbolChar, char: r}
}

// IconKey returns the cache key for a built-in icon.
func IconKey(id icon.ID) Key {
	return Key{kind: symbolIcon, icon: id}
}

// Char returns the character payload, if this is a character key.
func (k Key) Char() (rune, bool) {
	return k.char, k.kind == symbolChar
}

// Icon returns the icon payload, if this is an icon key.
func (k Key) Icon() (icon.ID, bool) {
	return k.icon, k.kind == symbolIcon
}

// String returns a debug representation of the key.
func (k Key) String() string {
	switch k.kind {
	case symbolChar:
		return fmt.Sprintf("char(%q)", k.char)
	case symbolIcon:
		return fmt.Sprintf("icon(%s)", k.icon)
	default:
		return "key(zero)"
	}
}
