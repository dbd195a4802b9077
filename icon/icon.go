// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package icon provides the built-in vector icons and their renderer.
//
// Icons are small fixed-size vector shapes identified by an ID enum.
// Each ID has a compile-time nominal pixel size; Render rasterizes the
// shape at any requested size by scaling from the nominal geometry.
package icon

import (
	"errors"
	"fmt"
	"strings"
)

// Icon errors.
var (
	// ErrUnknownIcon is returned for an ID outside the built-in set.
	ErrUnknownIcon = errors.New("icon: unknown icon id")

	// ErrInvalidSize is returned when the requested target size has a
	// non-positive dimension.
	ErrInvalidSize = errors.New("icon: invalid target size")
)

// ID identifies one built-in icon.
type ID uint8

// Built-in icons: battery level and charging indicators.
const (
	BatteryCharging100 ID = iota
	BatteryCharging80
	BatteryCharging60
	BatteryCharging40
	BatteryCharging20
	Battery100
	Battery80
	Battery60
	Battery40
	Battery20

	numIcons
)

// String returns the icon's name.
func (id ID) String() string {
	switch id {
	case BatteryCharging100:
		return "battery_charging_100"
	case BatteryCharging80:
		return "battery_charging_80"
	case BatteryCharging60:
		return "battery_charging_60"
	case BatteryCharging40:
		return "battery_charging_40"
	case BatteryCharging20:
		return "battery_charging_20"
	case Battery100:
		return "battery_100"
	case Battery80:
		return "battery_80"
	case Battery60:
		return "battery_60"
	case Battery40:
		return "battery_40"
	case Battery20:
		return "battery_20"
	default:
		return fmt.Sprintf("icon(%d)", uint8(id))
	}
}

// Size returns the icon's nominal pixel dimensions.
func (id ID) Size() (width, height int) {
	if id.charging() {
		return 22, 14
	}
	return 22, 8
}

// Valid reports whether id is one of the built-in icons.
func (id ID) Valid() bool { return id < numIcons }

// charging reports whether the icon shows the charging bolt.
func (id ID) charging() bool { return id <= BatteryCharging20 }

// level returns the battery fill fraction for the icon.
func (id ID) level() float32 {
	switch id {
	case BatteryCharging100, Battery100:
		return 1.0
	case BatteryCharging80, Battery80:
		return 0.8
	case BatteryCharging60, Battery60:
		return 0.6
	case BatteryCharging40, Battery40:
		return 0.4
	default:
		return 0.2
	}
}

// All returns every built-in icon id.
func All() []ID {
	ids := make([]ID, numIcons)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Parse resolves an icon by its String name, case-insensitively.
func Parse(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, id := range All() {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}
