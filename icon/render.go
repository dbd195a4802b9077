// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package icon

import (
	"fmt"
	"image"

	"golang.org/x/image/vector"
)

// shape is a closed polygon in nominal icon coordinates.
// Counter-clockwise shapes cut holes out of clockwise ones under the
// rasterizer's winding rule.
type shape [][2]float32

// rect returns a clockwise rectangle.
func rect(x0, y0, x1, y1 float32) shape {
	return shape{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// rectHole returns a counter-clockwise rectangle.
func rectHole(x0, y0, x1, y1 float32) shape {
	return shape{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
}

// shapes returns the icon's geometry in nominal coordinates.
//
// The battery body is a 20x8 frame with a 2x4 terminal nub on the
// right and a fill bar proportional to the level. Charging variants
// center the body vertically in a 22x14 box and overlay a bolt.
func (id ID) shapes() []shape {
	var top float32
	if id.charging() {
		top = 3 // body is vertically centered in the 14px box
	}

	s := []shape{
		// Body frame: outer rectangle with inner hole.
		rect(0, top, 20, top+8),
		rectHole(1, top+1, 19, top+7),
		// Terminal nub.
		rect(20, top+2, 22, top+6),
		// Fill bar: up to 16px wide inside the frame.
		rect(2, top+2, 2+16*id.level(), top+6),
	}

	if id.charging() {
		s = append(s, shape{
			{12, 0}, {6, 8}, {10, 8}, {9, 14}, {15, 5}, {11, 5},
		})
	}
	return s
}

// Render rasterizes the icon into a width x height RGBA bitmap.
// The returned buffer holds exactly width*height*4 bytes; coverage is
// rendered as premultiplied white.
func Render(id ID, width, height int) ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, id)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	nw, nh := id.Size()
	sx := float32(width) / float32(nw)
	sy := float32(height) / float32(nh)

	rz := vector.NewRasterizer(width, height)
	for _, sh := range id.shapes() {
		rz.MoveTo(sh[0][0]*sx, sh[0][1]*sy)
		for _, pt := range sh[1:] {
			rz.LineTo(pt[0]*sx, pt[1]*sy)
		}
		rz.ClosePath()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	rz.Draw(dst, dst.Bounds(), image.White, image.Point{})
	return dst.Pix, nil
}
