// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Palette colors shared by the 3D view and the dashboard panels.
var (
	Green = color.RGBA{0x22, 0xc5, 0x5e, 0xff} // #22c55e
	Amber = color.RGBA{0xea, 0xb3, 0x08, 0xff} // #eab308
	Red   = color.RGBA{0xef, 0x44, 0x44, 0xff} // #ef4444
	Blue  = color.RGBA{0x3b, 0x82, 0xf6, 0xff} // #3b82f6
	Gray  = color.RGBA{0x6b, 0x72, 0x80, 0xff} // #6b7280

	// BeltOnColor is the slab tint of an active belt.
	BeltOnColor = color.RGBA{0x1f, 0x29, 0x37, 0xff} // #1f2937

	// BeltOffColor is the slab tint of an inactive belt.
	BeltOffColor = Gray

	// SupportColor is the color of belt support posts.
	SupportColor = color.RGBA{0x4b, 0x55, 0x63, 0xff} // #4b5563

	// FloorColor is the color of the factory floor.
	FloorColor = color.RGBA{0x1e, 0x29, 0x3b, 0xff} // #1e293b
)

// StatusColor returns the color for the given status. The same color is
// used for the machine body, its beacon and its label text, so that all
// three agree. Unknown statuses are gray.
func StatusColor(s Status) color.RGBA {
	switch s {
	case Running:
		return Green
	case Idle:
		return Amber
	case Fault:
		return Red
	case Maintenance:
		return Blue
	default:
		return Gray
	}
}

// BeltColor returns the slab tint for a belt with the given active state.
func BeltColor(active bool) color.RGBA {
	if active {
		return BeltOnColor
	}
	return BeltOffColor
}

// MachineBoxDimensions returns the body width, height and depth for the
// given kind. Unknown kinds get a 2 x 1 x 2 box.
func MachineBoxDimensions(k Kind) math32.Vector3 {
	switch k {
	case Knitting:
		return math32.Vec3(2, 1.5, 2)
	case Dyeing:
		return math32.Vec3(3, 2, 2.5)
	case Cutting:
		return math32.Vec3(2.5, 1, 1.5)
	case Packing:
		return math32.Vec3(1.5, 1, 1.5)
	default:
		return math32.Vec3(2, 1, 2)
	}
}

// Intensity scales the rgb components of c by the given factor in [0, 1],
// keeping the alpha. It is used to derive emissive glow colors.
func Intensity(c color.RGBA, f float32) color.RGBA {
	f = math32.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(math32.Round(float32(c.R) * f)),
		G: uint8(math32.Round(float32(c.G) * f)),
		B: uint8(math32.Round(float32(c.B) * f)),
		A: c.A,
	}
}
