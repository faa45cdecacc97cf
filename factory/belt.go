// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"cogentcore.org/core/math32"
)

const (
	// DefaultBeltWidth is the lateral extent of a belt with no Width set.
	DefaultBeltWidth = 0.5

	// DefaultBeltSpeed is the texture scroll rate of a belt with no Speed set.
	DefaultBeltSpeed = 1

	// SupportSpacing is the distance between belt support posts.
	SupportSpacing = 2
)

// Belt is a straight conveyor segment between two points.
type Belt struct {

	// Start is the first end point of the belt.
	Start math32.Vector3

	// End is the second end point of the belt.
	End math32.Vector3

	// Width is the lateral extent of the belt.
	Width float32

	// Speed is the scroll rate of the animated surface texture.
	Speed float32

	// Active gates whether the surface animates, and selects
	// the running versus off tint.
	Active bool
}

// NewBelt returns a new active belt from start to end
// with the default width and speed.
func NewBelt(start, end math32.Vector3) Belt {
	return Belt{Start: start, End: end, Width: DefaultBeltWidth, Speed: DefaultBeltSpeed, Active: true}
}

// Defaults sets the Width and Speed to their defaults if they are unset.
func (b *Belt) Defaults() {
	if b.Width == 0 {
		b.Width = DefaultBeltWidth
	}
	if b.Speed == 0 {
		b.Speed = DefaultBeltSpeed
	}
}

// Transform returns the belt transform; see [BeltTransform].
func (b *Belt) Transform() Transform {
	return BeltTransform(b.Start, b.End)
}

// Transform is the placement of a belt mesh derived from its end points.
type Transform struct {

	// Length is the distance between the end points in the horizontal plane.
	// The elevation difference does not count.
	Length float32

	// Angle is the yaw, in radians, that orients the belt along start to end.
	Angle float32

	// Midpoint is the center of the belt. Its Y is the higher of the
	// two end point elevations.
	Midpoint math32.Vector3
}

// BeltTransform computes the length, yaw angle and midpoint of a belt
// running from start to end.
func BeltTransform(start, end math32.Vector3) Transform {
	dx := end.X - start.X
	dz := end.Z - start.Z
	return Transform{
		Length: math32.Sqrt(dx*dx + dz*dz),
		Angle:  math32.Atan2(dz, dx),
		Midpoint: math32.Vec3(
			(start.X+end.X)/2,
			math32.Max(start.Y, end.Y),
			(start.Z+end.Z)/2,
		),
	}
}

// BeltSupportCount returns the number of support posts under a belt
// of the given length: one per [SupportSpacing] units.
func BeltSupportCount(length float32) int {
	if !(length > 0) {
		return 0
	}
	return int(math32.Floor(length / SupportSpacing))
}

// BeltSupportOffsets returns the position of each support post along
// the belt, relative to the belt midpoint.
func BeltSupportOffsets(length float32) []float32 {
	n := BeltSupportCount(length)
	offs := make([]float32, n)
	for i := range offs {
		offs[i] = float32(i)*SupportSpacing - length/2 + 1
	}
	return offs
}
