// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

const (
	// MinDistance is the closest the orbit camera may get to its target.
	MinDistance = 5

	// MaxDistance is the farthest the orbit camera may get from its target.
	MaxDistance = 50

	// CameraFOV is the vertical field of view of the default camera, in degrees.
	CameraFOV = 50
)

// DefaultCameraPos is the initial camera position; it looks at the origin.
var DefaultCameraPos = math32.Vec3(15, 15, 15)

// ClampDistance returns pos moved along the line to target so that its
// distance from target is within [min, max]. A pos on the target is
// pushed out to min along the default camera direction.
func ClampDistance(pos, target math32.Vector3, min, max float32) math32.Vector3 {
	d := pos.Sub(target)
	dist := d.Length()
	if dist == 0 {
		return target.Add(DefaultCameraPos.Normal().MulScalar(min))
	}
	if dist >= min && dist <= max {
		return pos
	}
	return target.Add(d.MulScalar(math32.Clamp(dist, min, max) / dist))
}
