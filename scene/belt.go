// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "math"

// ScrollRate is the texture offset advance per frame at speed 1.
const ScrollRate = 0.01

// BeltState is the animation state of a conveyor belt.
type BeltState struct {

	// Frames is the number of frames the belt has advanced while active.
	Frames int
}

// Tick returns the state after one frame. Inactive belts do not advance.
func (st BeltState) Tick(active bool) BeltState {
	if active {
		st.Frames++
	}
	return st
}

// Offset returns the texture scroll offset in [0, 1) for the given
// speed. It is computed from the frame count so that the wrap is exact.
func (st BeltState) Offset(speed float32) float32 {
	off := math.Mod(float64(st.Frames)*float64(speed)*ScrollRate, 1)
	if off < 0 {
		off++
	}
	// float rounding of an exact multiple of 1
	if off > 1-1e-9 || off < 1e-9 {
		off = 0
	}
	return float32(off)
}
