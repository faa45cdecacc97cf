// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/textiletwin/twin/factory"
)

const (
	// RotationStep is the yaw, in radians, that a running machine
	// turns per frame.
	RotationStep = 0.005

	// HoverScale is the body scale of a hovered machine.
	HoverScale = 1.1

	// RunningGlow is the emissive intensity of a running machine body.
	RunningGlow = 0.1

	// BeaconGlow is the emissive intensity of the status beacon.
	BeaconGlow = 0.5

	// BeaconRadius is the radius of the status beacon sphere.
	BeaconRadius = 0.1
)

// MachineState is the per-entity interaction and animation state.
// Its methods are reducers: they return the new state and leave
// the receiver unchanged.
type MachineState struct {

	// Hovered is true while the pointer is over the body.
	Hovered bool

	// Yaw is the accumulated body rotation about Y, in radians.
	Yaw float32
}

// HoverIn returns the state after the pointer enters the body.
func (st MachineState) HoverIn() MachineState {
	st.Hovered = true
	return st
}

// HoverOut returns the state after the pointer leaves the body.
func (st MachineState) HoverOut() MachineState {
	st.Hovered = false
	return st
}

// Tick returns the state after one frame for a machine with the given
// status. Only running machines turn; any other status stops the
// rotation at once.
func (st MachineState) Tick(s factory.Status) MachineState {
	if s == factory.Running {
		st.Yaw += RotationStep
	}
	return st
}

// Scale returns the uniform body scale.
func (st MachineState) Scale() float32 {
	if st.Hovered {
		return HoverScale
	}
	return 1
}

// Appearance is everything the renderer needs to draw a machine,
// derived from the record on each call.
type Appearance struct {
	Size           math32.Vector3
	BodyColor      color.RGBA
	BodyEmissive   color.RGBA
	BeaconColor    color.RGBA
	BeaconEmissive color.RGBA
	LabelColor     color.RGBA

	// BeaconY is the beacon height above the body center.
	BeaconY float32

	// LabelY is the label anchor height above the body center.
	LabelY float32
}

// NewAppearance returns the [Appearance] of the given machine.
func NewAppearance(m *factory.Machine) Appearance {
	c := factory.StatusColor(m.Status)
	sz := m.Size()
	ap := Appearance{
		Size:           sz,
		BodyColor:      c,
		BodyEmissive:   colors.Black,
		BeaconColor:    c,
		BeaconEmissive: factory.Intensity(c, BeaconGlow),
		LabelColor:     c,
		BeaconY:        sz.Y/2 + 0.2,
		LabelY:         sz.Y/2 + 0.8,
	}
	if m.IsRunning() {
		ap.BodyEmissive = factory.Intensity(c, RunningGlow)
	}
	return ap
}

// Label returns the lines of the floating machine label: the name and
// status always, and while hovered the temperature, speed and efficiency,
// each only when greater than zero.
func Label(m *factory.Machine, hovered bool) []string {
	lines := []string{m.Name, string(m.Status)}
	if !hovered {
		return lines
	}
	if m.Temperature > 0 {
		lines = append(lines, "Temp: "+FormatNumber(m.Temperature)+"°C")
	}
	if m.Speed > 0 {
		lines = append(lines, "Speed: "+FormatNumber(m.Speed)+" RPM")
	}
	if m.Efficiency > 0 {
		lines = append(lines, "Eff: "+FormatNumber(m.Efficiency)+"%")
	}
	return lines
}

// FormatNumber formats a telemetry value with the fewest digits
// that represent it: 65, 94.2.
func FormatNumber(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
