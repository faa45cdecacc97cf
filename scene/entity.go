// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/textiletwin/twin/factory"

// MachineEntity is the state half of one rendered machine. It owns its
// hover and rotation state, and reports clicks upward through OnClick.
type MachineEntity struct {

	// Machine is the record being rendered.
	Machine factory.Machine

	// State is the current hover and rotation state.
	State MachineState

	// OnClick is called with the record when the body is clicked.
	OnClick func(m factory.Machine)
}

// PointerOver marks the entity as hovered.
func (me *MachineEntity) PointerOver() {
	me.State = me.State.HoverIn()
}

// PointerOut clears the hover.
func (me *MachineEntity) PointerOut() {
	me.State = me.State.HoverOut()
}

// Click reports the record to OnClick. The entity state is not changed.
func (me *MachineEntity) Click() {
	if me.OnClick != nil {
		me.OnClick(me.Machine)
	}
}

// Frame advances the rotation by one frame.
func (me *MachineEntity) Frame() {
	me.State = me.State.Tick(me.Machine.Status)
}

// Appearance returns the current appearance of the machine.
func (me *MachineEntity) Appearance() Appearance {
	return NewAppearance(&me.Machine)
}

// Label returns the current label lines of the machine.
func (me *MachineEntity) Label() []string {
	return Label(&me.Machine, me.State.Hovered)
}

// BeltEntity is the state half of one rendered conveyor belt.
type BeltEntity struct {
	Belt  factory.Belt
	State BeltState
}

// Frame advances the surface scroll by one frame if the belt is active.
func (be *BeltEntity) Frame() {
	be.State = be.State.Tick(be.Belt.Active)
}

// Offset returns the current texture scroll offset.
func (be *BeltEntity) Offset() float32 {
	return be.State.Offset(be.Belt.Speed)
}
