// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textiletwin/twin/factory"
)

func TestSelectionSequence(t *testing.T) {
	a := factory.Machine{ID: "a", Name: "A"}
	b := factory.Machine{ID: "b", Name: "B"}

	var s Selection = NoSelection{}
	var got []Selection
	s = Click(s, a)
	got = append(got, s)
	s = Click(s, b)
	got = append(got, s)
	s = Dismiss(s)
	got = append(got, s)
	s = Dismiss(s)
	got = append(got, s)

	assert.Equal(t, []Selection{Selected{a}, Selected{b}, NoSelection{}, NoSelection{}}, got)
}

func TestComposerSelect(t *testing.T) {
	sc := NewComposer(factory.DefaultLayout())
	assert.Equal(t, NoSelection{}, sc.Selection())

	var notified []string
	sc.OnSelect(func(m factory.Machine) { notified = append(notified, m.ID) })

	sc.Entity("dye1").Click()
	m, ok := sc.Selected()
	require.True(t, ok)
	assert.Equal(t, "Dyeing Unit", m.Name)

	require.NoError(t, sc.SelectID("pack1"))
	m, _ = sc.Selected()
	assert.Equal(t, "pack1", m.ID)
	assert.Equal(t, []string{"dye1", "pack1"}, notified)

	assert.ErrorIs(t, sc.SelectID("missing"), ErrUnknownMachine)
	m, _ = sc.Selected()
	assert.Equal(t, "pack1", m.ID)

	sc.Dismiss()
	sc.Dismiss()
	_, ok = sc.Selected()
	assert.False(t, ok)
}

func TestClickDoesNotChangeEntity(t *testing.T) {
	me := &MachineEntity{Machine: factory.Machine{ID: "x"}}
	me.PointerOver()
	before := me.State
	me.Click() // no OnClick set
	assert.Equal(t, before, me.State)
}

func TestHoverGatedLabel(t *testing.T) {
	m := factory.Machine{Name: "Loom", Status: factory.Idle, Speed: 12}
	assert.Equal(t, []string{"Loom", "idle"}, Label(&m, false))
	assert.Equal(t, []string{"Loom", "idle", "Speed: 12 RPM"}, Label(&m, true))

	m = factory.Machine{Name: "Knit", Status: factory.Running, Temperature: 65, Speed: 240, Efficiency: 92}
	assert.Equal(t, []string{"Knit", "running", "Temp: 65°C", "Speed: 240 RPM", "Eff: 92%"}, Label(&m, true))
}

func TestHoverScale(t *testing.T) {
	me := &MachineEntity{}
	assert.Equal(t, float32(1), me.State.Scale())
	me.PointerOver()
	assert.True(t, me.State.Hovered)
	assert.Equal(t, float32(HoverScale), me.State.Scale())
	me.PointerOut()
	assert.False(t, me.State.Hovered)
	assert.Equal(t, float32(1), me.State.Scale())
}

func TestRotation(t *testing.T) {
	me := &MachineEntity{Machine: factory.Machine{Status: factory.Running}}
	for range 10 {
		me.Frame()
	}
	assert.InDelta(t, 10*RotationStep, me.State.Yaw, 1e-6)

	yaw := me.State.Yaw
	me.Machine.Status = factory.Fault
	me.Frame()
	me.Frame()
	assert.Equal(t, yaw, me.State.Yaw)

	st := MachineState{}
	assert.Equal(t, float32(0), st.Tick(factory.Idle).Yaw)
	assert.Equal(t, float32(0), st.Yaw, "Tick must not modify its receiver")
}

func TestAppearance(t *testing.T) {
	for _, s := range append(factory.Statuses(), "unknown") {
		m := factory.Machine{Status: s, Kind: factory.Dyeing}
		ap := NewAppearance(&m)
		assert.Equal(t, ap.BodyColor, ap.BeaconColor)
		assert.Equal(t, ap.BodyColor, ap.LabelColor)
		assert.Equal(t, factory.StatusColor(s), ap.BodyColor)
		assert.Equal(t, factory.Intensity(ap.BodyColor, BeaconGlow), ap.BeaconEmissive)
		if s == factory.Running {
			assert.Equal(t, factory.Intensity(ap.BodyColor, RunningGlow), ap.BodyEmissive)
		} else {
			assert.Equal(t, colors.Black, ap.BodyEmissive)
		}
		assert.InDelta(t, 1.2, ap.BeaconY, 1e-6)
		assert.InDelta(t, 1.8, ap.LabelY, 1e-6)
	}
}

func TestBeltOffset(t *testing.T) {
	be := &BeltEntity{Belt: factory.Belt{Active: true, Speed: 2}}
	for range 25 {
		be.Frame()
	}
	assert.InDelta(t, 0.5, be.Offset(), 1e-6)
	for range 25 {
		be.Frame()
	}
	assert.Equal(t, float32(0), be.Offset())

	off := &BeltEntity{Belt: factory.Belt{Active: false, Speed: 2}}
	for range 50 {
		off.Frame()
	}
	assert.Equal(t, 0, off.State.Frames)
	assert.Equal(t, float32(0), off.Offset())
}

func TestComposerFrame(t *testing.T) {
	sc := NewComposer(factory.DefaultLayout())
	sc.Frame()
	assert.InDelta(t, RotationStep, sc.Entity("knit1").State.Yaw, 1e-7)
	assert.Equal(t, float32(0), sc.Entity("knit2").State.Yaw)
	for _, be := range sc.BeltEntities() {
		assert.Equal(t, 1, be.State.Frames)
	}
}

func TestComposerCopiesLayout(t *testing.T) {
	ly := factory.DefaultLayout()
	sc := NewComposer(ly)
	ly.Machines[0].Name = "changed"
	ly.Machines[0].Status = factory.Fault
	ly.Belts[0].Active = false

	assert.Equal(t, "Knitting Machine #1", sc.Machines()[0].Name)
	assert.True(t, sc.Belts()[0].Active)
	assert.Equal(t, factory.Stats{Running: 3, AvgEfficiency: 46, Faults: 1, ProductionRate: 135}, sc.Stats())
	assert.Len(t, sc.MachineEntities(), 6)
	assert.Len(t, sc.BeltEntities(), 3)
}

func TestViewMode(t *testing.T) {
	sc := NewComposer(factory.Layout{})
	assert.Equal(t, Overview, sc.ViewMode())
	sc.SetViewMode(Maintenance)
	assert.Equal(t, Maintenance, sc.ViewMode())
	assert.Equal(t, factory.Stats{}, sc.Stats())
}

func TestClampDistance(t *testing.T) {
	origin := math32.Vec3(0, 0, 0)
	assert.Equal(t, DefaultCameraPos, ClampDistance(DefaultCameraPos, origin, MinDistance, MaxDistance))

	p := ClampDistance(math32.Vec3(1, 0, 0), origin, MinDistance, MaxDistance)
	assert.InDelta(t, 5, p.X, 1e-5)

	p = ClampDistance(math32.Vec3(0, 0, -100), origin, MinDistance, MaxDistance)
	assert.InDelta(t, -50, p.Z, 1e-4)

	p = ClampDistance(origin, origin, MinDistance, MaxDistance)
	assert.InDelta(t, 5, p.Length(), 1e-4)
	assert.InDelta(t, p.X, p.Y, 1e-5)
	assert.InDelta(t, p.Y, p.Z, 1e-5)

	// on an offset target
	target := math32.Vec3(2, 0, -3)
	p = ClampDistance(target, target, MinDistance, MaxDistance)
	assert.InDelta(t, 5, p.Sub(target).Length(), 1e-4)
}
