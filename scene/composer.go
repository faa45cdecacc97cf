// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the state of the 3D factory scene: the machine and
// belt entities, the selection, the view mode and the per-frame animation.
// It does not depend on the GPU; package twinview renders it.
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
	"github.com/textiletwin/twin/factory"
)

// ErrUnknownMachine is returned when selecting a machine id
// that is not in the layout.
var ErrUnknownMachine = errors.New("scene: unknown machine")

// ViewMode is the active view control. It is tracked and highlighted,
// but does not filter what is drawn.
type ViewMode string

const (
	Overview    ViewMode = "overview"
	Production  ViewMode = "production"
	Maintenance ViewMode = "maintenance"
)

// ViewModes returns the view modes in control order.
func ViewModes() []ViewMode {
	return []ViewMode{Overview, Production, Maintenance}
}

// Composer owns the fixtures of one scene and the scene-wide state
// derived from interaction with it. All methods must be called from
// the render loop goroutine.
type Composer struct {
	layout    factory.Layout
	machines  []*MachineEntity
	belts     []*BeltEntity
	selection Selection
	viewMode  ViewMode
	listeners []func(m factory.Machine)
}

// NewComposer returns a new [Composer] for a deep copy of the given
// layout, with one entity per machine and per belt.
func NewComposer(ly factory.Layout) *Composer {
	sc := &Composer{selection: NoSelection{}, viewMode: Overview}
	if err := copier.CopyWithOption(&sc.layout, &ly, copier.Option{DeepCopy: true}); err != nil {
		errors.Log(fmt.Errorf("scene.NewComposer: copying layout: %w", err))
		sc.layout = factory.Layout{
			Machines: append([]factory.Machine(nil), ly.Machines...),
			Belts:    append([]factory.Belt(nil), ly.Belts...),
		}
	}
	for _, m := range sc.layout.Machines {
		sc.machines = append(sc.machines, &MachineEntity{Machine: m, OnClick: sc.Select})
	}
	for _, b := range sc.layout.Belts {
		sc.belts = append(sc.belts, &BeltEntity{Belt: b})
	}
	return sc
}

// Machines returns a copy of the machine fixtures.
func (sc *Composer) Machines() []factory.Machine {
	return append([]factory.Machine(nil), sc.layout.Machines...)
}

// Belts returns a copy of the belt fixtures.
func (sc *Composer) Belts() []factory.Belt {
	return append([]factory.Belt(nil), sc.layout.Belts...)
}

// MachineEntities returns the machine entities, in fixture order.
func (sc *Composer) MachineEntities() []*MachineEntity {
	return sc.machines
}

// BeltEntities returns the belt entities, in fixture order.
func (sc *Composer) BeltEntities() []*BeltEntity {
	return sc.belts
}

// Entity returns the machine entity with the given id, or nil.
func (sc *Composer) Entity(id string) *MachineEntity {
	for _, me := range sc.machines {
		if me.Machine.ID == id {
			return me
		}
	}
	return nil
}

// OnSelect adds a function that is called with the machine
// each time a machine is selected.
func (sc *Composer) OnSelect(fun func(m factory.Machine)) {
	sc.listeners = append(sc.listeners, fun)
}

// Select makes the given machine the selection, replacing any
// previous one, and notifies the [Composer.OnSelect] listeners.
func (sc *Composer) Select(m factory.Machine) {
	sc.selection = Click(sc.selection, m)
	slog.Info("scene: machine selected", "machine", m.ID, "status", m.Status)
	for _, fun := range sc.listeners {
		fun(m)
	}
}

// SelectID selects the machine with the given id.
func (sc *Composer) SelectID(id string) error {
	m, ok := sc.layout.Machine(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMachine, id)
	}
	sc.Select(m)
	return nil
}

// Dismiss clears the selection. It is a no-op if nothing is selected.
func (sc *Composer) Dismiss() {
	if _, ok := sc.selection.(Selected); ok {
		slog.Debug("scene: selection dismissed")
	}
	sc.selection = Dismiss(sc.selection)
}

// Selection returns the current selection.
func (sc *Composer) Selection() Selection {
	return sc.selection
}

// Selected returns the selected machine and true,
// or false if nothing is selected.
func (sc *Composer) Selected() (factory.Machine, bool) {
	return SelectedMachine(sc.selection)
}

// SetViewMode sets the active view mode.
func (sc *Composer) SetViewMode(vm ViewMode) {
	sc.viewMode = vm
}

// ViewMode returns the active view mode.
func (sc *Composer) ViewMode() ViewMode {
	return sc.viewMode
}

// Stats returns the scene statistics, computed from the fixtures.
func (sc *Composer) Stats() factory.Stats {
	return factory.ComputeStats(sc.layout.Machines)
}

// Frame advances every machine and belt by one frame.
func (sc *Composer) Frame() {
	for _, me := range sc.machines {
		me.Frame()
	}
	for _, be := range sc.belts {
		be.Frame()
	}
}
