// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory provides the data model of the textile factory twin:
// machine and conveyor fixtures, the geometry derived from them,
// the status color palette, scene statistics and layout file loading.
package factory

import (
	"cogentcore.org/core/math32"
)

// Status is the operating status of a [Machine]. It is a string type so
// that unknown values read from a layout file are kept as they are and
// rendered with the fallback appearance instead of failing to load.
type Status string

const (
	// Running is a machine that is actively producing.
	Running Status = "running"

	// Idle is a machine that is powered but not producing.
	Idle Status = "idle"

	// Fault is a machine that has stopped on an equipment fault.
	Fault Status = "fault"

	// Maintenance is a machine that is down for scheduled service.
	Maintenance Status = "maintenance"
)

// Statuses returns the known statuses, in display order.
func Statuses() []Status {
	return []Status{Running, Idle, Fault, Maintenance}
}

// IsKnown returns whether the status is one of [Statuses].
func (s Status) IsKnown() bool {
	switch s {
	case Running, Idle, Fault, Maintenance:
		return true
	}
	return false
}

// Kind is the type of equipment a [Machine] is, which determines
// the dimensions of its body.
type Kind string

const (
	Knitting Kind = "knitting"
	Dyeing   Kind = "dyeing"
	Cutting  Kind = "cutting"
	Packing  Kind = "packing"
)

// Kinds returns the known machine kinds.
func Kinds() []Kind {
	return []Kind{Knitting, Dyeing, Cutting, Packing}
}

// Machine is one physical unit on the factory floor.
type Machine struct {

	// ID is unique within a session.
	ID string `json:"id" toml:"id" yaml:"id"`

	// Name is the display label.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Position is the placement in world space. It is set when the
	// fixture is created and does not change afterwards.
	Position math32.Vector3 `json:"-" toml:"-" yaml:"-"`

	// Status determines the render color and whether the body rotates.
	Status Status `json:"status" toml:"status" yaml:"status"`

	// Kind determines the body dimensions.
	Kind Kind `json:"type" toml:"type" yaml:"type"`

	// Temperature in degrees Celsius.
	Temperature float32 `json:"temperature" toml:"temperature" yaml:"temperature"`

	// Speed in RPM.
	Speed float32 `json:"speed" toml:"speed" yaml:"speed"`

	// Efficiency in percent.
	Efficiency float32 `json:"efficiency" toml:"efficiency" yaml:"efficiency"`
}

// Size returns the body dimensions of the machine; see [MachineBoxDimensions].
func (m *Machine) Size() math32.Vector3 {
	return MachineBoxDimensions(m.Kind)
}

// IsRunning returns whether the machine status is [Running].
func (m *Machine) IsRunning() bool {
	return m.Status == Running
}
