// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
)

// Layout is the static inventory of a factory floor: the machines and
// conveyor belts that a scene is built from.
type Layout struct {
	Machines []Machine
	Belts    []Belt
}

// DefaultLayout returns the built-in floor of six machines and three belts.
func DefaultLayout() Layout {
	return Layout{
		Machines: []Machine{
			{ID: "knit1", Name: "Knitting Machine #1", Position: math32.Vec3(-6, 0.75, -4), Status: Running, Kind: Knitting, Temperature: 65, Speed: 240, Efficiency: 92},
			{ID: "knit2", Name: "Knitting Machine #2", Position: math32.Vec3(-2, 0.75, -4), Status: Idle, Kind: Knitting, Temperature: 35},
			{ID: "dye1", Name: "Dyeing Unit", Position: math32.Vec3(3, 1, -4), Status: Fault, Kind: Dyeing, Temperature: 85, Speed: 150},
			{ID: "cut1", Name: "Cutting Station", Position: math32.Vec3(-4, 0.5, 4), Status: Running, Kind: Cutting, Temperature: 25, Speed: 180, Efficiency: 88},
			{ID: "pack1", Name: "Packing Unit #1", Position: math32.Vec3(0, 0.5, 4), Status: Running, Kind: Packing, Temperature: 22, Speed: 120, Efficiency: 95},
			{ID: "pack2", Name: "Packing Unit #2", Position: math32.Vec3(3, 0.5, 4), Status: Maintenance, Kind: Packing, Temperature: 20},
		},
		Belts: []Belt{
			NewBelt(math32.Vec3(-1, 0.2, -4), math32.Vec3(2, 0.2, -4)),
			NewBelt(math32.Vec3(4, 0.2, -3), math32.Vec3(-3, 0.2, 3)),
			NewBelt(math32.Vec3(-3, 0.2, 4), math32.Vec3(2, 0.2, 4)),
		},
	}
}

// Machine returns the machine with the given id, and whether it was found.
func (ly *Layout) Machine(id string) (Machine, bool) {
	for _, m := range ly.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return Machine{}, false
}

// Sanitize repairs values that would otherwise break the scene:
// negative telemetry is clamped to 0, empty and duplicate machine ids
// are replaced by unique ones, and unset belt width and speed get
// their defaults. Each repair is logged as a warning. Unknown status
// and kind values are left alone; they render with the fallback look.
func (ly *Layout) Sanitize() {
	taken := make(map[string]bool, len(ly.Machines))
	for _, m := range ly.Machines {
		taken[m.ID] = true
	}
	seen := make(map[string]bool, len(ly.Machines))
	for i := range ly.Machines {
		m := &ly.Machines[i]
		if m.ID == "" || seen[m.ID] {
			id := fmt.Sprintf("machine%d", i)
			for n := i + 1; taken[id]; n++ {
				id = fmt.Sprintf("machine%d", n)
			}
			slog.Warn("factory: replacing empty or duplicate machine id", "id", m.ID, "new", id)
			m.ID = id
			taken[id] = true
		}
		seen[m.ID] = true
		clampTelemetry(m, "temperature", &m.Temperature)
		clampTelemetry(m, "speed", &m.Speed)
		clampTelemetry(m, "efficiency", &m.Efficiency)
	}
	for i := range ly.Belts {
		ly.Belts[i].Defaults()
	}
}

func clampTelemetry(m *Machine, field string, v *float32) {
	if *v >= 0 {
		return
	}
	slog.Warn("factory: clamping negative telemetry to 0", "machine", m.ID, "field", field, "value", *v)
	*v = 0
}
