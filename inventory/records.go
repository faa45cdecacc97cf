// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inventory is the machine management view model:
// the equipment records, search and status filtering, and summary counts.
package inventory

import (
	"strconv"
	"time"

	"github.com/textiletwin/twin/factory"
)

// Record is the management record of one machine.
type Record struct {
	ID   string
	Name string

	// SceneID is the id of the same machine in the 3D layout,
	// used to open a record from a scene selection.
	SceneID string

	Kind        factory.Kind
	Status      factory.Status
	Efficiency  float32
	Utilization float32
	Temperature float32
	Speed       float32

	// Uptime is the time running in the current shift.
	Uptime time.Duration

	LastMaintenance time.Time
	NextMaintenance time.Time
	Location        string
	Operator        string
}

// MaintenanceDue returns whether the next maintenance date is on or before now.
func (r *Record) MaintenanceDue(now time.Time) bool {
	return !r.NextMaintenance.After(now)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hm(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

// Records returns the built-in equipment records, which describe
// the machines of [factory.DefaultLayout].
func Records() []Record {
	return []Record{
		{ID: "1", SceneID: "knit1", Name: "Knitting Machine #1", Kind: factory.Knitting, Status: factory.Running,
			Efficiency: 94, Utilization: 87, Temperature: 65, Speed: 240, Uptime: hm(8, 45),
			LastMaintenance: date(2024, 1, 15), NextMaintenance: date(2024, 2, 15),
			Location: "Floor A, Section 1", Operator: "John Smith"},
		{ID: "2", SceneID: "knit2", Name: "Knitting Machine #2", Kind: factory.Knitting, Status: factory.Idle,
			Efficiency: 76, Utilization: 45, Temperature: 35,
			LastMaintenance: date(2024, 1, 10), NextMaintenance: date(2024, 2, 10),
			Location: "Floor A, Section 2", Operator: "Unassigned"},
		{ID: "3", SceneID: "dye1", Name: "Dyeing Unit", Kind: factory.Dyeing, Status: factory.Fault,
			Efficiency: 65, Utilization: 78, Temperature: 85, Speed: 150,
			LastMaintenance: date(2024, 1, 8), NextMaintenance: date(2024, 2, 8),
			Location: "Floor B, Section 1", Operator: "Sarah Johnson"},
		{ID: "4", SceneID: "cut1", Name: "Cutting Station", Kind: factory.Cutting, Status: factory.Running,
			Efficiency: 91, Utilization: 92, Temperature: 25, Speed: 180, Uptime: hm(7, 20),
			LastMaintenance: date(2024, 1, 12), NextMaintenance: date(2024, 2, 12),
			Location: "Floor C, Section 1", Operator: "Mike Wilson"},
		{ID: "5", SceneID: "pack1", Name: "Packing Unit #1", Kind: factory.Packing, Status: factory.Running,
			Efficiency: 97, Utilization: 94, Temperature: 22, Speed: 120, Uptime: hm(8, 10),
			LastMaintenance: date(2024, 1, 18), NextMaintenance: date(2024, 2, 18),
			Location: "Floor D, Section 1", Operator: "Lisa Brown"},
		{ID: "6", SceneID: "pack2", Name: "Packing Unit #2", Kind: factory.Packing, Status: factory.Maintenance,
			Efficiency: 82, Utilization: 56, Temperature: 20,
			LastMaintenance: date(2024, 1, 20), NextMaintenance: date(2024, 2, 20),
			Location: "Floor D, Section 2", Operator: "Tom Davis"},
	}
}

// BySceneID returns the record for the given scene machine id, and
// whether it was found.
func BySceneID(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.SceneID == id {
			return r, true
		}
	}
	return Record{}, false
}

// FormatUptime formats an uptime as hours and minutes: "8h 45m".
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
}
