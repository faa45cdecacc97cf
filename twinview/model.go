// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"cogentcore.org/core/base/strcase"
	"github.com/textiletwin/twin/alerts"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/inventory"
	"github.com/textiletwin/twin/metrics"
	"github.com/textiletwin/twin/scene"
)

// Tab ids, in tab bar order.
const (
	FactoryTab   = "factory"
	DashboardTab = "dashboard"
	AnalyticsTab = "analytics"
	MachinesTab  = "machines"
	AlertsTab    = "alerts"
)

// TabIDs returns the tab ids in tab bar order.
func TabIDs() []string {
	return []string{FactoryTab, DashboardTab, AnalyticsTab, MachinesTab, AlertsTab}
}

// TabTitle returns the tab bar label for the given tab id.
func TabTitle(id string) string {
	switch id {
	case FactoryTab:
		return "3D Factory"
	case DashboardTab:
		return "Dashboard"
	case AnalyticsTab:
		return "Analytics"
	case MachinesTab:
		return "Machines"
	case AlertsTab:
		return "Alerts"
	}
	return id
}

// TabIndex returns the index of the given tab id, and false
// if there is no such tab.
func TabIndex(id string) (int, bool) {
	for i, t := range TabIDs() {
		if t == id {
			return i, true
		}
	}
	return 0, false
}

// AlertsTabTitle returns the alerts tab label, which carries
// a notification dot while any alert is active.
func AlertsTabTitle(hasActive bool) string {
	if hasActive {
		return TabTitle(AlertsTab) + " •"
	}
	return TabTitle(AlertsTab)
}

// Tile is a titled value with the color of the value.
type Tile struct {
	Title string
	Value string
	Color color.RGBA
}

// StatTiles returns the four scene statistic tiles shown under the 3D view.
func StatTiles(st factory.Stats) []Tile {
	return []Tile{
		{"Active Machines", fmt.Sprint(st.Running), factory.Green},
		{"Avg Efficiency", fmt.Sprintf("%d%%", st.AvgEfficiency), factory.Blue},
		{"Alerts", fmt.Sprint(st.Faults), factory.Red},
		{"Production Rate", fmt.Sprintf("%d/hr", st.ProductionRate), factory.Amber},
	}
}

// DetailTiles returns the telemetry tiles of the machine detail panel.
// The uptime comes from the inventory record of the machine, if any.
func DetailTiles(m factory.Machine, records []inventory.Record) []Tile {
	uptime := inventory.FormatUptime(0)
	if r, ok := inventory.BySceneID(records, m.ID); ok {
		uptime = inventory.FormatUptime(r.Uptime)
	}
	fg := factory.Gray
	return []Tile{
		{"Temperature", scene.FormatNumber(m.Temperature) + "°C", fg},
		{"Speed", scene.FormatNumber(m.Speed) + " RPM", fg},
		{"Efficiency", scene.FormatNumber(m.Efficiency) + "%", fg},
		{"Uptime", uptime, fg},
	}
}

// Badge returns the upper case badge text of a status, kind or state.
func Badge[T ~string](v T) string {
	return strings.ToUpper(string(v))
}

// LevelColor returns the value color for a metric level.
func LevelColor(l metrics.Level) color.RGBA {
	switch l {
	case metrics.Good:
		return factory.Green
	case metrics.Warn:
		return factory.Amber
	case metrics.Critical:
		return factory.Red
	}
	return factory.Blue
}

// SeverityColor returns the color for an alert severity.
func SeverityColor(s alerts.Severity) color.RGBA {
	switch s {
	case alerts.Critical:
		return factory.Red
	case alerts.Warning:
		return factory.Amber
	}
	return factory.Blue
}

// StateColor returns the color for an alert state.
func StateColor(s alerts.State) color.RGBA {
	switch s {
	case alerts.Active:
		return factory.Red
	case alerts.Acknowledged:
		return factory.Amber
	case alerts.Resolved:
		return factory.Green
	}
	return factory.Gray
}

// PriorityColor returns the color for an alert or insight priority.
func PriorityColor[T ~string](p T) color.RGBA {
	switch string(p) {
	case "high":
		return factory.Red
	case "medium":
		return factory.Amber
	}
	return factory.Blue
}

// FilterLabel returns the label of a filter control with its count: "Active (2)".
func FilterLabel(name string, count int) string {
	return fmt.Sprintf("%s (%d)", strcase.ToSentence(name), count)
}

// AlertFilterLabels returns the alert filter labels with current counts.
func AlertFilterLabels(bd *alerts.Board) []string {
	labels := []string{FilterLabel(alerts.AllStates, len(bd.Alerts()))}
	for _, s := range alerts.States() {
		labels = append(labels, FilterLabel(string(s), bd.Count(s)))
	}
	return labels
}

// SummaryTiles returns the cards above the machine list.
func SummaryTiles(sm inventory.Summary) []Tile {
	return []Tile{
		{"Total Machines", fmt.Sprint(sm.Total), factory.Blue},
		{"Running", fmt.Sprint(sm.Running), factory.Green},
		{"Avg Efficiency", fmt.Sprintf("%d%%", sm.AvgEfficiency), factory.Amber},
		{"Faulted", fmt.Sprint(sm.Faulted), factory.Red},
	}
}

// AlertTiles returns the cards above the alert list.
func AlertTiles(st alerts.Stats) []Tile {
	return []Tile{
		{"Total Alerts", fmt.Sprint(st.Total), factory.Blue},
		{"Active", fmt.Sprint(st.Active), factory.Red},
		{"Critical", fmt.Sprint(st.Critical), factory.Red},
		{"Resolved", fmt.Sprint(st.Resolved), factory.Green},
	}
}

// frameDelta converts an animation frame time in milliseconds to a duration.
func frameDelta(ms float32) time.Duration {
	return time.Duration(ms * float32(time.Millisecond))
}
