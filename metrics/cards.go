// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/textiletwin/twin/factory"
)

// Level is the health shown by the color of a card value.
type Level string

const (
	Good     Level = "good"
	Warn     Level = "warning"
	Critical Level = "critical"
)

// Trend is the direction arrow of a card.
type Trend string

const (
	Up     Trend = "up"
	Down   Trend = "down"
	Stable Trend = "stable"
)

// Arrow returns the arrow glyph for the trend.
func (t Trend) Arrow() string {
	switch t {
	case Up:
		return "↗"
	case Down:
		return "↘"
	case Stable:
		return "→"
	}
	return ""
}

// Card is one metric tile.
type Card struct {
	Title      string
	Value      string
	Unit       string
	Trend      Trend
	TrendValue string
	Level      Level
}

var printer = message.NewPrinter(language.English)

// FormatInt formats n with thousands separators: 1,247.
func FormatInt(n int) string {
	return printer.Sprintf("%d", n)
}

// Cards returns the four key metric cards for the live metrics.
func (lv *Live) Cards() []Card {
	eff := Good
	if lv.Efficiency <= 85 {
		eff = Warn
	}
	down := Good
	if lv.Downtime >= 20 {
		down = Warn
	}
	return []Card{
		{Title: "Total Production Today", Value: FormatInt(lv.TotalProduction), Unit: "units", Trend: Up, TrendValue: "+8.2%", Level: Good},
		{Title: "Overall Efficiency", Value: FormatInt(lv.Efficiency), Unit: "%", Trend: Up, TrendValue: "+2.1%", Level: eff},
		{Title: "Energy Usage", Value: FormatInt(lv.EnergyUsage), Unit: "kWh", Trend: Stable, TrendValue: "±0.5%", Level: Good},
		{Title: "Downtime Today", Value: FormatInt(lv.Downtime), Unit: "min", Trend: Down, TrendValue: "-15%", Level: down},
	}
}

// Stat is a labeled value in a short list.
type Stat struct {
	Label string
	Value string
}

// QuickStats returns the secondary dashboard values.
func (lv *Live) QuickStats() []Stat {
	return []Stat{
		{"Active Workers", FormatInt(lv.ActiveWorkers)},
		{"Quality Score", printer.Sprintf("%.1f%%", lv.QualityScore)},
		{"Avg Temperature", FormatInt(lv.TemperatureAvg) + "°C"},
		{"Maintenance Alerts", FormatInt(lv.MaintenanceAlerts)},
	}
}

// MachineStatus is one tile of the dashboard machine overview.
type MachineStatus struct {
	Name       string
	Status     factory.Status
	Efficiency int

	// Uptime in hours.
	Uptime float32
}

// StatusOverview returns the dashboard machine overview.
func StatusOverview() []MachineStatus {
	return []MachineStatus{
		{"Knitting Machine #1", factory.Running, 92, 8.5},
		{"Knitting Machine #2", factory.Idle, 0, 0},
		{"Dyeing Unit", factory.Fault, 0, 0},
		{"Cutting Station", factory.Running, 88, 7.2},
		{"Packing Unit #1", factory.Running, 95, 8.1},
		{"Packing Unit #2", factory.Maintenance, 0, 0},
	}
}

// Activity is one entry of a recent activity or events list.
type Activity struct {
	Title   string
	Machine string
	Ago     string
	Status  factory.Status
}

// RecentActivity returns the dashboard recent activity list.
func RecentActivity() []Activity {
	return []Activity{
		{"Production target reached", "Knitting Machine #1", "5 minutes ago", factory.Running},
		{"Maintenance scheduled", "Packing Unit #2", "15 minutes ago", factory.Idle},
		{"Equipment fault detected", "Dyeing Unit", "1 hour ago", factory.Fault},
	}
}

// MachineEvents returns the recent events shown in the machine detail panel.
func MachineEvents() []Activity {
	return []Activity{
		{Title: "Started production cycle", Ago: "2m ago"},
		{Title: "Temperature normalized", Ago: "15m ago"},
		{Title: "Efficiency target met", Ago: "1h ago"},
	}
}
