// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics provides the production dashboard and analytics view
// models: the simulated live metrics, metric cards and the analytics
// fixtures.
package metrics

import (
	"time"

	"cogentcore.org/lab/base/randx"
)

// DefaultInterval is how often the live metrics are stepped.
const DefaultInterval = 3 * time.Second

// Live are the simulated plant-wide metrics shown on the dashboard.
type Live struct {

	// TotalProduction is the units produced today.
	TotalProduction int

	// Efficiency is the overall efficiency in percent.
	Efficiency int

	// EnergyUsage in kWh.
	EnergyUsage int

	// Downtime today in minutes.
	Downtime int

	ActiveWorkers int

	// QualityScore in percent.
	QualityScore float32

	// TemperatureAvg in degrees Celsius.
	TemperatureAvg int

	MaintenanceAlerts int
}

// DefaultLive returns the live metrics at the start of a session.
func DefaultLive() Live {
	return Live{
		TotalProduction:   1247,
		Efficiency:        87,
		EnergyUsage:       324,
		Downtime:          12,
		ActiveWorkers:     15,
		QualityScore:      94.2,
		TemperatureAvg:    68,
		MaintenanceAlerts: 3,
	}
}

// Step returns the metrics after one update: production grows by 0 to 4
// units, and efficiency, energy usage and average temperature are
// redrawn within their normal bands.
func (lv Live) Step(r randx.Rand) Live {
	lv.TotalProduction += r.Intn(5)
	lv.Efficiency = 85 + r.Intn(10)
	lv.EnergyUsage = 320 + r.Intn(20)
	lv.TemperatureAvg = 65 + r.Intn(8)
	return lv
}

// Ticker turns frame deltas into a count of due steps at a fixed interval.
type Ticker struct {
	Interval time.Duration
	acc      time.Duration
}

// Advance adds the elapsed time and returns the number of steps due.
func (tk *Ticker) Advance(d time.Duration) int {
	if tk.Interval <= 0 {
		return 0
	}
	tk.acc += d
	n := int(tk.acc / tk.Interval)
	tk.acc -= time.Duration(n) * tk.Interval
	return n
}
