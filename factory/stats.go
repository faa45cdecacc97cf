// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import "math"

// UnitsPerRunningMachine is the assumed hourly throughput of each running
// machine, used for the estimated production rate.
const UnitsPerRunningMachine = 45

// Stats are the aggregate scene statistics shown under the 3D view.
type Stats struct {

	// Running is the number of machines with status [Running].
	Running int

	// AvgEfficiency is the mean efficiency over all machines,
	// rounded to the nearest integer.
	AvgEfficiency int

	// Faults is the number of machines with status [Fault].
	Faults int

	// ProductionRate is the estimated units per hour:
	// [UnitsPerRunningMachine] times Running.
	ProductionRate int
}

// ComputeStats returns the [Stats] for the given machines.
// The average efficiency of an empty list is 0.
func ComputeStats(machines []Machine) Stats {
	var st Stats
	var sum float64
	for i := range machines {
		m := &machines[i]
		switch m.Status {
		case Running:
			st.Running++
		case Fault:
			st.Faults++
		}
		sum += float64(m.Efficiency)
	}
	if n := len(machines); n > 0 {
		st.AvgEfficiency = int(math.Round(sum / float64(n)))
	}
	st.ProductionRate = UnitsPerRunningMachine * st.Running
	return st
}

// CountStatus returns the number of machines with the given status.
func CountStatus(machines []Machine, s Status) int {
	n := 0
	for i := range machines {
		if machines[i].Status == s {
			n++
		}
	}
	return n
}
