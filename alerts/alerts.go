// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alerts is the alert list of the factory dashboard: alerts,
// their acknowledge and resolve lifecycle, filtering and counts.
package alerts

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrUnknownAlert is returned for an alert id that is not on the board.
	ErrUnknownAlert = errors.New("alerts: unknown alert")

	// ErrInvalidTransition is returned when an alert cannot move
	// from its current state to the requested one.
	ErrInvalidTransition = errors.New("alerts: invalid state transition")
)

// Severity is the kind of alert.
type Severity string

const (
	Critical Severity = "critical"
	Warning  Severity = "warning"
	Info     Severity = "info"
)

// State is where an alert is in its lifecycle:
// active, then optionally acknowledged, then resolved.
type State string

const (
	Active       State = "active"
	Acknowledged State = "acknowledged"
	Resolved     State = "resolved"
)

// AllStates is the state filter value that matches every alert.
const AllStates = "all"

// States returns the lifecycle states in order.
func States() []State {
	return []State{Active, Acknowledged, Resolved}
}

// Priority is the handling priority of an alert.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Alert is one entry on the alert board.
type Alert struct {
	ID          string
	Severity    Severity
	Title       string
	Description string

	// Machine is the display name of the machine or line raising the alert.
	Machine   string
	Timestamp time.Time
	State     State
	Priority  Priority
}

// DefaultAlerts returns the built-in alerts, time stamped relative to now.
func DefaultAlerts(now time.Time) []Alert {
	return []Alert{
		{ID: "1", Severity: Critical, Title: "Equipment Fault Detected",
			Description: "Dyeing Unit temperature sensor malfunction. Operating temperature exceeds safe limits.",
			Machine:     "Dyeing Unit", Timestamp: now.Add(-15 * time.Minute), State: Active, Priority: High},
		{ID: "2", Severity: Warning, Title: "Maintenance Due",
			Description: "Scheduled maintenance required for optimal performance.",
			Machine:     "Packing Unit #2", Timestamp: now.Add(-2 * time.Hour), State: Acknowledged, Priority: Medium},
		{ID: "3", Severity: Warning, Title: "Efficiency Below Target",
			Description: "Production efficiency dropped to 73% - below the 85% target threshold.",
			Machine:     "Knitting Machine #2", Timestamp: now.Add(-4 * time.Hour), State: Active, Priority: Medium},
		{ID: "4", Severity: Info, Title: "Production Target Achieved",
			Description: "Daily production target of 2000 units reached ahead of schedule.",
			Machine:     "Production Line", Timestamp: now.Add(-6 * time.Hour), State: Resolved, Priority: Low},
		{ID: "5", Severity: Critical, Title: "Emergency Stop Activated",
			Description: "Safety system triggered emergency stop due to detected anomaly.",
			Machine:     "Cutting Station", Timestamp: now.Add(-8 * time.Hour), State: Resolved, Priority: High},
	}
}

// TimeAgo formats the time elapsed from t to now as whole hours,
// "2h ago", or when under an hour as whole minutes, "15m ago".
func TimeAgo(t, now time.Time) string {
	d := max(now.Sub(t), 0)
	if h := int(d / time.Hour); h > 0 {
		return strconv.Itoa(h) + "h ago"
	}
	return strconv.Itoa(int(d/time.Minute)) + "m ago"
}

// Board holds the alerts of a session and applies lifecycle changes.
// It is used from the GUI goroutine only.
type Board struct {
	alerts   []Alert
	onChange []func(a Alert)
}

// NewBoard returns a new [Board] holding a copy of the given alerts.
func NewBoard(alerts []Alert) *Board {
	return &Board{alerts: append([]Alert(nil), alerts...)}
}

// OnChange adds a function that is called with the updated alert
// after each successful state change.
func (bd *Board) OnChange(fun func(a Alert)) {
	bd.onChange = append(bd.onChange, fun)
}

// Alerts returns a copy of all alerts, in board order.
func (bd *Board) Alerts() []Alert {
	return append([]Alert(nil), bd.alerts...)
}

// Alert returns the alert with the given id.
func (bd *Board) Alert(id string) (Alert, error) {
	i, err := bd.index(id)
	if err != nil {
		return Alert{}, err
	}
	return bd.alerts[i], nil
}

func (bd *Board) index(id string) (int, error) {
	for i := range bd.alerts {
		if bd.alerts[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownAlert, id)
}

// Acknowledge moves an active alert to acknowledged.
func (bd *Board) Acknowledge(id string) error {
	return bd.transition(id, Acknowledged, Active)
}

// Resolve moves an active or acknowledged alert to resolved.
func (bd *Board) Resolve(id string) error {
	return bd.transition(id, Resolved, Active, Acknowledged)
}

func (bd *Board) transition(id string, to State, from ...State) error {
	i, err := bd.index(id)
	if err != nil {
		return err
	}
	a := &bd.alerts[i]
	ok := false
	for _, f := range from {
		if a.State == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: alert %q from %s to %s", ErrInvalidTransition, id, a.State, to)
	}
	slog.Info("alerts: state changed", "alert", id, "from", a.State, "to", to)
	a.State = to
	for _, fun := range bd.onChange {
		fun(*a)
	}
	return nil
}

// Filter returns the alerts in the given state, or all alerts
// for [AllStates] or the empty string.
func (bd *Board) Filter(state string) []Alert {
	if state == "" || state == AllStates {
		return bd.Alerts()
	}
	var res []Alert
	for _, a := range bd.alerts {
		if string(a.State) == state {
			res = append(res, a)
		}
	}
	return res
}

// Count returns the number of alerts in the given state.
func (bd *Board) Count(s State) int {
	n := 0
	for i := range bd.alerts {
		if bd.alerts[i].State == s {
			n++
		}
	}
	return n
}

// HasActive returns whether any alert is active.
func (bd *Board) HasActive() bool {
	return bd.Count(Active) > 0
}

// Stats are the counts shown above the alert list.
type Stats struct {
	Total    int
	Active   int
	Critical int
	Resolved int
}

// Stats returns the current [Stats]. Critical counts alerts of
// [Critical] severity in any state.
func (bd *Board) Stats() Stats {
	st := Stats{Total: len(bd.alerts), Active: bd.Count(Active), Resolved: bd.Count(Resolved)}
	for i := range bd.alerts {
		if bd.alerts[i].Severity == Critical {
			st.Critical++
		}
	}
	return st
}
