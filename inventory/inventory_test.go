// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/textiletwin/twin/factory"
)

func ids(rs []Record) []string {
	var s []string
	for _, r := range rs {
		s = append(s, r.ID)
	}
	return s
}

func TestFilter(t *testing.T) {
	recs := Records()
	tests := []struct {
		name string
		f    Filter
		want []string
	}{
		{"all", Filter{}, []string{"1", "2", "3", "4", "5", "6"}},
		{"all explicit", Filter{Status: AllStatuses}, []string{"1", "2", "3", "4", "5", "6"}},
		{"name substring", Filter{Search: "PACK"}, []string{"5", "6"}},
		{"kind", Filter{Search: "dyeing"}, []string{"3"}},
		{"operator", Filter{Search: "wilson"}, []string{"4"}},
		{"status", Filter{Status: "running"}, []string{"1", "4", "5"}},
		{"search and status", Filter{Search: "knitting", Status: "idle"}, []string{"2"}},
		{"no match", Filter{Search: "zzzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.f.Apply(recs)))
		})
	}
}

func TestFilterTypo(t *testing.T) {
	f := Filter{Search: "jhon"}
	assert.Contains(t, ids(f.Apply(Records())), "1")

	// short terms are not matched fuzzily
	f = Filter{Search: "xy"}
	assert.Empty(t, f.Apply(Records()))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Total: 6, Running: 3, AvgEfficiency: 84, Faulted: 1}, Summarize(Records()))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestStatusFilters(t *testing.T) {
	assert.Equal(t, []string{"all", "running", "idle", "fault", "maintenance"}, StatusFilters())
}

func TestBySceneID(t *testing.T) {
	recs := Records()
	for _, m := range factory.DefaultLayout().Machines {
		r, ok := BySceneID(recs, m.ID)
		if assert.True(t, ok, m.ID) {
			assert.Equal(t, m.Name, r.Name)
			assert.Equal(t, m.Status, r.Status)
		}
	}
	_, ok := BySceneID(recs, "none")
	assert.False(t, ok)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "8h 45m", FormatUptime(8*time.Hour+45*time.Minute))
	assert.Equal(t, "0h 0m", FormatUptime(0))
}

func TestMaintenanceDue(t *testing.T) {
	r := Records()[0]
	assert.False(t, r.MaintenanceDue(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.MaintenanceDue(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
}
