// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"testing"
	"time"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textiletwin/twin/alerts"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/inventory"
	"github.com/textiletwin/twin/metrics"
	"github.com/textiletwin/twin/scene"
)

func TestTabs(t *testing.T) {
	i, ok := TabIndex(MachinesTab)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = TabIndex("settings")
	assert.False(t, ok)

	assert.Equal(t, "3D Factory", TabTitle(FactoryTab))
	assert.Equal(t, "settings", TabTitle("settings"))
	assert.Equal(t, "Alerts •", AlertsTabTitle(true))
	assert.Equal(t, "Alerts", AlertsTabTitle(false))
}

func TestStatTiles(t *testing.T) {
	ly := factory.DefaultLayout()
	want := []Tile{
		{"Active Machines", "3", factory.Green},
		{"Avg Efficiency", "46%", factory.Blue},
		{"Alerts", "1", factory.Red},
		{"Production Rate", "135/hr", factory.Amber},
	}
	assert.Equal(t, want, StatTiles(factory.ComputeStats(ly.Machines)))
}

func TestDetailTiles(t *testing.T) {
	ly := factory.DefaultLayout()
	rs := inventory.Records()

	m, ok := ly.Machine("knit1")
	require.True(t, ok)
	tiles := DetailTiles(m, rs)
	require.Len(t, tiles, 4)
	assert.Equal(t, "65°C", tiles[0].Value)
	assert.Equal(t, "240 RPM", tiles[1].Value)
	assert.Equal(t, "92%", tiles[2].Value)
	assert.Equal(t, "8h 45m", tiles[3].Value)

	m, ok = ly.Machine("knit2")
	require.True(t, ok)
	tiles = DetailTiles(m, rs)
	assert.Equal(t, "0 RPM", tiles[1].Value)
	assert.Equal(t, "0h 0m", tiles[3].Value)

	// no record for the machine
	tiles = DetailTiles(factory.Machine{ID: "loom9", Temperature: 40.5}, rs)
	assert.Equal(t, "40.5°C", tiles[0].Value)
	assert.Equal(t, "0h 0m", tiles[3].Value)
}

func TestSummaryTiles(t *testing.T) {
	tiles := SummaryTiles(inventory.Summarize(inventory.Records()))
	var vals []string
	for _, tl := range tiles {
		vals = append(vals, tl.Value)
	}
	assert.Equal(t, []string{"6", "3", "84%", "1"}, vals)
}

func TestAlertLabels(t *testing.T) {
	bd := alerts.NewBoard(alerts.DefaultAlerts(time.Now()))
	assert.Equal(t, []string{"All (5)", "Active (2)", "Acknowledged (1)", "Resolved (2)"}, AlertFilterLabels(bd))

	tiles := AlertTiles(bd.Stats())
	assert.Equal(t, "5", tiles[0].Value)
	assert.Equal(t, "2", tiles[1].Value)

	require.NoError(t, bd.Resolve("1"))
	assert.Equal(t, "Active (1)", AlertFilterLabels(bd)[1])
	assert.Equal(t, "Resolved (3)", AlertFilterLabels(bd)[3])
}

func TestBadges(t *testing.T) {
	assert.Equal(t, "RUNNING", Badge(factory.Running))
	assert.Equal(t, "KNITTING", Badge(factory.Knitting))
	assert.Equal(t, "HIGH", Badge(alerts.High))
	assert.Equal(t, "Active (2)", FilterLabel("active", 2))
}

func TestColors(t *testing.T) {
	assert.Equal(t, factory.Green, LevelColor(metrics.Good))
	assert.Equal(t, factory.Amber, LevelColor(metrics.Warn))
	assert.Equal(t, factory.Red, LevelColor(metrics.Critical))

	assert.Equal(t, factory.Red, SeverityColor(alerts.Critical))
	assert.Equal(t, factory.Blue, SeverityColor(alerts.Info))
	assert.Equal(t, factory.Amber, StateColor(alerts.Acknowledged))
	assert.Equal(t, factory.Gray, StateColor("archived"))

	assert.Equal(t, factory.Red, PriorityColor(alerts.High))
	assert.Equal(t, factory.Amber, PriorityColor("medium"))
	assert.Equal(t, factory.Blue, PriorityColor(alerts.Low))
}

func TestModeButtonType(t *testing.T) {
	assert.Equal(t, core.ButtonFilled, modeButtonType(true))
	assert.Equal(t, core.ButtonOutlined, modeButtonType(false))
}

func TestStripeImage(t *testing.T) {
	img := stripeImage()
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.NotEqual(t, img.RGBAAt(0, 0), img.RGBAAt(8, 0))
	assert.Equal(t, img.RGBAAt(0, 0), img.RGBAAt(16, 0))
}

func TestFrameDelta(t *testing.T) {
	assert.Equal(t, time.Second, frameDelta(1000))
	assert.Equal(t, 500*time.Millisecond, frameDelta(500))

	tk := metrics.Ticker{Interval: 3 * time.Second}
	steps := 0
	for range 13 {
		steps += tk.Advance(frameDelta(500))
	}
	assert.Equal(t, 2, steps)
}

func TestHoverHandoff(t *testing.T) {
	a := &scene.MachineEntity{Machine: factory.Machine{ID: "a"}}
	b := &scene.MachineEntity{Machine: factory.Machine{ID: "b"}}
	wd := &world{}

	assert.True(t, wd.hoverEntity(a))
	assert.True(t, a.State.Hovered)
	assert.False(t, wd.hoverEntity(a))

	assert.True(t, wd.hoverEntity(b))
	assert.False(t, a.State.Hovered)
	assert.True(t, b.State.Hovered)

	assert.True(t, wd.hoverEntity(nil))
	assert.False(t, b.State.Hovered)
	assert.Nil(t, wd.hovered)

	wd.hoverEntity(a)
	wd.leave()
	assert.False(t, a.State.Hovered)
	assert.False(t, wd.hoverEntity(nil))
}
