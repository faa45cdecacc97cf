// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twinview provides the GUI of the textile factory digital twin:
// the 3D factory floor and the dashboard, analytics, machines and alerts
// panels, assembled into one [App].
package twinview

import (
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/lab/base/randx"
	"github.com/textiletwin/twin/alerts"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/inventory"
	"github.com/textiletwin/twin/metrics"
	"github.com/textiletwin/twin/scene"
)

// App is the digital twin application.
type App struct {

	// Tab is the id of the tab shown at start.
	Tab string

	comp    *scene.Composer
	board   *alerts.Board
	records []inventory.Record
	live    metrics.Live
	ticker  metrics.Ticker
	rand    randx.Rand

	// now is the clock used for alert ages and the last updated time.
	now func() time.Time
}

// NewApp returns a new [App] for the given layout. The live metrics are
// stepped every interval using the given random source.
func NewApp(ly factory.Layout, tab string, interval time.Duration, rnd randx.Rand) *App {
	return &App{
		Tab:     tab,
		comp:    scene.NewComposer(ly),
		board:   alerts.NewBoard(alerts.DefaultAlerts(time.Now())),
		records: inventory.Records(),
		live:    metrics.DefaultLive(),
		ticker:  metrics.Ticker{Interval: interval},
		rand:    rnd,
		now:     time.Now,
	}
}

// Composer returns the scene composer of the app.
func (app *App) Composer() *scene.Composer {
	return app.comp
}

// Body builds the app window body.
func (app *App) Body() *core.Body {
	b := core.NewBody("DigitalTwin")
	var clock *core.Text
	b.AddTopBar(func(bar *core.Frame) {
		styleRow(bar)
		core.NewText(bar).SetText("DigitalTwin").SetType(core.TextHeadlineSmall)
		newBadge(bar, "Textile MSME", factory.Blue)
		core.NewStretch(bar)
		newBadge(bar, "● Live", factory.Green)
		clock = core.NewText(bar).SetType(core.TextBodySmall)
		clock.Updater(func() {
			clock.SetText("Last updated: " + app.now().Format(time.TimeOnly))
		})
	})

	ts := core.NewTabs(b)
	ts.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
		s.Gap.Set(units.Dp(4))
	})

	fr, _ := ts.NewTab(TabTitle(FactoryTab))
	fv := NewFactory(fr, app.comp, app.records)

	fr, _ = ts.NewTab(TabTitle(DashboardTab))
	db := NewDashboard(fr, &app.live)

	fr, _ = ts.NewTab(TabTitle(AnalyticsTab))
	NewAnalytics(fr)

	fr, _ = ts.NewTab(TabTitle(MachinesTab))
	mv := NewMachines(fr, app.records, app.now)

	fr, alertTab := ts.NewTab(AlertsTabTitle(app.board.HasActive()))
	NewAlerts(fr, app.board, app.now)
	app.board.OnChange(func(a alerts.Alert) {
		alertTab.SetText(AlertsTabTitle(app.board.HasActive()))
		alertTab.Update()
	})

	machinesIndex, _ := TabIndex(MachinesTab)
	app.comp.OnSelect(func(m factory.Machine) {
		mv.Show(m.ID)
	})
	fv.OnHistory = func(m factory.Machine) {
		if mv.Show(m.ID) {
			ts.SelectTabIndex(machinesIndex)
		}
	}

	if i, ok := TabIndex(app.Tab); ok {
		ts.SelectTabIndex(i)
	} else if app.Tab != "" {
		errors.Log(errors.New("twinview: unknown tab " + app.Tab))
	}

	b.Animate(func(a *core.Animation) {
		n := app.ticker.Advance(frameDelta(a.Dt))
		if n == 0 {
			return
		}
		for range n {
			app.live = app.live.Step(app.rand)
		}
		slog.Debug("twinview: live metrics stepped", "production", app.live.TotalProduction, "efficiency", app.live.Efficiency)
		db.Update()
		if clock != nil {
			clock.Update()
		}
	})
	return b
}

// Run builds the body and runs it as the main window.
func (app *App) Run() {
	app.Body().RunMainWindow()
}
