// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"fmt"

	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/metrics"
)

// Dashboard shows the live production metrics.
type Dashboard struct {
	live  *metrics.Live
	frame *core.Frame
}

// NewDashboard adds the dashboard for the given live metrics to the parent.
// Call [Dashboard.Update] after the metrics change.
func NewDashboard(parent core.Widget, live *metrics.Live) *Dashboard {
	db := &Dashboard{live: live}
	fr := core.NewFrame(parent)
	styleColumn(fr)
	db.frame = fr
	newHeader(fr, "Production Dashboard", "Real-time monitoring of textile manufacturing operations")

	cards := newRow(fr)
	cards.Maker(func(p *tree.Plan) {
		for i, c := range live.Cards() {
			tree.AddAt(p, c.Title, func(cd *core.Frame) {
				styleCard(cd)
				core.NewText(cd).SetText(c.Title).SetType(core.TextLabelLarge)
				val := core.NewText(cd).SetType(core.TextHeadlineSmall)
				trend := core.NewText(cd).SetType(core.TextBodySmall)
				val.Updater(func() {
					c := live.Cards()[i]
					val.SetText(c.Value + " " + c.Unit)
					styleValue(val, LevelColor(c.Level))
				})
				trend.Updater(func() {
					c := live.Cards()[i]
					trend.SetText(c.Trend.Arrow() + " " + c.TrendValue)
				})
			})
		}
	})

	body := newRow(fr)
	body.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Start
	})
	db.makeOverview(body)
	side := core.NewFrame(body)
	side.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Set(units.Dp(12))
		s.Grow.Set(1, 0)
	})
	db.makeQuickStats(side)
	db.makeActivity(side)
	return db
}

// Update refreshes the metric values.
func (db *Dashboard) Update() {
	db.frame.Update()
}

func (db *Dashboard) makeOverview(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("Machine Status Overview").SetType(core.TextTitleMedium)
	for _, ms := range metrics.StatusOverview() {
		row := newRow(fr)
		core.NewText(row).SetText(ms.Name)
		newBadge(row, Badge(ms.Status), factory.StatusColor(ms.Status))
		core.NewStretch(row)
		core.NewText(row).SetText(fmt.Sprintf("Uptime: %gh", ms.Uptime)).SetType(core.TextBodySmall)
		mt := core.NewMeter(fr).SetMax(100).SetValue(float32(ms.Efficiency))
		mt.Styler(func(s *styles.Style) {
			s.Min.X.Em(20)
		})
		core.NewText(fr).SetText(fmt.Sprintf("Efficiency %d%%", ms.Efficiency)).SetType(core.TextBodySmall)
	}
}

func (db *Dashboard) makeQuickStats(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("Quick Stats").SetType(core.TextTitleMedium)
	list := core.NewFrame(fr)
	list.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	list.Maker(func(p *tree.Plan) {
		for i, st := range db.live.QuickStats() {
			tree.AddAt(p, st.Label, func(row *core.Frame) {
				styleRow(row)
				core.NewText(row).SetText(st.Label)
				core.NewStretch(row)
				val := core.NewText(row).SetType(core.TextTitleSmall)
				val.Updater(func() {
					val.SetText(db.live.QuickStats()[i].Value)
				})
			})
		}
	})
}

func (db *Dashboard) makeActivity(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("Recent Activity").SetType(core.TextTitleMedium)
	for _, ac := range metrics.RecentActivity() {
		row := newRow(fr)
		col := core.NewFrame(row)
		col.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
		})
		core.NewText(col).SetText(ac.Title)
		core.NewText(col).SetText(ac.Machine + " · " + ac.Ago).SetType(core.TextBodySmall)
		core.NewStretch(row)
		newBadge(row, Badge(ac.Status), factory.StatusColor(ac.Status))
	}
}
